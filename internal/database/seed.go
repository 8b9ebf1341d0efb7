package database

import (
	"context"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"

	"github.com/mindfit/MindFitBack/internal/config"
	"github.com/mindfit/MindFitBack/pkg/utils"
)

const samplePassword = "password123"

var seedCoaches = []struct {
	Name  string
	Email string
	Years int
}{
	{"Sarah Johnson", "sarah.johnson@mindfit.com", 5},
	{"Mike Chen", "mike.chen@mindfit.com", 8},
	{"Emily Davis", "emily.davis@mindfit.com", 3},
}

var seedStudents = []struct {
	Name  string
	Email string
}{
	{"Alex Smith", "alex.smith@student.edu"},
	{"Jordan Brown", "jordan.brown@student.edu"},
	{"Taylor Wilson", "taylor.wilson@student.edu"},
	{"Casey Lee", "casey.lee@student.edu"},
}

// One default workout per mood type. The mood -> workout fallback returns
// the lexically first intensity when a mood ever gains more than one row.
var seedWorkouts = []struct {
	MoodType       string
	Description    string
	IntensityLevel string
	Duration       string
}{
	{
		MoodType:       "Stressed",
		Description:    `1. Deep breathing exercises (5 min) 2. Cat-cow stretches (3 min) 3. Child's pose hold (2 min) 4. Seated forward fold (3 min) 5. Legs up the wall (5 min) 6. Guided meditation (2 min)`,
		IntensityLevel: "Low",
		Duration:       "20 minutes",
	},
	{
		MoodType:       "Excited",
		Description:    `1. Barbell squats (4 sets x 8 reps) 2. Deadlifts (4 sets x 6 reps) 3. Bench press (4 sets x 8 reps) 4. Pull-ups/assisted (3 sets x 6 reps) 5. Overhead press (3 sets x 8 reps) 6. Plank hold (3 sets x 60 sec)`,
		IntensityLevel: "High",
		Duration:       "75 minutes",
	},
	{
		MoodType:       "Calm",
		Description:    `1. Bodyweight squats (3 sets x 12 reps) 2. Push-ups (3 sets x 10 reps) 3. Lunges (3 sets x 10 each leg) 4. Plank (3 sets x 30 sec) 5. Glute bridges (3 sets x 15 reps) 6. Cool-down stretches (5 min)`,
		IntensityLevel: "Medium",
		Duration:       "45 minutes",
	},
	{
		MoodType:       "Tired",
		Description:    `1. Gentle neck rolls (2 min) 2. Shoulder shrugs (2 min) 3. Seated spinal twists (3 min) 4. Ankle circles (2 min) 5. Deep breathing (3 min) 6. Restorative pose (3 min)`,
		IntensityLevel: "Low",
		Duration:       "15 minutes",
	},
}

// Seed inserts the default workouts, the admin account and a handful of
// sample users. Safe to run on every boot: sample rows are only inserted
// into empty tables, the admin row is upserted by email.
func Seed(ctx context.Context, db *sqlx.DB, cfg *config.Config) error {
	var coachCount int
	if err := db.GetContext(ctx, &coachCount, "SELECT COUNT(*) FROM coaches"); err != nil {
		return fmt.Errorf("unable to check coaches: %w", err)
	}

	if coachCount == 0 {
		log.Println("Inserting sample coaches and students")
		hashed, err := utils.HashPassword(samplePassword)
		if err != nil {
			return fmt.Errorf("unable to hash sample password: %w", err)
		}
		for _, c := range seedCoaches {
			if _, err := db.ExecContext(ctx,
				"INSERT INTO coaches (name, email, password, years_of_experience) VALUES (?, ?, ?, ?)",
				c.Name, c.Email, hashed, c.Years,
			); err != nil {
				return fmt.Errorf("unable to seed coach %s: %w", c.Email, err)
			}
		}
		for _, s := range seedStudents {
			if _, err := db.ExecContext(ctx,
				"INSERT INTO students (name, email, password, coach_id) VALUES (?, ?, ?, NULL)",
				s.Name, s.Email, hashed,
			); err != nil {
				return fmt.Errorf("unable to seed student %s: %w", s.Email, err)
			}
		}
	}

	var workoutCount int
	if err := db.GetContext(ctx, &workoutCount, "SELECT COUNT(*) FROM workouts"); err != nil {
		return fmt.Errorf("unable to check workouts: %w", err)
	}

	if workoutCount == 0 {
		log.Println("Inserting default workouts")
		for _, w := range seedWorkouts {
			if _, err := db.ExecContext(ctx,
				"INSERT INTO workouts (mood_type, description, intensity_level, duration) VALUES (?, ?, ?, ?)",
				w.MoodType, w.Description, w.IntensityLevel, w.Duration,
			); err != nil {
				return fmt.Errorf("unable to seed workout for %s: %w", w.MoodType, err)
			}
		}
	}

	adminHash, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("unable to hash admin password: %w", err)
	}
	if _, err := db.ExecContext(ctx,
		`INSERT INTO admins (email, password) VALUES (?, ?)
		 ON CONFLICT(email) DO UPDATE SET password = excluded.password`,
		cfg.AdminEmail, adminHash,
	); err != nil {
		return fmt.Errorf("unable to seed admin account: %w", err)
	}

	return nil
}
