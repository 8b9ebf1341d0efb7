package models

import "time"

// Workout is a default recommendation for a mood type. Description encodes
// the exercise list as "N. text" segments; Duration is display text such as
// "20 minutes".
type Workout struct {
	ID             int64  `db:"id" json:"id"`
	MoodType       string `db:"mood_type" json:"mood_type"`
	Description    string `db:"description" json:"description"`
	IntensityLevel string `db:"intensity_level" json:"intensity_level"`
	Duration       string `db:"duration" json:"duration"`
}

// CustomWorkout is a coach-authored override of the default workout for one
// (student, mood type) pair. At most one row exists per pair; re-creating
// replaces the previous row.
type CustomWorkout struct {
	ID              int64     `db:"id" json:"id"`
	StudentID       int64     `db:"student_id" json:"student_id"`
	MoodType        string    `db:"mood_type" json:"mood_type"`
	IntensityLevel  string    `db:"intensity_level" json:"intensity_level"`
	DurationMinutes int       `db:"duration_minutes" json:"duration_minutes"`
	Description     string    `db:"description" json:"description"`
	IsActive        bool      `db:"is_active" json:"is_active"`
	CreatedBy       int64     `db:"created_by" json:"created_by"`
	StudentName     string    `db:"student_name" json:"student_name,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}
