package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"github.com/mindfit/MindFitBack/internal/models"
	"github.com/mindfit/MindFitBack/migrations"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Open("sqlite", "file::memory:?_time_format=sqlite")
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	// An in-memory database lives per connection; a single connection keeps
	// every query on the same database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}

	schema, err := migrations.FS.ReadFile("000001_init.up.sql")
	if err != nil {
		t.Fatalf("read schema: %v", err)
	}
	if _, err := db.Exec(string(schema)); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return db
}

func createTestCoach(t *testing.T, ctx context.Context, db *sqlx.DB, email string) int64 {
	t.Helper()
	coach := &models.Coach{Name: "Test Coach", Email: email, Password: "hash", YearsOfExperience: 4}
	if err := NewCoachRepository(db).Create(ctx, coach); err != nil {
		t.Fatalf("create coach: %v", err)
	}
	return coach.ID
}

func createTestStudent(t *testing.T, ctx context.Context, db *sqlx.DB, email string, coachID *int64) int64 {
	t.Helper()
	student := &models.Student{Name: "Test Student", Email: email, Password: "hash", CoachID: coachID}
	if err := NewStudentRepository(db).Create(ctx, student); err != nil {
		t.Fatalf("create student: %v", err)
	}
	return student.ID
}

func TestStudentCreateDuplicateEmailIsConflict(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewStudentRepository(db)

	first := &models.Student{Name: "Alex", Email: "alex@student.edu", Password: "hash"}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("create: %v", err)
	}

	err := repo.Create(ctx, &models.Student{Name: "Other", Email: "alex@student.edu", Password: "hash"})
	if err == nil {
		t.Fatal("expected duplicate email to fail")
	}
	if !IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestStudentGetByIDJoinsCoachName(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	coachID := createTestCoach(t, ctx, db, "coach@mindfit.com")
	studentID := createTestStudent(t, ctx, db, "jordan@student.edu", &coachID)

	student, err := NewStudentRepository(db).GetByID(ctx, studentID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if student.CoachID == nil || *student.CoachID != coachID {
		t.Fatalf("expected coach id %d, got %v", coachID, student.CoachID)
	}
	if student.CoachName == nil || *student.CoachName != "Test Coach" {
		t.Fatalf("expected coach name, got %v", student.CoachName)
	}
}

func TestStudentCreateUnknownCoachIsForeignKeyViolation(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	missing := int64(999)

	err := NewStudentRepository(db).Create(ctx, &models.Student{
		Name: "Taylor", Email: "taylor@student.edu", Password: "hash", CoachID: &missing,
	})
	if err == nil {
		t.Fatal("expected foreign key violation")
	}
	if !IsForeignKeyViolation(err) {
		t.Fatalf("expected foreign key violation, got %v", err)
	}
}

func TestCustomWorkoutUpsertReplacesPriorRow(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewCustomWorkoutRepository(db)
	coachID := createTestCoach(t, ctx, db, "coach@mindfit.com")
	studentID := createTestStudent(t, ctx, db, "casey@student.edu", &coachID)

	first, err := repo.Upsert(ctx, UpsertCustomWorkoutInput{
		StudentID: studentID, MoodType: "Stressed", IntensityLevel: "Low",
		DurationMinutes: 20, Description: "1. Breathing 2. Stretch", IsActive: true, CreatedBy: coachID,
	})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second, err := repo.Upsert(ctx, UpsertCustomWorkoutInput{
		StudentID: studentID, MoodType: "Stressed", IntensityLevel: "Medium",
		DurationMinutes: 30, Description: "1. Yoga flow", IsActive: true, CreatedBy: coachID,
	})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if second.ID == first.ID {
		t.Fatal("expected replacement to take a new row id")
	}

	active, err := repo.GetActive(ctx, studentID, "Stressed")
	if err != nil {
		t.Fatalf("GetActive: %v", err)
	}
	if active.ID != second.ID || active.DurationMinutes != 30 {
		t.Fatalf("expected latest override, got %+v", active)
	}

	rows, err := repo.ListByCoach(ctx, coachID)
	if err != nil {
		t.Fatalf("ListByCoach: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected one row per (student, mood) pair, got %d", len(rows))
	}
}

func TestCustomWorkoutGetActiveSkipsDeactivated(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewCustomWorkoutRepository(db)
	coachID := createTestCoach(t, ctx, db, "coach@mindfit.com")
	studentID := createTestStudent(t, ctx, db, "casey@student.edu", &coachID)

	custom, err := repo.Upsert(ctx, UpsertCustomWorkoutInput{
		StudentID: studentID, MoodType: "Calm", IntensityLevel: "Medium",
		DurationMinutes: 45, Description: "1. Flow", IsActive: true, CreatedBy: coachID,
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	if _, err := repo.SetActive(ctx, custom.ID, false); err != nil {
		t.Fatalf("SetActive: %v", err)
	}

	if _, err := repo.GetActive(ctx, studentID, "Calm"); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows for deactivated override, got %v", err)
	}
}

func TestPaymentRoundTripsDecimalAmounts(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewPaymentRepository(db)
	coachID := createTestCoach(t, ctx, db, "coach@mindfit.com")
	studentID := createTestStudent(t, ctx, db, "alex@student.edu", &coachID)

	created, err := repo.Create(ctx, CreatePaymentInput{
		StudentID:      studentID,
		CoachID:        coachID,
		Amount:         decimal.RequireFromString("80.00"),
		CoachEarnings:  decimal.RequireFromString("72.00"),
		AdminFee:       decimal.RequireFromString("8.00"),
		CardNumber:     "************1111",
		ExpiryDate:     "12/28",
		CardholderName: "Alex Smith",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	payments, err := repo.ListByStudent(ctx, studentID)
	if err != nil {
		t.Fatalf("ListByStudent: %v", err)
	}
	if len(payments) != 1 {
		t.Fatalf("expected one payment, got %d", len(payments))
	}

	got := payments[0]
	if got.ID != created.ID {
		t.Fatalf("expected id %d, got %d", created.ID, got.ID)
	}
	if !got.Amount.Equal(decimal.RequireFromString("80.00")) {
		t.Fatalf("amount changed on round trip: %s", got.Amount)
	}
	if !got.CoachEarnings.Add(got.AdminFee).Equal(got.Amount) {
		t.Fatalf("split does not sum: %s + %s != %s", got.CoachEarnings, got.AdminFee, got.Amount)
	}
	if got.CardNumber != "************1111" {
		t.Fatalf("expected masked card, got %q", got.CardNumber)
	}
}

func TestRatingPairUniqueAndRangeChecked(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewRatingRepository(db)
	coachID := createTestCoach(t, ctx, db, "coach@mindfit.com")
	studentID := createTestStudent(t, ctx, db, "alex@student.edu", &coachID)

	err := repo.Create(ctx, &models.CoachRating{StudentID: studentID, CoachID: coachID, Rating: 6})
	if err == nil {
		t.Fatal("expected out-of-range rating to fail")
	}
	if !IsCheckViolation(err) {
		t.Fatalf("expected check violation, got %v", err)
	}

	if err := repo.Create(ctx, &models.CoachRating{StudentID: studentID, CoachID: coachID, Rating: 4}); err != nil {
		t.Fatalf("create rating: %v", err)
	}

	err = repo.Create(ctx, &models.CoachRating{StudentID: studentID, CoachID: coachID, Rating: 5})
	if err == nil {
		t.Fatal("expected duplicate pair to fail")
	}
	if !IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestRatingUpdateByPairOverwritesInPlace(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewRatingRepository(db)
	coachID := createTestCoach(t, ctx, db, "coach@mindfit.com")
	studentID := createTestStudent(t, ctx, db, "alex@student.edu", &coachID)

	if err := repo.Create(ctx, &models.CoachRating{StudentID: studentID, CoachID: coachID, Rating: 3}); err != nil {
		t.Fatalf("create: %v", err)
	}

	review := "much better after a month"
	updated, err := repo.UpdateByPair(ctx, &models.CoachRating{
		StudentID: studentID, CoachID: coachID, Rating: 5, Review: &review,
	})
	if err != nil {
		t.Fatalf("UpdateByPair: %v", err)
	}
	if updated.Rating != 5 || updated.Review == nil || *updated.Review != review {
		t.Fatalf("unexpected updated rating: %+v", updated)
	}

	if _, err := repo.UpdateByPair(ctx, &models.CoachRating{StudentID: studentID, CoachID: 999, Rating: 5}); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows for unknown pair, got %v", err)
	}
}

func TestWorkoutFirstByMoodTypePrefersLowestIntensityName(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	seed := []struct {
		mood, description, intensity, duration string
	}{
		{"Calm", "1. Yoga flow", "Medium", "45 minutes"},
		{"Calm", "1. Long walk", "High", "60 minutes"},
	}
	for _, w := range seed {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO workouts (mood_type, description, intensity_level, duration) VALUES (?, ?, ?, ?)`,
			w.mood, w.description, w.intensity, w.duration); err != nil {
			t.Fatalf("seed workout: %v", err)
		}
	}

	workout, err := NewWorkoutRepository(db).FirstByMoodType(ctx, "Calm")
	if err != nil {
		t.Fatalf("FirstByMoodType: %v", err)
	}
	// "High" sorts before "Medium"; the pick is alphabetical by intensity.
	if workout.IntensityLevel != "High" {
		t.Fatalf("expected High first, got %q", workout.IntensityLevel)
	}
}

func TestMoodCreateStampsLoggedAt(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewMoodRepository(db)
	studentID := createTestStudent(t, ctx, db, "alex@student.edu", nil)

	mood := &models.Mood{StudentID: studentID, MoodType: "Calm"}
	if err := repo.Create(ctx, mood); err != nil {
		t.Fatalf("create mood: %v", err)
	}
	if mood.LoggedAt.IsZero() {
		t.Fatal("expected LoggedAt set on create")
	}

	moods, err := repo.ListByStudentID(ctx, studentID)
	if err != nil {
		t.Fatalf("ListByStudentID: %v", err)
	}
	if len(moods) != 1 || moods[0].LoggedAt.IsZero() {
		t.Fatalf("expected stored timestamp, got %+v", moods)
	}
}

func TestMoodHistoryListsNewestFirst(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewMoodRepository(db)
	studentID := createTestStudent(t, ctx, db, "alex@student.edu", nil)

	for _, moodType := range []string{"Tired", "Stressed", "Excited"} {
		if err := repo.Create(ctx, &models.Mood{StudentID: studentID, MoodType: moodType}); err != nil {
			t.Fatalf("create mood: %v", err)
		}
		time.Sleep(2 * time.Millisecond)
	}

	moods, err := repo.ListByStudentID(ctx, studentID)
	if err != nil {
		t.Fatalf("ListByStudentID: %v", err)
	}
	if len(moods) != 3 {
		t.Fatalf("expected 3 moods, got %d", len(moods))
	}
	if moods[0].MoodType != "Excited" || moods[2].MoodType != "Tired" {
		t.Fatalf("expected newest first, got %s..%s", moods[0].MoodType, moods[2].MoodType)
	}
	for i := 1; i < len(moods); i++ {
		if moods[i].LoggedAt.After(moods[i-1].LoggedAt) {
			t.Fatalf("history not descending at index %d", i)
		}
	}
}

func TestMoodCountByType(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewMoodRepository(db)
	studentID := createTestStudent(t, ctx, db, "alex@student.edu", nil)

	for _, moodType := range []string{"Stressed", "Stressed", "Calm"} {
		if err := repo.Create(ctx, &models.Mood{StudentID: studentID, MoodType: moodType}); err != nil {
			t.Fatalf("create mood: %v", err)
		}
	}

	counts, err := repo.CountByType(ctx)
	if err != nil {
		t.Fatalf("CountByType: %v", err)
	}
	if counts["Stressed"] != 2 || counts["Calm"] != 1 {
		t.Fatalf("unexpected counts: %+v", counts)
	}
}
