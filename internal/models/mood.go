package models

import "time"

// MoodTypes is the fixed vocabulary of loggable moods. Matching is
// case-sensitive everywhere, including the workout lookup.
var MoodTypes = []string{"Stressed", "Calm", "Tired", "Excited"}

type Mood struct {
	ID        int64     `db:"id" json:"id"`
	StudentID int64     `db:"student_id" json:"student_id"`
	MoodType  string    `db:"mood_type" json:"mood_type"`
	Notes     *string   `db:"notes" json:"notes"`
	LoggedAt  time.Time `db:"logged_at" json:"logged_at"`
}

func ValidMoodType(moodType string) bool {
	for _, m := range MoodTypes {
		if m == moodType {
			return true
		}
	}
	return false
}
