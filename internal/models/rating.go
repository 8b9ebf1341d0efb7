package models

import "time"

// CoachRating holds one student's rating of one coach. The pair is unique;
// a second submission conflicts and must go through the update path instead.
type CoachRating struct {
	ID        int64     `db:"id" json:"id"`
	StudentID int64     `db:"student_id" json:"student_id"`
	CoachID   int64     `db:"coach_id" json:"coach_id"`
	Rating    int       `db:"rating" json:"rating"`
	Review    *string   `db:"review" json:"review"`
	RatedAt   time.Time `db:"rated_at" json:"rated_at"`
}
