package models

type Student struct {
	ID             int64   `db:"id" json:"id"`
	Name           string  `db:"name" json:"name"`
	Email          string  `db:"email" json:"email"`
	Password       string  `db:"password" json:"-"`
	CoachID        *int64  `db:"coach_id" json:"coach_id"`
	CoachName      *string `db:"coach_name" json:"coach_name,omitempty"`
	FreeChangeUsed bool    `db:"free_change_used" json:"free_change_used"`
}
