package models

type Coach struct {
	ID                int64  `db:"id" json:"id"`
	Name              string `db:"name" json:"name"`
	Email             string `db:"email" json:"email"`
	Password          string `db:"password" json:"-"`
	YearsOfExperience int    `db:"years_of_experience" json:"years_of_experience"`
}
