package models

// Professor represents an instructor record.
type Professor struct {
	ID         string `db:"id" json:"id"`
	Name       string `db:"name" json:"name"`
	Department string `db:"department" json:"department"`
	Email      string `db:"email" json:"email"`
}
