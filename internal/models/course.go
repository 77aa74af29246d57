package models

// Course represents a taught course in the catalog.
type Course struct {
	ID               string `db:"id" json:"id"`
	Code             string `db:"code" json:"code"`
	Name             string `db:"name" json:"name"`
	Credits          int    `db:"credits" json:"credits"`
	Department       string `db:"department" json:"department"`
	EnrolledStudents int    `db:"enrolled_students" json:"enrolled_students"`
}
