package entity

import "time"

// Subject (Fach) is a school subject students pick during course selection.
type Subject struct {
	ID           uint
	Name         string
	Abbreviation string
}

// Teacher (Lehrer) is reference data about teaching staff.
type Teacher struct {
	ID           uint
	Name         string
	Abbreviation string
}

// Level (Stufe) names a school level, e.g. "EF", "Q1", "Q2".
type Level struct {
	ID   uint
	Name string
}

// Course (Kurs) is a concrete teaching unit of a subject at a level.
type Course struct {
	ID      uint
	Name    string
	Level   string
	Subject *Subject
	Teacher *Teacher
}

// Cancellation (Entfall) records a cancelled lesson of a course.
type Cancellation struct {
	ID       uint
	CourseID uint
	Date     time.Time
	Comment  string
}
