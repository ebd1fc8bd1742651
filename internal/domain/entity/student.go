// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Student is the central account entity. The username doubles as the login
// identifier and is an email address constrained to the school's domain.
type Student struct {
	Username     string     // Unique, email-shaped login name.
	FirstName    string
	LastName     string
	Level        string     // School level the student attends, e.g. "Q1".
	PasswordHash string     // Salted hash of the login password.
	Salt         string     // Per-student random salt fed into the hash.
	Admin        bool       // Admin accounts bypass the ownership check of the request gate.
	Subjects     []*Subject // Chosen subjects, loaded on demand.
	Courses      []*Course  // Enrolled courses, loaded on demand.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PendingStudent is a registration awaiting email confirmation. It exists
// only until confirmed, at which point it is promoted to a Student, or until
// it is cleaned up. The confirmation key is single-use and compared by exact
// string match.
type PendingStudent struct {
	Username        string
	FirstName       string
	LastName        string
	Level           string
	PasswordHash    string
	Salt            string
	ConfirmationKey string
	CreatedAt       time.Time
}

// Promote converts a confirmed pending registration into an active student
// account. The confirmation key is not carried over.
func (p *PendingStudent) Promote() *Student {
	return &Student{
		Username:     p.Username,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Level:        p.Level,
		PasswordHash: p.PasswordHash,
		Salt:         p.Salt,
	}
}
