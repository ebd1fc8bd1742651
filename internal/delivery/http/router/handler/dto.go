package handler

import (
	"time"

	"stundenplan/internal/domain/entity"
)

// Response DTOs keep the wire shape stable regardless of entity changes.
// The timetable endpoints serve bare arrays of these.

type SubjectResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

type TeacherResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

type LevelResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type CourseResponse struct {
	ID      uint             `json:"id"`
	Name    string           `json:"name"`
	Level   string           `json:"level"`
	Subject *SubjectResponse `json:"subject,omitempty"`
	Teacher *TeacherResponse `json:"teacher,omitempty"`
}

type CancellationResponse struct {
	ID       uint      `json:"id"`
	CourseID uint      `json:"courseId"`
	Date     time.Time `json:"date"`
	Comment  string    `json:"comment"`
}

// StudentResponse deliberately omits the password hash and salt.
type StudentResponse struct {
	Username  string             `json:"username"`
	FirstName string             `json:"firstName"`
	LastName  string             `json:"lastName"`
	Level     string             `json:"level"`
	Admin     bool               `json:"admin"`
	Subjects  []*SubjectResponse `json:"subjects"`
}

func toSubjectResponse(s *entity.Subject) *SubjectResponse {
	if s == nil {
		return nil
	}

	return &SubjectResponse{ID: s.ID, Name: s.Name, Abbreviation: s.Abbreviation}
}

func toTeacherResponse(t *entity.Teacher) *TeacherResponse {
	if t == nil {
		return nil
	}

	return &TeacherResponse{ID: t.ID, Name: t.Name, Abbreviation: t.Abbreviation}
}

func toLevelResponse(l *entity.Level) *LevelResponse {
	return &LevelResponse{ID: l.ID, Name: l.Name}
}

func toCourseResponse(c *entity.Course) *CourseResponse {
	return &CourseResponse{
		ID:      c.ID,
		Name:    c.Name,
		Level:   c.Level,
		Subject: toSubjectResponse(c.Subject),
		Teacher: toTeacherResponse(c.Teacher),
	}
}

func toCancellationResponse(c *entity.Cancellation) *CancellationResponse {
	return &CancellationResponse{
		ID:       c.ID,
		CourseID: c.CourseID,
		Date:     c.Date,
		Comment:  c.Comment,
	}
}

func toStudentResponse(s *entity.Student) *StudentResponse {
	subjects := make([]*SubjectResponse, 0, len(s.Subjects))
	for _, subject := range s.Subjects {
		subjects = append(subjects, toSubjectResponse(subject))
	}

	return &StudentResponse{
		Username:  s.Username,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Level:     s.Level,
		Admin:     s.Admin,
		Subjects:  subjects,
	}
}
