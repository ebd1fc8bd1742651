package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"stundenplan/internal/delivery/http/response"
	domainerrors "stundenplan/internal/domain/errors"
	"stundenplan/internal/usecase"
)

// TimetableHandler serves the timetable reference data and the per-student
// selection endpoints.
type TimetableHandler struct {
	uc     usecase.TimetableUsecase
	logger *slog.Logger
}

// NewTimetableHandler is the constructor for TimetableHandler, injected by Fx.
func NewTimetableHandler(uc usecase.TimetableUsecase, logger *slog.Logger) *TimetableHandler {
	return &TimetableHandler{
		uc:     uc,
		logger: logger,
	}
}

// Subjects lists every subject offered for course selection.
func (h *TimetableHandler) Subjects(c echo.Context) error {
	subjects, err := h.uc.ListSubjects(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	payload := make([]*SubjectResponse, 0, len(subjects))
	for _, s := range subjects {
		payload = append(payload, toSubjectResponse(s))
	}

	return response.JSON(c, http.StatusOK, payload)
}

// Courses lists every course with subject and teacher resolved.
func (h *TimetableHandler) Courses(c echo.Context) error {
	courses, err := h.uc.ListCourses(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	payload := make([]*CourseResponse, 0, len(courses))
	for _, course := range courses {
		payload = append(payload, toCourseResponse(course))
	}

	return response.JSON(c, http.StatusOK, payload)
}

// Teachers lists the teaching staff.
func (h *TimetableHandler) Teachers(c echo.Context) error {
	teachers, err := h.uc.ListTeachers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	payload := make([]*TeacherResponse, 0, len(teachers))
	for _, t := range teachers {
		payload = append(payload, toTeacherResponse(t))
	}

	return response.JSON(c, http.StatusOK, payload)
}

// Levels lists the school levels.
func (h *TimetableHandler) Levels(c echo.Context) error {
	levels, err := h.uc.ListLevels(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	payload := make([]*LevelResponse, 0, len(levels))
	for _, l := range levels {
		payload = append(payload, toLevelResponse(l))
	}

	return response.JSON(c, http.StatusOK, payload)
}

// Cancellations lists the recorded lesson cancellations.
func (h *TimetableHandler) Cancellations(c echo.Context) error {
	cancellations, err := h.uc.ListCancellations(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	payload := make([]*CancellationResponse, 0, len(cancellations))
	for _, cancellation := range cancellations {
		payload = append(payload, toCancellationResponse(cancellation))
	}

	return response.JSON(c, http.StatusOK, payload)
}

// StudentWithSubjects returns the student named in the route together with
// their chosen subjects. Ownership is enforced by the route middleware.
func (h *TimetableHandler) StudentWithSubjects(c echo.Context) error {
	username := c.Param("benutzername")

	student, err := h.uc.GetStudentWithSubjects(c.Request().Context(), username)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, toStudentResponse(student))
}

// StoreStudentData updates the profile fields of the student named in the
// route.
func (h *TimetableHandler) StoreStudentData(c echo.Context) error {
	var input usecase.StudentDataInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed
	}

	username := c.Param("benutzername")
	if err := h.uc.StoreStudentData(c.Request().Context(), username, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Text(c, http.StatusOK, "Data stored!")
}

// StoreStudentCourses replaces the course enrolment of the student named in
// the route. The body is a bare JSON array of course IDs.
func (h *TimetableHandler) StoreStudentCourses(c echo.Context) error {
	var courseIDs []uint
	if err := json.NewDecoder(c.Request().Body).Decode(&courseIDs); err != nil {
		return domainerrors.ErrValidationFailed
	}

	username := c.Param("benutzername")
	if err := h.uc.StoreStudentCourses(c.Request().Context(), username, courseIDs); err != nil {
		return errors.WithStack(err)
	}

	return response.Text(c, http.StatusOK, "Courses stored!")
}
