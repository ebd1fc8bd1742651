package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stundenplan/internal/domain/entity"
	domainerrors "stundenplan/internal/domain/errors"
	"stundenplan/internal/usecase"
)

type fakeTimetableUsecase struct {
	subjects      []*entity.Subject
	courses       []*entity.Course
	teachers      []*entity.Teacher
	levels        []*entity.Level
	cancellations []*entity.Cancellation
	student       *entity.Student
	err           error

	gotUsername  string
	gotData      usecase.StudentDataInput
	gotCourseIDs []uint
}

func (f *fakeTimetableUsecase) ListSubjects(_ context.Context) ([]*entity.Subject, error) {
	return f.subjects, f.err
}

func (f *fakeTimetableUsecase) ListCourses(_ context.Context) ([]*entity.Course, error) {
	return f.courses, f.err
}

func (f *fakeTimetableUsecase) ListTeachers(_ context.Context) ([]*entity.Teacher, error) {
	return f.teachers, f.err
}

func (f *fakeTimetableUsecase) ListLevels(_ context.Context) ([]*entity.Level, error) {
	return f.levels, f.err
}

func (f *fakeTimetableUsecase) ListCancellations(_ context.Context) ([]*entity.Cancellation, error) {
	return f.cancellations, f.err
}

func (f *fakeTimetableUsecase) GetStudentWithSubjects(_ context.Context, username string) (*entity.Student, error) {
	f.gotUsername = username
	if f.student == nil {
		return nil, f.err
	}

	return f.student, nil
}

func (f *fakeTimetableUsecase) StoreStudentData(_ context.Context, username string, input usecase.StudentDataInput) error {
	f.gotUsername = username
	f.gotData = input

	return f.err
}

func (f *fakeTimetableUsecase) StoreStudentCourses(_ context.Context, username string, courseIDs []uint) error {
	f.gotUsername = username
	f.gotCourseIDs = courseIDs

	return f.err
}

func TestSubjectsHandler(t *testing.T) {
	uc := &fakeTimetableUsecase{subjects: []*entity.Subject{
		{ID: 1, Name: "Mathematik", Abbreviation: "M"},
	}}
	h := NewTimetableHandler(uc, testLogger())

	e := newTestEcho()
	e.GET("/schueler/faecherauswahl", h.Subjects)

	req := httptest.NewRequest(http.MethodGet, "/schueler/faecherauswahl", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Mathematik","abbreviation":"M"}]`, rec.Body.String())
}

func TestSubjectsHandler_EmptyListStaysAnArray(t *testing.T) {
	h := NewTimetableHandler(&fakeTimetableUsecase{}, testLogger())

	e := newTestEcho()
	e.GET("/schueler/faecherauswahl", h.Subjects)

	req := httptest.NewRequest(http.MethodGet, "/schueler/faecherauswahl", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCoursesHandler(t *testing.T) {
	uc := &fakeTimetableUsecase{courses: []*entity.Course{
		{
			ID:      7,
			Name:    "M-GK1",
			Level:   "Q1",
			Subject: &entity.Subject{ID: 1, Name: "Mathematik", Abbreviation: "M"},
			Teacher: &entity.Teacher{ID: 3, Name: "Musterfrau", Abbreviation: "MUS"},
		},
	}}
	h := NewTimetableHandler(uc, testLogger())

	e := newTestEcho()
	e.GET("/schueler/kurse", h.Courses)

	req := httptest.NewRequest(http.MethodGet, "/schueler/kurse", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"M-GK1"`)
	assert.Contains(t, rec.Body.String(), `"abbreviation":"MUS"`)
}

func TestStudentWithSubjectsHandler(t *testing.T) {
	uc := &fakeTimetableUsecase{student: &entity.Student{
		Username:     "alice@gao-online.de",
		FirstName:    "Alice",
		PasswordHash: "must-not-leak",
		Salt:         "must-not-leak-either",
		Subjects:     []*entity.Subject{{ID: 1, Name: "Mathematik", Abbreviation: "M"}},
	}}
	h := NewTimetableHandler(uc, testLogger())

	e := newTestEcho()
	e.GET("/schueler/schueler-mit-faechern/:benutzername", h.StudentWithSubjects)

	req := httptest.NewRequest(http.MethodGet, "/schueler/schueler-mit-faechern/alice@gao-online.de", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"username":"alice@gao-online.de"`)
	assert.Contains(t, body, `"name":"Mathematik"`)
	assert.NotContains(t, body, "must-not-leak")
}

func TestStudentWithSubjectsHandler_NotFound(t *testing.T) {
	uc := &fakeTimetableUsecase{err: domainerrors.ErrStudentNotFound}
	h := NewTimetableHandler(uc, testLogger())

	e := newTestEcho()
	e.GET("/schueler/schueler-mit-faechern/:benutzername", h.StudentWithSubjects)

	req := httptest.NewRequest(http.MethodGet, "/schueler/schueler-mit-faechern/nobody@gao-online.de", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "That user can't be found!", rec.Body.String())
}

func TestStoreStudentDataHandler(t *testing.T) {
	uc := &fakeTimetableUsecase{}
	h := NewTimetableHandler(uc, testLogger())

	e := newTestEcho()
	e.POST("/schueler/schuelerdaten/:benutzername", h.StoreStudentData)

	req := httptest.NewRequest(http.MethodPost, "/schueler/schuelerdaten/alice@gao-online.de",
		strings.NewReader(`{"firstName":"Alice","lastName":"Adler","level":"Q2"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice@gao-online.de", uc.gotUsername)
	assert.Equal(t, "Q2", uc.gotData.Level)
}

func TestStoreStudentCoursesHandler_BareArrayBody(t *testing.T) {
	uc := &fakeTimetableUsecase{}
	h := NewTimetableHandler(uc, testLogger())

	e := newTestEcho()
	e.POST("/schueler/kurse/:benutzername", h.StoreStudentCourses)

	req := httptest.NewRequest(http.MethodPost, "/schueler/kurse/alice@gao-online.de",
		strings.NewReader(`[7,9,12]`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []uint{7, 9, 12}, uc.gotCourseIDs)
}

func TestStoreStudentCoursesHandler_MalformedBody(t *testing.T) {
	h := NewTimetableHandler(&fakeTimetableUsecase{}, testLogger())

	e := newTestEcho()
	e.POST("/schueler/kurse/:benutzername", h.StoreStudentCourses)

	req := httptest.NewRequest(http.MethodPost, "/schueler/kurse/alice@gao-online.de",
		strings.NewReader(`{"not":"an array"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
