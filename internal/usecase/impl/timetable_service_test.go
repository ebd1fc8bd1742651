package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stundenplan/internal/domain/entity"
	domainerrors "stundenplan/internal/domain/errors"
	"stundenplan/internal/infra/auth"
	"stundenplan/internal/usecase"
)

type timetableFixture struct {
	timetable *fakeTimetableRepo
	students  *fakeStudentRepo
	svc       usecase.TimetableUsecase
}

func newTimetableFixture(t *testing.T) *timetableFixture {
	t.Helper()

	timetable := &fakeTimetableRepo{}
	students := newFakeStudentRepo()
	txManager := &fakeTxManager{factory: &fakeRepoFactory{students: students, pendings: newFakePendingRepo()}}

	return &timetableFixture{
		timetable: timetable,
		students:  students,
		svc:       NewTimetableService(timetable, txManager, testLogger()),
	}
}

func TestListSubjects(t *testing.T) {
	f := newTimetableFixture(t)
	f.timetable.subjects = []*entity.Subject{
		{ID: 1, Name: "Mathematik", Abbreviation: "M"},
		{ID: 2, Name: "Deutsch", Abbreviation: "D"},
	}

	subjects, err := f.svc.ListSubjects(context.Background())
	require.NoError(t, err)
	require.Len(t, subjects, 2)
	assert.Equal(t, "Mathematik", subjects[0].Name)
}

func TestListCourses_ResolvesSubjectAndTeacher(t *testing.T) {
	f := newTimetableFixture(t)
	f.timetable.courses = []*entity.Course{
		{
			ID:      7,
			Name:    "M-GK1",
			Level:   "Q1",
			Subject: &entity.Subject{ID: 1, Name: "Mathematik", Abbreviation: "M"},
			Teacher: &entity.Teacher{ID: 3, Name: "Musterfrau", Abbreviation: "MUS"},
		},
	}

	courses, err := f.svc.ListCourses(context.Background())
	require.NoError(t, err)
	require.Len(t, courses, 1)
	require.NotNil(t, courses[0].Subject)
	require.NotNil(t, courses[0].Teacher)
	assert.Equal(t, "Mathematik", courses[0].Subject.Name)
}

func TestListSubjects_RepositoryFailurePropagates(t *testing.T) {
	f := newTimetableFixture(t)
	f.timetable.failWith = assert.AnError

	_, err := f.svc.ListSubjects(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestGetStudentWithSubjects(t *testing.T) {
	f := newTimetableFixture(t)
	f.students.students["alice@gao-online.de"] = &entity.Student{
		Username: "alice@gao-online.de",
		Subjects: []*entity.Subject{{ID: 1, Name: "Mathematik"}},
	}

	student, err := f.svc.GetStudentWithSubjects(context.Background(), "alice@gao-online.de")
	require.NoError(t, err)
	require.Len(t, student.Subjects, 1)
}

func TestGetStudentWithSubjects_UnknownStudent(t *testing.T) {
	f := newTimetableFixture(t)

	_, err := f.svc.GetStudentWithSubjects(context.Background(), "nobody@gao-online.de")
	assert.ErrorIs(t, err, domainerrors.ErrStudentNotFound)
}

func TestStoreStudentData(t *testing.T) {
	f := newTimetableFixture(t)
	seedStudent(t, f.students, auth.NewSaltedHasher(), "alice@gao-online.de", "secret", false)

	err := f.svc.StoreStudentData(context.Background(), "alice@gao-online.de", usecase.StudentDataInput{
		FirstName: "Alice",
		LastName:  "Adler",
		Level:     "Q2",
	})
	require.NoError(t, err)

	student := f.students.students["alice@gao-online.de"]
	assert.Equal(t, "Alice", student.FirstName)
	assert.Equal(t, "Q2", student.Level)
}

func TestStoreStudentData_UnknownStudent(t *testing.T) {
	f := newTimetableFixture(t)

	err := f.svc.StoreStudentData(context.Background(), "nobody@gao-online.de", usecase.StudentDataInput{})
	assert.ErrorIs(t, err, domainerrors.ErrStudentNotFound)
}

func TestStoreStudentCourses(t *testing.T) {
	f := newTimetableFixture(t)
	seedStudent(t, f.students, auth.NewSaltedHasher(), "alice@gao-online.de", "secret", false)

	require.NoError(t, f.svc.StoreStudentCourses(context.Background(), "alice@gao-online.de", []uint{7, 9}))
	assert.Equal(t, []uint{7, 9}, f.students.courses["alice@gao-online.de"])
}

func TestStoreStudentCourses_UnknownStudent(t *testing.T) {
	f := newTimetableFixture(t)

	err := f.svc.StoreStudentCourses(context.Background(), "nobody@gao-online.de", []uint{1})
	assert.ErrorIs(t, err, domainerrors.ErrStudentNotFound)
}
