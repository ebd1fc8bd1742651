package impl

import (
	"context"

	"stundenplan/internal/domain/entity"
	"stundenplan/internal/domain/repository"
)

// In-memory repository fakes. They keep the transaction-bound factory shape
// of the real persistence layer while staying synchronous and inspectable.

type fakeStudentRepo struct {
	students map[string]*entity.Student
	courses  map[string][]uint
	failWith error
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{
		students: make(map[string]*entity.Student),
		courses:  make(map[string][]uint),
	}
}

func (r *fakeStudentRepo) FindByUsername(_ context.Context, username string) (*entity.Student, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	student, ok := r.students[username]
	if !ok {
		return nil, repository.ErrStudentNotFound
	}

	return student, nil
}

func (r *fakeStudentRepo) FindWithSubjects(ctx context.Context, username string) (*entity.Student, error) {
	return r.FindByUsername(ctx, username)
}

func (r *fakeStudentRepo) Exists(_ context.Context, username string) (bool, error) {
	if r.failWith != nil {
		return false, r.failWith
	}
	_, ok := r.students[username]

	return ok, nil
}

func (r *fakeStudentRepo) Create(_ context.Context, student *entity.Student) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.students[student.Username] = student

	return nil
}

func (r *fakeStudentRepo) Update(_ context.Context, student *entity.Student) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.students[student.Username] = student

	return nil
}

func (r *fakeStudentRepo) Delete(_ context.Context, username string) error {
	if r.failWith != nil {
		return r.failWith
	}
	if _, ok := r.students[username]; !ok {
		return repository.ErrStudentNotFound
	}
	delete(r.students, username)

	return nil
}

func (r *fakeStudentRepo) ReplaceCourses(_ context.Context, username string, courseIDs []uint) error {
	if r.failWith != nil {
		return r.failWith
	}
	if _, ok := r.students[username]; !ok {
		return repository.ErrStudentNotFound
	}
	r.courses[username] = courseIDs

	return nil
}

type fakePendingRepo struct {
	pending  map[string]*entity.PendingStudent
	failWith error
}

func newFakePendingRepo() *fakePendingRepo {
	return &fakePendingRepo{pending: make(map[string]*entity.PendingStudent)}
}

func (r *fakePendingRepo) FindByUsername(_ context.Context, username string) (*entity.PendingStudent, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	pending, ok := r.pending[username]
	if !ok {
		return nil, repository.ErrPendingNotFound
	}

	return pending, nil
}

func (r *fakePendingRepo) Exists(_ context.Context, username string) (bool, error) {
	if r.failWith != nil {
		return false, r.failWith
	}
	_, ok := r.pending[username]

	return ok, nil
}

func (r *fakePendingRepo) Create(_ context.Context, pending *entity.PendingStudent) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.pending[pending.Username] = pending

	return nil
}

func (r *fakePendingRepo) Delete(_ context.Context, username string) error {
	if r.failWith != nil {
		return r.failWith
	}
	delete(r.pending, username)

	return nil
}

type fakeRepoFactory struct {
	students *fakeStudentRepo
	pendings *fakePendingRepo
}

func (f *fakeRepoFactory) StudentRepo() repository.StudentRepository {
	return f.students
}

func (f *fakeRepoFactory) PendingRepo() repository.PendingStudentRepository {
	return f.pendings
}

// fakeTxManager runs the transactional function directly against the
// in-memory repositories. Rollback semantics are not modelled.
type fakeTxManager struct {
	factory *fakeRepoFactory
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

type sentMail struct {
	to  string
	key string
}

type fakeMailer struct {
	sent    []sentMail
	sendErr error
}

func (m *fakeMailer) SendConfirmation(to, key string) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, sentMail{to: to, key: key})

	return nil
}

func (m *fakeMailer) Enabled() bool { return true }

type fakeTimetableRepo struct {
	subjects      []*entity.Subject
	courses       []*entity.Course
	teachers      []*entity.Teacher
	levels        []*entity.Level
	cancellations []*entity.Cancellation
	failWith      error
}

func (r *fakeTimetableRepo) ListSubjects(_ context.Context) ([]*entity.Subject, error) {
	return r.subjects, r.failWith
}

func (r *fakeTimetableRepo) ListCourses(_ context.Context) ([]*entity.Course, error) {
	return r.courses, r.failWith
}

func (r *fakeTimetableRepo) ListTeachers(_ context.Context) ([]*entity.Teacher, error) {
	return r.teachers, r.failWith
}

func (r *fakeTimetableRepo) ListLevels(_ context.Context) ([]*entity.Level, error) {
	return r.levels, r.failWith
}

func (r *fakeTimetableRepo) ListCancellations(_ context.Context) ([]*entity.Cancellation, error) {
	return r.cancellations, r.failWith
}
