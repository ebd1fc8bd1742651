package postgres

import (
	"context"

	"stundenplan/internal/domain/entity"
	"stundenplan/internal/domain/repository"
	"stundenplan/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// timetableRepository serves the read-mostly reference data through GORM.
type timetableRepository struct {
	db *gorm.DB
}

// NewTimetableRepository is the constructor for timetableRepository.
func NewTimetableRepository(db *gorm.DB) repository.TimetableRepository {
	return &timetableRepository{db: db}
}

// ListSubjects returns every subject available for course selection.
func (repo *timetableRepository) ListSubjects(ctx context.Context) ([]*entity.Subject, error) {
	var subjectMs []*model.SubjectModel
	if err := repo.db.WithContext(ctx).Order("name").Find(&subjectMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list subjects")
	}

	subjects := make([]*entity.Subject, 0, len(subjectMs))
	for _, subjectM := range subjectMs {
		subjects = append(subjects, toSubjectDomain(subjectM))
	}

	return subjects, nil
}

// ListCourses returns every course with subject and teacher resolved.
func (repo *timetableRepository) ListCourses(ctx context.Context) ([]*entity.Course, error) {
	var courseMs []*model.CourseModel
	err := repo.db.WithContext(ctx).
		Preload("Subject").
		Preload("Teacher").
		Order("name").
		Find(&courseMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list courses")
	}

	courses := make([]*entity.Course, 0, len(courseMs))
	for _, courseM := range courseMs {
		courses = append(courses, toCourseDomain(courseM))
	}

	return courses, nil
}

// ListTeachers returns all teaching staff reference data.
func (repo *timetableRepository) ListTeachers(ctx context.Context) ([]*entity.Teacher, error) {
	var teacherMs []*model.TeacherModel
	if err := repo.db.WithContext(ctx).Order("name").Find(&teacherMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list teachers")
	}

	teachers := make([]*entity.Teacher, 0, len(teacherMs))
	for _, teacherM := range teacherMs {
		teachers = append(teachers, &entity.Teacher{
			ID:           teacherM.ID,
			Name:         teacherM.Name,
			Abbreviation: teacherM.Abbreviation,
		})
	}

	return teachers, nil
}

// ListLevels returns all school levels.
func (repo *timetableRepository) ListLevels(ctx context.Context) ([]*entity.Level, error) {
	var levelMs []*model.LevelModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&levelMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list levels")
	}

	levels := make([]*entity.Level, 0, len(levelMs))
	for _, levelM := range levelMs {
		levels = append(levels, &entity.Level{ID: levelM.ID, Name: levelM.Name})
	}

	return levels, nil
}

// ListCancellations returns all recorded lesson cancellations.
func (repo *timetableRepository) ListCancellations(ctx context.Context) ([]*entity.Cancellation, error) {
	var cancellationMs []*model.CancellationModel
	if err := repo.db.WithContext(ctx).Order("date").Find(&cancellationMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list cancellations")
	}

	cancellations := make([]*entity.Cancellation, 0, len(cancellationMs))
	for _, cancellationM := range cancellationMs {
		cancellations = append(cancellations, &entity.Cancellation{
			ID:       cancellationM.ID,
			CourseID: cancellationM.CourseID,
			Date:     cancellationM.Date,
			Comment:  cancellationM.Comment,
		})
	}

	return cancellations, nil
}

// toSubjectDomain converts a GORM SubjectModel to a domain Subject entity.
func toSubjectDomain(data *model.SubjectModel) *entity.Subject {
	if data == nil {
		return nil
	}

	return &entity.Subject{
		ID:           data.ID,
		Name:         data.Name,
		Abbreviation: data.Abbreviation,
	}
}

// toCourseDomain converts a GORM CourseModel to a domain Course entity.
func toCourseDomain(data *model.CourseModel) *entity.Course {
	if data == nil {
		return nil
	}

	course := &entity.Course{
		ID:      data.ID,
		Name:    data.Name,
		Level:   data.Level,
		Subject: toSubjectDomain(data.Subject),
	}
	if data.Teacher != nil {
		course.Teacher = &entity.Teacher{
			ID:           data.Teacher.ID,
			Name:         data.Teacher.Name,
			Abbreviation: data.Teacher.Abbreviation,
		}
	}

	return course
}
