package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/campusspace/backend/internal/app/models"
	"github.com/campusspace/backend/internal/app/models/dto"
	"github.com/campusspace/backend/internal/pkg/apperrors"
)

type mockAbsenceRepo struct {
	mock.Mock
}

func (m *mockAbsenceRepo) CreateMany(ctx context.Context, teacherIDs []int64, day string) ([]*models.TeacherAbsence, error) {
	args := m.Called(ctx, teacherIDs, day)
	if absences := args.Get(0); absences != nil {
		return absences.([]*models.TeacherAbsence), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAbsenceRepo) PopulateTeachers(ctx context.Context, absences []*models.TeacherAbsence) error {
	args := m.Called(ctx, absences)
	return args.Error(0)
}

func (m *mockAbsenceRepo) GetByDay(ctx context.Context, day string) ([]*models.TeacherAbsence, error) {
	args := m.Called(ctx, day)
	if absences := args.Get(0); absences != nil {
		return absences.([]*models.TeacherAbsence), args.Error(1)
	}
	return nil, args.Error(1)
}

func newTestAbsenceService(repo *mockAbsenceRepo) AbsenceService {
	return NewAbsenceService(repo, zerolog.Nop())
}

func makeAbsences(day string, teacherIDs ...int64) []*models.TeacherAbsence {
	absences := make([]*models.TeacherAbsence, 0, len(teacherIDs))
	for i, id := range teacherIDs {
		absences = append(absences, &models.TeacherAbsence{
			ID:        int64(i + 1),
			TeacherID: id,
			Day:       day,
			CreatedAt: time.Now(),
		})
	}
	return absences
}

func TestAddTeachersAbsentAnonymous(t *testing.T) {
	repo := new(mockAbsenceRepo)
	svc := newTestAbsenceService(repo)

	_, err := svc.AddTeachersAbsent(context.Background(), nil, &dto.AddAbsencesRequest{
		Teachers: []int64{1, 2}, Day: "2024-05-01",
	})

	assert.ErrorIs(t, err, apperrors.ErrNotAuthenticated)
	repo.AssertNotCalled(t, "CreateMany", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddTeachersAbsentNonAdmin(t *testing.T) {
	repo := new(mockAbsenceRepo)
	svc := newTestAbsenceService(repo)

	_, err := svc.AddTeachersAbsent(context.Background(), teacherCaller, &dto.AddAbsencesRequest{
		Teachers: []int64{1, 2}, Day: "2024-05-01",
	})

	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	repo.AssertNotCalled(t, "CreateMany", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddTeachersAbsentMissingInput(t *testing.T) {
	repo := new(mockAbsenceRepo)
	svc := newTestAbsenceService(repo)

	_, err := svc.AddTeachersAbsent(context.Background(), adminCaller, &dto.AddAbsencesRequest{
		Teachers: nil, Day: "2024-05-01",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.AddTeachersAbsent(context.Background(), adminCaller, &dto.AddAbsencesRequest{
		Teachers: []int64{1}, Day: "",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestAddTeachersAbsentSuccess(t *testing.T) {
	absences := makeAbsences("2024-05-01", 1, 2)
	repo := new(mockAbsenceRepo)
	repo.On("CreateMany", mock.Anything, []int64{1, 2}, "2024-05-01").Return(absences, nil)
	repo.On("PopulateTeachers", mock.Anything, absences).Run(func(args mock.Arguments) {
		for _, absence := range args.Get(1).([]*models.TeacherAbsence) {
			absence.Teacher = &models.User{
				ID:       absence.TeacherID,
				FullName: "Teacher Name",
				Email:    "teacher@campus-space.app",
			}
		}
	}).Return(nil)
	svc := newTestAbsenceService(repo)

	result, err := svc.AddTeachersAbsent(context.Background(), adminCaller, &dto.AddAbsencesRequest{
		Teachers: []int64{1, 2}, Day: "2024-05-01",
	})

	require.NoError(t, err)
	require.Len(t, result, 2)
	for _, absence := range result {
		assert.Equal(t, "2024-05-01", absence.Day)
		require.NotNil(t, absence.Teacher)
		assert.NotEmpty(t, absence.Teacher.FullName)
		assert.NotEmpty(t, absence.Teacher.Email)
	}
}

func TestAddTeachersAbsentNotIdempotent(t *testing.T) {
	repo := new(mockAbsenceRepo)
	repo.On("CreateMany", mock.Anything, []int64{1}, "2024-05-01").Return(makeAbsences("2024-05-01", 1), nil).Twice()
	repo.On("PopulateTeachers", mock.Anything, mock.Anything).Return(nil)
	svc := newTestAbsenceService(repo)

	req := &dto.AddAbsencesRequest{Teachers: []int64{1}, Day: "2024-05-01"}

	_, err := svc.AddTeachersAbsent(context.Background(), adminCaller, req)
	require.NoError(t, err)

	// The same input again inserts a second set of records.
	_, err = svc.AddTeachersAbsent(context.Background(), adminCaller, req)
	require.NoError(t, err)

	repo.AssertNumberOfCalls(t, "CreateMany", 2)
}

func TestAddTeachersAbsentEmptyInsert(t *testing.T) {
	repo := new(mockAbsenceRepo)
	repo.On("CreateMany", mock.Anything, mock.Anything, mock.Anything).Return([]*models.TeacherAbsence{}, nil)
	svc := newTestAbsenceService(repo)

	_, err := svc.AddTeachersAbsent(context.Background(), adminCaller, &dto.AddAbsencesRequest{
		Teachers: []int64{1}, Day: "2024-05-01",
	})

	assert.ErrorIs(t, err, apperrors.ErrAbsencesNotAdded)
}

func TestAddTeachersAbsentExpansionFailure(t *testing.T) {
	repo := new(mockAbsenceRepo)
	repo.On("CreateMany", mock.Anything, mock.Anything, mock.Anything).Return(makeAbsences("2024-05-01", 1), nil)
	repo.On("PopulateTeachers", mock.Anything, mock.Anything).Return(assert.AnError)
	svc := newTestAbsenceService(repo)

	_, err := svc.AddTeachersAbsent(context.Background(), adminCaller, &dto.AddAbsencesRequest{
		Teachers: []int64{1}, Day: "2024-05-01",
	})

	assert.ErrorIs(t, err, apperrors.ErrAbsenceTeacherLoad)
}

func TestGetTeachersAbsentMissingDay(t *testing.T) {
	repo := new(mockAbsenceRepo)
	svc := newTestAbsenceService(repo)

	_, err := svc.GetTeachersAbsent(context.Background(), "")

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestGetTeachersAbsentEmptyIsNotFound(t *testing.T) {
	repo := new(mockAbsenceRepo)
	repo.On("GetByDay", mock.Anything, "2024-05-02").Return([]*models.TeacherAbsence{}, nil)
	svc := newTestAbsenceService(repo)

	_, err := svc.GetTeachersAbsent(context.Background(), "2024-05-02")

	assert.ErrorIs(t, err, apperrors.ErrNoAbsencesFound)
}

func TestGetTeachersAbsentVanishedUser(t *testing.T) {
	absences := makeAbsences("2024-05-01", 1, 2)
	absences[0].Teacher = &models.User{ID: 1, FullName: "Jane Doe", Email: "jane@campus-space.app"}
	// Absence 2 points at a deleted user; the read still succeeds.
	absences[1].Teacher = nil

	repo := new(mockAbsenceRepo)
	repo.On("GetByDay", mock.Anything, "2024-05-01").Return(absences, nil)
	svc := newTestAbsenceService(repo)

	result, err := svc.GetTeachersAbsent(context.Background(), "2024-05-01")

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.NotNil(t, result[0].Teacher)
	assert.Nil(t, result[1].Teacher)
}
