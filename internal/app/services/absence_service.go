package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campusspace/backend/internal/app/models"
	"github.com/campusspace/backend/internal/app/models/dto"
	"github.com/campusspace/backend/internal/app/repositories"
	"github.com/campusspace/backend/internal/pkg/apperrors"
)

// AbsenceService records and queries which teachers are absent on a day.
type AbsenceService interface {
	AddTeachersAbsent(ctx context.Context, caller *models.CallerIdentity, req *dto.AddAbsencesRequest) ([]*models.TeacherAbsence, error)
	GetTeachersAbsent(ctx context.Context, day string) ([]*models.TeacherAbsence, error)
}

type absenceService struct {
	absenceRepo repositories.IAbsenceRepository
	logger      zerolog.Logger
}

// NewAbsenceService creates a new AbsenceService
func NewAbsenceService(absenceRepo repositories.IAbsenceRepository, logger zerolog.Logger) AbsenceService {
	return &absenceService{
		absenceRepo: absenceRepo,
		logger:      logger,
	}
}

// AddTeachersAbsent creates one absence record per teacher ID, all for the
// same day, then expands each record's teacher reference for the response.
// The insert and the expansion are separate steps: records already committed
// are not rolled back if the expansion fails. Calling this twice with the
// same input produces duplicate records.
func (s *absenceService) AddTeachersAbsent(ctx context.Context, caller *models.CallerIdentity, req *dto.AddAbsencesRequest) ([]*models.TeacherAbsence, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	if len(req.Teachers) == 0 || req.Day == "" {
		return nil, apperrors.ErrValidationFailed
	}

	absences, err := s.absenceRepo.CreateMany(ctx, req.Teachers, req.Day)
	if err != nil {
		return nil, err
	}

	// A true persistence failure surfaces from CreateMany itself, this only
	// guards the degenerate empty result.
	if len(absences) == 0 {
		return nil, apperrors.ErrAbsencesNotAdded
	}

	if err := s.absenceRepo.PopulateTeachers(ctx, absences); err != nil {
		s.logger.Error().Err(err).Str("day", req.Day).Msg("Failed to expand teacher references")
		return nil, apperrors.ErrAbsenceTeacherLoad
	}

	return absences, nil
}

// GetTeachersAbsent returns all absence records for a day with the teacher
// reference expanded. Zero matches is reported as not found, not as an empty
// list. Records whose user has been deleted come back with a nil teacher.
func (s *absenceService) GetTeachersAbsent(ctx context.Context, day string) ([]*models.TeacherAbsence, error) {
	if day == "" {
		return nil, apperrors.ErrValidationFailed
	}

	absences, err := s.absenceRepo.GetByDay(ctx, day)
	if err != nil {
		return nil, err
	}

	if len(absences) == 0 {
		return nil, apperrors.ErrNoAbsencesFound
	}

	return absences, nil
}
