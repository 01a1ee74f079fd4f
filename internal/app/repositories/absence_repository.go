package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusspace/backend/internal/app/models"
)

// IAbsenceRepository defines the interface for absence-related database
// operations
type IAbsenceRepository interface {
	CreateMany(ctx context.Context, teacherIDs []int64, day string) ([]*models.TeacherAbsence, error)
	PopulateTeachers(ctx context.Context, absences []*models.TeacherAbsence) error
	GetByDay(ctx context.Context, day string) ([]*models.TeacherAbsence, error)
}

// AbsenceRepository implements IAbsenceRepository on a pgx pool
type AbsenceRepository struct {
	db *pgxpool.Pool
}

// NewAbsenceRepository creates a new AbsenceRepository
func NewAbsenceRepository(db *pgxpool.Pool) *AbsenceRepository {
	return &AbsenceRepository{db: db}
}

// CreateMany inserts one absence record per teacher ID, all for the same day.
// There is no uniqueness constraint on (teacher_id, day): repeated calls
// accumulate duplicate records.
func (r *AbsenceRepository) CreateMany(ctx context.Context, teacherIDs []int64, day string) ([]*models.TeacherAbsence, error) {
	batch := &pgx.Batch{}
	for _, teacherID := range teacherIDs {
		batch.Queue(`
			INSERT INTO teacher_absences (teacher_id, day)
			VALUES ($1, $2)
			RETURNING id, teacher_id, day, created_at`,
			teacherID, day)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	absences := make([]*models.TeacherAbsence, 0, len(teacherIDs))
	for range teacherIDs {
		absence := &models.TeacherAbsence{}
		err := results.QueryRow().Scan(
			&absence.ID, &absence.TeacherID, &absence.Day, &absence.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error inserting absence: %w", err)
		}
		absences = append(absences, absence)
	}

	return absences, nil
}

// PopulateTeachers expands the teacher reference of each record into the
// referenced user's name and email. Records whose user no longer exists keep
// a nil Teacher instead of failing.
func (r *AbsenceRepository) PopulateTeachers(ctx context.Context, absences []*models.TeacherAbsence) error {
	if len(absences) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(absences))
	for _, absence := range absences {
		ids = append(ids, absence.TeacherID)
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, full_name, email FROM users WHERE id = ANY($1)`, ids)
	if err != nil {
		return fmt.Errorf("error loading teachers: %w", err)
	}
	defer rows.Close()

	teachers := make(map[int64]*models.User)
	for rows.Next() {
		user := &models.User{}
		if err := rows.Scan(&user.ID, &user.FullName, &user.Email); err != nil {
			return fmt.Errorf("error scanning teacher: %w", err)
		}
		teachers[user.ID] = user
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating teachers: %w", err)
	}

	for _, absence := range absences {
		absence.Teacher = teachers[absence.TeacherID]
	}

	return nil
}

// GetByDay returns all absence records for a day with the teacher reference
// expanded in a single left join. A vanished user yields a nil Teacher.
func (r *AbsenceRepository) GetByDay(ctx context.Context, day string) ([]*models.TeacherAbsence, error) {
	rows, err := r.db.Query(ctx, `
		SELECT a.id, a.teacher_id, a.day, a.created_at, u.id, u.full_name, u.email
		FROM teacher_absences a
		LEFT JOIN users u ON u.id = a.teacher_id
		WHERE a.day = $1
		ORDER BY a.id`, day)
	if err != nil {
		return nil, fmt.Errorf("error listing absences: %w", err)
	}
	defer rows.Close()

	absences := make([]*models.TeacherAbsence, 0)
	for rows.Next() {
		absence := &models.TeacherAbsence{}
		var userID *int64
		var fullName, email *string
		if err := rows.Scan(
			&absence.ID, &absence.TeacherID, &absence.Day, &absence.CreatedAt,
			&userID, &fullName, &email); err != nil {
			return nil, fmt.Errorf("error scanning absence: %w", err)
		}
		if userID != nil {
			absence.Teacher = &models.User{
				ID:       *userID,
				FullName: *fullName,
				Email:    *email,
			}
		}
		absences = append(absences, absence)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating absences: %w", err)
	}

	return absences, nil
}
