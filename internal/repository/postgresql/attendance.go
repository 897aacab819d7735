package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/staffhub-hr/workforce-backend-go/internal/domain/attendance"
	"github.com/staffhub-hr/workforce-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `id, user_id, date, sign_in, sign_out, working_hours, status, created_at, updated_at`

// GetOrCreate implements attendance.AttendanceRepository.
//
// The insert-on-conflict-do-nothing plus re-fetch keeps two concurrent
// sign-ins for the same (user, date) from creating two rows: the loser
// of the insert race reads the winner's row and proceeds.
func (a *attendanceRepository) GetOrCreate(ctx context.Context, userID string, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	insert := `
		INSERT INTO attendances (id, user_id, date, working_hours, status)
		VALUES ($1, $2, $3, 0, 'ABSENT')
		ON CONFLICT (user_id, date) DO NOTHING
		RETURNING ` + attendanceColumns

	var att attendance.Attendance
	err := q.QueryRow(ctx, insert, uuid.NewString(), userID, date).Scan(
		&att.ID, &att.UserID, &att.Date, &att.SignIn, &att.SignOut,
		&att.WorkingHours, &att.Status, &att.CreatedAt, &att.UpdatedAt,
	)
	if err == nil {
		return att, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	// Conflict: the row already exists, fetch it once.
	existing, err := a.GetByUserAndDate(ctx, userID, date)
	if err != nil {
		return attendance.Attendance{}, err
	}
	if existing == nil {
		return attendance.Attendance{}, attendance.ErrRecordNotFound
	}
	return *existing, nil
}

// SetSignIn implements attendance.AttendanceRepository.
//
// The sign_in IS NULL guard makes the transition atomic: if another
// request signed in between the caller's read and this update, zero
// rows match and ErrAlreadySignedIn is returned.
func (a *attendanceRepository) SetSignIn(ctx context.Context, id string, signIn time.Time, status string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET sign_in = $1, status = $2, updated_at = NOW()
		WHERE id = $3 AND sign_in IS NULL
		RETURNING ` + attendanceColumns

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, signIn, status, id).Scan(
		&att.ID, &att.UserID, &att.Date, &att.SignIn, &att.SignOut,
		&att.WorkingHours, &att.Status, &att.CreatedAt, &att.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAlreadySignedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to set sign-in: %w", err)
	}

	return att, nil
}

// SetSignOut implements attendance.AttendanceRepository.
func (a *attendanceRepository) SetSignOut(ctx context.Context, id string, signOut time.Time, workingHours float64, status string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET sign_out = $1, working_hours = $2, status = $3, updated_at = NOW()
		WHERE id = $4 AND sign_out IS NULL
		RETURNING ` + attendanceColumns

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, signOut, workingHours, status, id).Scan(
		&att.ID, &att.UserID, &att.Date, &att.SignIn, &att.SignOut,
		&att.WorkingHours, &att.Status, &att.CreatedAt, &att.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAlreadySignedOut
		}
		return attendance.Attendance{}, fmt.Errorf("failed to set sign-out: %w", err)
	}

	return att, nil
}

// GetByUserAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE user_id = $1 AND date = $2
		LIMIT 1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, userID, date).Scan(
		&att.ID, &att.UserID, &att.Date, &att.SignIn, &att.SignOut,
		&att.WorkingHours, &att.Status, &att.CreatedAt, &att.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No existing attendance found
		}
		return nil, fmt.Errorf("failed to get attendance by user and date: %w", err)
	}

	return &att, nil
}

// ListByUser implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByUser(ctx context.Context, userID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE user_id = $1
		ORDER BY date DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by user: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(
			&att.ID, &att.UserID, &att.Date, &att.SignIn, &att.SignOut,
			&att.WorkingHours, &att.Status, &att.CreatedAt, &att.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		records = append(records, att)
	}

	return records, rows.Err()
}

// Summarize implements attendance.AttendanceRepository.
func (a *attendanceRepository) Summarize(ctx context.Context, userID string) (attendance.Summary, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'PRESENT'),
			COUNT(*) FILTER (WHERE status = 'HALF_DAY'),
			COUNT(*) FILTER (WHERE status = 'ABSENT'),
			COALESCE(SUM(working_hours), 0)
		FROM attendances
		WHERE user_id = $1
	`

	var s attendance.Summary
	err := q.QueryRow(ctx, query, userID).Scan(
		&s.PresentDays, &s.HalfDays, &s.AbsentDays, &s.TotalWorkingHours,
	)
	if err != nil {
		return attendance.Summary{}, fmt.Errorf("failed to summarize attendance: %w", err)
	}

	return s, nil
}

// CloseOpenBefore implements attendance.AttendanceRepository.
//
// Rows signed in but never signed out keep their tentative status
// forever; the day-end job downgrades them once their date has passed.
// sign_out stays NULL so the record still shows no sign-out happened.
func (a *attendanceRepository) CloseOpenBefore(ctx context.Context, date time.Time) (int, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET status = 'ABSENT', updated_at = NOW()
		WHERE sign_out IS NULL AND date < $1 AND status <> 'ABSENT'
	`

	tag, err := q.Exec(ctx, query, date)
	if err != nil {
		return 0, fmt.Errorf("failed to close open attendances: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

// ListForReport implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListForReport(ctx context.Context, filter attendance.ReportFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.user_id, a.date, a.sign_in, a.sign_out, a.working_hours, a.status,
			   a.created_at, a.updated_at,
			   u.email AS user_email,
			   u.full_name AS user_full_name
		FROM attendances a
		LEFT JOIN users u ON u.id = a.user_id
		WHERE 1=1
	`

	args := []interface{}{}
	argPos := 1

	if filter.UserID != "" && filter.UserID != "all" {
		query += fmt.Sprintf(" AND a.user_id = $%d", argPos)
		args = append(args, filter.UserID)
		argPos++
	}
	if filter.Date != "" {
		query += fmt.Sprintf(" AND a.date = $%d", argPos)
		args = append(args, filter.Date)
		argPos++
	}

	query += " ORDER BY a.date DESC, u.email"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for report: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(
			&att.ID, &att.UserID, &att.Date, &att.SignIn, &att.SignOut,
			&att.WorkingHours, &att.Status, &att.CreatedAt, &att.UpdatedAt,
			&att.UserEmail, &att.UserFullName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		records = append(records, att)
	}

	return records, rows.Err()
}
