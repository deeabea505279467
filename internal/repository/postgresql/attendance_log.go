package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hrledger/hr-backend-go/internal/domain/account"
	"github.com/hrledger/hr-backend-go/internal/pkg/database"
)

type attendanceLogRepository struct {
	db *database.DB
}

func NewAttendanceLogRepository(db *database.DB) account.AttendanceLogRepository {
	return &attendanceLogRepository{db: db}
}

// Create implements account.AttendanceLogRepository. The unique
// (user_id, date) constraint turns a second same-day check-in into a
// 23505 rather than a read-then-write race.
func (a *attendanceLogRepository) Create(ctx context.Context, log account.AttendanceLog) (account.AttendanceLog, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_logs (user_id, employee_number, full_name, check_in_time, date, ip_address, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		log.UserID, log.EmployeeNumber, log.FullName, log.CheckInTime, log.Date, log.IPAddress, log.UserAgent,
	).Scan(&log.ID, &log.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return account.AttendanceLog{}, account.ErrAlreadyCheckedIn
		}
		return account.AttendanceLog{}, fmt.Errorf("failed to create attendance log: %w", err)
	}

	return log, nil
}

// List implements account.AttendanceLogRepository.
func (a *attendanceLogRepository) List(ctx context.Context, filter account.LogFilter) ([]account.AttendanceLog, error) {
	q := GetQuerier(ctx, a.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.UserID != nil && *filter.UserID != "" {
		baseWhere += fmt.Sprintf(" AND user_id = $%d", argIdx)
		args = append(args, *filter.UserID)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT id, user_id, employee_number, full_name, check_in_time, date, ip_address, user_agent, created_at
		FROM attendance_logs
		WHERE %s
		ORDER BY check_in_time DESC
	`, baseWhere)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance logs: %w", err)
	}
	defer rows.Close()

	var logs []account.AttendanceLog
	for rows.Next() {
		var log account.AttendanceLog
		err := rows.Scan(
			&log.ID, &log.UserID, &log.EmployeeNumber, &log.FullName,
			&log.CheckInTime, &log.Date, &log.IPAddress, &log.UserAgent, &log.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance log: %w", err)
		}
		logs = append(logs, log)
	}

	return logs, nil
}

// ListRecentByUser implements account.AttendanceLogRepository.
func (a *attendanceLogRepository) ListRecentByUser(ctx context.Context, userID string, limit int) ([]account.AttendanceLog, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, user_id, employee_number, full_name, check_in_time, date, ip_address, user_agent, created_at
		FROM attendance_logs
		WHERE user_id = $1
		ORDER BY check_in_time DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance logs: %w", err)
	}
	defer rows.Close()

	var logs []account.AttendanceLog
	for rows.Next() {
		var log account.AttendanceLog
		err := rows.Scan(
			&log.ID, &log.UserID, &log.EmployeeNumber, &log.FullName,
			&log.CheckInTime, &log.Date, &log.IPAddress, &log.UserAgent, &log.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance log: %w", err)
		}
		logs = append(logs, log)
	}

	return logs, nil
}
