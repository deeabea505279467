package leave

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hrledger/hr-backend-go/internal/domain/employee"
	"github.com/hrledger/hr-backend-go/internal/domain/leave"
	"github.com/hrledger/hr-backend-go/internal/pkg/database"
	"github.com/hrledger/hr-backend-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	db *database.DB
	leave.LeaveRepository
}

func NewLeaveService(db *database.DB, leaveRepository leave.LeaveRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		db:              db,
		LeaveRepository: leaveRepository,
	}
}

func mapReferentialError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return employee.ErrEmployeeNotFound
	}
	return err
}

// Create implements leave.LeaveService. Validation rejects reversed
// ranges before the day count is derived.
func (s *LeaveServiceImpl) Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	created, err := s.LeaveRepository.Create(ctx, leave.Leave{
		EmployeeID:     req.EmployeeID,
		StartDate:      start,
		EndDate:        end,
		Reason:         req.Reason,
		CalculatedDays: leave.DaysInclusive(start, end),
	})
	if err != nil {
		return leave.LeaveResponse{}, mapReferentialError(err)
	}

	return leave.ToResponse(created), nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context) ([]leave.LeaveResponse, error) {
	leaves, err := s.LeaveRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		responses = append(responses, leave.ToResponse(l))
	}
	return responses, nil
}

// ListByEmployee implements leave.LeaveService.
func (s *LeaveServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveResponse, error) {
	leaves, err := s.LeaveRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		responses = append(responses, leave.ToResponse(l))
	}
	return responses, nil
}

// Update implements leave.LeaveService. The stored day count is re-derived
// from the new range.
func (s *LeaveServiceImpl) Update(ctx context.Context, req leave.UpdateLeaveRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	if err := s.LeaveRepository.Update(ctx, req, leave.DaysInclusive(start, end)); err != nil {
		return mapReferentialError(err)
	}
	return nil
}

// Delete implements leave.LeaveService.
func (s *LeaveServiceImpl) Delete(ctx context.Context, id string) error {
	return s.LeaveRepository.Delete(ctx, id)
}
