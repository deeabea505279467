package company

import (
	"github.com/hrledger/hr-backend-go/internal/pkg/validator"
)

type InfoResponse struct {
	ID          string `json:"id"`
	PlaceName   string `json:"place_name"`
	ManagerName string `json:"manager_name"`
	UpdatedAt   string `json:"updated_at"`
}

func ToResponse(i Info) InfoResponse {
	return InfoResponse{
		ID:          i.ID,
		PlaceName:   i.PlaceName,
		ManagerName: i.ManagerName,
		UpdatedAt:   i.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

type SaveInfoRequest struct {
	PlaceName   string `json:"place_name"`
	ManagerName string `json:"manager_name"`
}

func (r *SaveInfoRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PlaceName) {
		errs = append(errs, validator.ValidationError{
			Field:   "place_name",
			Message: "place_name is required",
		})
	}

	if validator.IsEmpty(r.ManagerName) {
		errs = append(errs, validator.ValidationError{
			Field:   "manager_name",
			Message: "manager_name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
