package leave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrledger/hr-backend-go/internal/pkg/validator"
)

func TestCreateLeaveRequest_Validate(t *testing.T) {
	req := CreateLeaveRequest{
		EmployeeID: "emp-1",
		StartDate:  "2024-06-01",
		EndDate:    "2024-06-05",
		Reason:     "annual leave",
	}
	assert.NoError(t, req.Validate())
}

func TestCreateLeaveRequest_Validate_ReversedRange(t *testing.T) {
	req := CreateLeaveRequest{
		EmployeeID: "emp-1",
		StartDate:  "2024-06-05",
		EndDate:    "2024-06-01",
		Reason:     "annual leave",
	}

	err := req.Validate()
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "end_date must not be before start_date", verrs.ToMap()["end_date"])
}

func TestCreateLeaveRequest_Validate_MissingFields(t *testing.T) {
	err := (&CreateLeaveRequest{}).Validate()
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	m := verrs.ToMap()
	assert.Contains(t, m, "employee_id")
	assert.Contains(t, m, "start_date")
	assert.Contains(t, m, "end_date")
	assert.Contains(t, m, "reason")
}

func TestUpdateLeaveRequest_Validate_RequiresID(t *testing.T) {
	req := UpdateLeaveRequest{
		EmployeeID: "emp-1",
		StartDate:  "2024-06-01",
		EndDate:    "2024-06-05",
		Reason:     "annual leave",
	}

	err := req.Validate()
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "id")

	req.ID = "lv-1"
	assert.NoError(t, req.Validate())
}
