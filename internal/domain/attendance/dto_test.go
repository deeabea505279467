package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrledger/hr-backend-go/internal/pkg/validator"
)

func TestRecordStatusRequest_Validate(t *testing.T) {
	req := RecordStatusRequest{
		EmployeeID: "emp-1",
		Date:       "2024-05-10",
		Status:     StatusPresent,
	}
	assert.NoError(t, req.Validate())

	req.Status = StatusAbsent
	assert.NoError(t, req.Validate())
}

func TestRecordStatusRequest_Validate_MissingFields(t *testing.T) {
	req := RecordStatusRequest{}

	err := req.Validate()
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	m := verrs.ToMap()
	assert.Contains(t, m, "employee_id")
	assert.Contains(t, m, "date")
	assert.Contains(t, m, "status")
}

func TestRecordStatusRequest_Validate_BadDateAndStatus(t *testing.T) {
	req := RecordStatusRequest{
		EmployeeID: "emp-1",
		Date:       "May 10, 2024",
		Status:     "half-day",
	}

	err := req.Validate()
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	m := verrs.ToMap()
	assert.Contains(t, m, "date")
	assert.Contains(t, m, "status")
	assert.NotContains(t, m, "employee_id")
}

func TestFilter_Validate(t *testing.T) {
	status := StatusPresent
	start := "2024-01-01"
	f := Filter{Status: &status, StartDate: &start}
	assert.NoError(t, f.Validate())

	assert.NoError(t, (&Filter{}).Validate())
}

func TestFilter_Validate_BadStatus(t *testing.T) {
	status := "remote"
	f := Filter{Status: &status}

	err := f.Validate()
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "status")
}
