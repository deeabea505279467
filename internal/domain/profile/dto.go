package profile

// ProfileResponse is the outward shape of a user profile. The password
// hash never leaves the service layer.
type ProfileResponse struct {
	ID             string  `json:"id"`
	Email          string  `json:"email"`
	FullName       string  `json:"full_name"`
	Role           string  `json:"role"`
	EmployeeNumber *string `json:"employee_number,omitempty"`
	IsActive       bool    `json:"is_active"`
	CreatedAt      string  `json:"created_at"`
}

func ToResponse(p UserProfile) ProfileResponse {
	return ProfileResponse{
		ID:             p.ID,
		Email:          p.Email,
		FullName:       p.FullName,
		Role:           string(p.Role),
		EmployeeNumber: p.EmployeeNumber,
		IsActive:       p.IsActive,
		CreatedAt:      p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
