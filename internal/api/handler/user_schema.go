package handler

import "github.com/laundrymart/laundry-backend/internal/core/domain"

// userSummary is the public projection of a user record. The password
// hash never appears here; every authenticated response that describes
// a user goes through this shape.
type userSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

func newUserSummary(u *domain.User) userSummary {
	return userSummary{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
		Email:    u.Email,
		FullName: u.FullName,
		Phone:    u.Phone,
		Address:  u.Address,
	}
}
