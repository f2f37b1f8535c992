package domain

import (
	"errors"
	"time"
)

const (
	RoleCustomer = "CUSTOMER"
	RoleAdmin    = "ADMIN"
)

var ErrInvalidInput = errors.New("invalid input")
var ErrDuplicateUsername = errors.New("username already exists")
var ErrDuplicateEmail = errors.New("email already exists")
var ErrDuplicateUser = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid username or password")
var ErrUserNotFound = errors.New("user not found")
var ErrEmailInUse = errors.New("email already in use")
var ErrUpdateFailed = errors.New("failed to update profile")
var ErrInvalidToken = errors.New("invalid token")
var ErrTokenExpired = errors.New("token expired")

// User is the identity record for an account holder.
//
// PasswordHash is set only through a PasswordHasher and never leaves the
// process: the json tag excludes it from every response body. Username is
// immutable after registration; Email is unique but may change through a
// profile update.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	FullName     string    `json:"fullName,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
