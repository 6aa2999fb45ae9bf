package repo

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrCartNotFound       = errors.New("cart not found")
	ErrUserNotFound       = errors.New("user not found")
)

type GormRepo struct {
	DB *gorm.DB
}
