package user

import (
	"time"

	"github.com/peershare/sharing-backend/internal/pkg/apperror"
)

var (
	ErrNotFound      = apperror.New(apperror.KindNotFound, "user not found")
	ErrEmailUsed     = apperror.New(apperror.KindConflict, "email already used")
	ErrEmailRequired = apperror.New(apperror.KindInvalid, "email is required")
	ErrNameRequired  = apperror.New(apperror.KindInvalid, "name is required")
)

// User is an account that can own items and book other users' items.
type User struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
}
