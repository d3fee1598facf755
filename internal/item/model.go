package item

import (
	"time"

	"github.com/peershare/sharing-backend/internal/pkg/apperror"
)

var (
	ErrNotFound            = apperror.New(apperror.KindNotFound, "item not found")
	ErrNameRequired        = apperror.New(apperror.KindInvalid, "name is required")
	ErrDescriptionRequired = apperror.New(apperror.KindInvalid, "description is required")
	ErrAvailabilityMissing = apperror.New(apperror.KindInvalid, "availability must be specified")
	ErrNotOwner            = apperror.New(apperror.KindForbidden, "caller is not the item owner")
)

// Item is a thing a user lists for others to book.
type Item struct {
	ID          string
	OwnerID     string
	Name        string
	Description string
	Available   bool
	RequestID   *string // item request this item was posted in answer to, if any
	CreatedAt   time.Time
}
