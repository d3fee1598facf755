package booking

import (
	"time"

	"github.com/peershare/sharing-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(apperror.KindNotFound, "booking not found")
	ErrItemRequired    = apperror.New(apperror.KindInvalid, "item reference is required")
	ErrItemUnavailable = apperror.New(apperror.KindConflict, "item not available for booking")
	ErrTimeRequired    = apperror.New(apperror.KindInvalid, "start and end dates are required")
	ErrStartInPast     = apperror.New(apperror.KindInvalid, "start date cannot be in the past")
	ErrStartEqualsEnd  = apperror.New(apperror.KindInvalid, "start date cannot equal end date")
	ErrEndBeforeStart  = apperror.New(apperror.KindInvalid, "start date must be before end date")
	ErrNotItemOwner    = apperror.New(apperror.KindForbidden, "caller is not the item owner")
	ErrAccessDenied    = apperror.New(apperror.KindForbidden, "access denied")
)

type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
	// StatusCanceled is part of the status domain but no operation sets it.
	StatusCanceled Status = "CANCELED"
)

// Booking is a reservation of an item for a time interval. The booker
// requests it; the item's owner approves or rejects it.
type Booking struct {
	ID        string
	ItemID    string
	ItemName  string // denormalized for response shaping
	BookerID  string
	Start     time.Time
	End       time.Time
	Status    Status
	CreatedAt time.Time
}
