package itemrequest

import (
	"time"

	"github.com/peershare/sharing-backend/internal/pkg/apperror"
)

var (
	ErrNotFound            = apperror.New(apperror.KindNotFound, "item request not found")
	ErrDescriptionRequired = apperror.New(apperror.KindInvalid, "description is required")
)

// ItemRequest is a wish users post for items they would like to borrow.
type ItemRequest struct {
	ID          string
	RequesterID string
	Description string
	CreatedAt   time.Time

	// Replies are the items other users listed in answer to this request.
	Replies []Reply
}

// Reply is a minimal view of an item posted in answer to a request.
type Reply struct {
	ItemID  string
	Name    string
	OwnerID string
}
