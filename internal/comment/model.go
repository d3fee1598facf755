package comment

import (
	"time"

	"github.com/peershare/sharing-backend/internal/pkg/apperror"
)

var (
	ErrTextRequired = apperror.New(apperror.KindInvalid, "comment text is required")
	ErrNotBooked    = apperror.New(apperror.KindInvalid, "cannot comment without a completed booking of the item")
)

// Comment is a review left on an item by a user who completed a booking of it.
type Comment struct {
	ID         string
	ItemID     string
	AuthorID   string
	AuthorName string // denormalized for response shaping
	Text       string
	CreatedAt  time.Time
}
