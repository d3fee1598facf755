package photo

import (
	"time"

	"github.com/peershare/sharing-backend/internal/pkg/apperror"
)

var (
	ErrNotFound    = apperror.New(apperror.KindNotFound, "photo not found")
	ErrNotImage    = apperror.New(apperror.KindInvalid, "file must be an image")
	ErrNotOwner    = apperror.New(apperror.KindForbidden, "caller is not the item owner")
	ErrNoThumbnail = apperror.New(apperror.KindNotFound, "thumbnail not available")
)

// Photo is a stored picture of an item.
type Photo struct {
	ID            string
	ItemID        string
	Filename      string
	StoragePath   string
	ThumbnailPath *string
	ContentType   string
	Size          int64
	CreatedAt     time.Time
}
