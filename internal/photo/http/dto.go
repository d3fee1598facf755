package http

import (
	"time"

	"github.com/peershare/sharing-backend/internal/photo"
)

type PhotoResponse struct {
	ID          string    `json:"id"`
	ItemID      string    `json:"itemId"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	Created     time.Time `json:"created"`
}

func NewPhotoResponse(p *photo.Photo) PhotoResponse {
	return PhotoResponse{
		ID:          p.ID,
		ItemID:      p.ItemID,
		Filename:    p.Filename,
		ContentType: p.ContentType,
		Size:        p.Size,
		Created:     p.CreatedAt,
	}
}

func NewPhotoListResponse(photos []*photo.Photo) []PhotoResponse {
	out := make([]PhotoResponse, 0, len(photos))
	for _, p := range photos {
		out = append(out, NewPhotoResponse(p))
	}
	return out
}
