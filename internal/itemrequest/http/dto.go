package http

import (
	"time"

	"github.com/peershare/sharing-backend/internal/itemrequest"
)

type ReplyResponse struct {
	ItemID  string `json:"itemId"`
	Name    string `json:"name"`
	OwnerID string `json:"ownerId"`
}

type ItemRequestResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Created     time.Time       `json:"created"`
	Items       []ReplyResponse `json:"items"`
}

func NewItemRequestResponse(r *itemrequest.ItemRequest) ItemRequestResponse {
	items := make([]ReplyResponse, 0, len(r.Replies))
	for _, reply := range r.Replies {
		items = append(items, ReplyResponse{
			ItemID:  reply.ItemID,
			Name:    reply.Name,
			OwnerID: reply.OwnerID,
		})
	}

	return ItemRequestResponse{
		ID:          r.ID,
		Description: r.Description,
		Created:     r.CreatedAt,
		Items:       items,
	}
}

type CreateItemRequestBody struct {
	Description string `json:"description" binding:"required"`
}
