package http

import (
	"time"

	"github.com/peershare/sharing-backend/internal/comment"
	"github.com/peershare/sharing-backend/internal/item"
)

// ItemTag is the minimal item reference embedded in other responses.
type ItemTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CommentResponse struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

func NewCommentResponse(c *comment.Comment) CommentResponse {
	return CommentResponse{
		ID:         c.ID,
		Text:       c.Text,
		AuthorName: c.AuthorName,
		Created:    c.CreatedAt,
	}
}

type ItemResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Available   bool    `json:"available"`
	RequestID   *string `json:"requestId,omitempty"`
}

func NewItemResponse(it *item.Item) ItemResponse {
	return ItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Available:   it.Available,
		RequestID:   it.RequestID,
	}
}

// ItemDetailResponse adds the booking view and comments. The lastBooking
// and nextBooking starts are only filled for the item's owner.
type ItemDetailResponse struct {
	ItemResponse
	LastBooking *time.Time        `json:"lastBooking,omitempty"`
	NextBooking *time.Time        `json:"nextBooking,omitempty"`
	Comments    []CommentResponse `json:"comments"`
}

type CreateItemBody struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Available   *bool   `json:"available" binding:"required"`
	RequestID   *string `json:"requestId" binding:"omitempty,uuid"`
}

type UpdateItemBody struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

type AddCommentBody struct {
	Text string `json:"text" binding:"required"`
}
