package domain

import (
	"context"
	"time"
)

// CommentState is the moderation state of a comment.
type CommentState string

const (
	CommentPending   CommentState = "PENDING"
	CommentPublished CommentState = "PUBLISHED"
	CommentRejected  CommentState = "REJECTED"
)

// Comment is a user's comment on an event.
type Comment struct {
	ID         int64
	Text       string
	EventID    int64
	AuthorID   int64
	AuthorName string
	Created    time.Time
	State      CommentState
}

// CommentDTO is the wire form of a comment.
// swagger:model CommentDTO
type CommentDTO struct {
	ID         int64  `json:"id"`
	Text       string `json:"text"`
	AuthorName string `json:"authorName"`
	Created    string `json:"created"`
	State      string `json:"state"`
}

// ToCommentDTO maps a comment to its wire form.
func ToCommentDTO(c *Comment) *CommentDTO {
	return &CommentDTO{
		ID:         c.ID,
		Text:       c.Text,
		AuthorName: c.AuthorName,
		Created:    FormatTime(c.Created),
		State:      string(c.State),
	}
}

// CommentRepository defines the interface for comment storage.
type CommentRepository interface {
	ListByEventID(ctx context.Context, eventID int64) ([]*Comment, error)
}

// CommentService defines the public comment reads.
type CommentService interface {
	ReadEventComments(ctx context.Context, eventID int64) ([]*CommentDTO, error)
}
