package services

import (
	"context"
	"fmt"
	"time"

	"eventlisting/internal/domain"
)

type commentService struct {
	eventRepo      domain.EventRepository
	commentRepo    domain.CommentRepository
	contextTimeout time.Duration
}

func NewCommentService(eventRepo domain.EventRepository, commentRepo domain.CommentRepository, timeout time.Duration) domain.CommentService {
	return &commentService{
		eventRepo:      eventRepo,
		commentRepo:    commentRepo,
		contextTimeout: timeout,
	}
}

func (s *commentService) ReadEventComments(ctx context.Context, eventID int64) ([]*domain.CommentDTO, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	exists, err := s.eventRepo.Exists(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}
	if !exists {
		return nil, domain.NewNotFoundError("event with id=%d was not found", eventID)
	}
	comments, err := s.commentRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	out := make([]*domain.CommentDTO, 0, len(comments))
	for _, c := range comments {
		out = append(out, domain.ToCommentDTO(c))
	}
	return out, nil
}
