package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lumopress/user-directory/internal/core/domain"
	"github.com/lumopress/user-directory/internal/core/ports"
)

type commentService struct {
	repo ports.CommentRepository
	log  zerolog.Logger
}

// NewCommentService returns the backend for the public comment widget.
func NewCommentService(repo ports.CommentRepository, log zerolog.Logger) ports.CommentService {
	return &commentService{repo: repo, log: log}
}

func (s *commentService) Submit(ctx context.Context, in ports.SubmitCommentInput) error {
	if in.Name == "" || in.Comment == "" || in.PageIdentifier == "" {
		return fmt.Errorf("%w: name, comment and page_identifier are required", domain.ErrInvalidArgument)
	}

	comment := &domain.Comment{
		PageID:    in.PageIdentifier,
		Name:      in.Name,
		Comment:   in.Comment,
		Timestamp: time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, comment); err != nil {
		return fmt.Errorf("submit comment: %w", err)
	}

	s.log.Info().Str("page_id", in.PageIdentifier).Msg("comment submitted")
	return nil
}

func (s *commentService) ListByPage(ctx context.Context, pageID string) ([]ports.CommentView, error) {
	if pageID == "" {
		return nil, fmt.Errorf("%w: page_id is required", domain.ErrInvalidArgument)
	}

	comments, err := s.repo.ListByPage(ctx, pageID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	views := make([]ports.CommentView, 0, len(comments))
	for _, c := range comments {
		views = append(views, ports.CommentView{
			Name:      c.Name,
			Comment:   c.Comment,
			Timestamp: c.Timestamp.UTC().Format(time.RFC3339),
		})
	}
	return views, nil
}
