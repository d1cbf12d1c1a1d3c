package ports

import (
	"context"

	"github.com/lumopress/user-directory/internal/core/domain"
)

// CommentRepository persists comment-widget submissions.
type CommentRepository interface {
	Insert(ctx context.Context, comment *domain.Comment) error
	// ListByPage returns comments for one page ordered by timestamp
	// ascending (oldest first, the order the widget renders them in).
	ListByPage(ctx context.Context, pageID string) ([]*domain.Comment, error)
}
