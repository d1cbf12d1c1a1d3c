package ports

import "context"

// SubmitCommentInput carries one widget submission.
type SubmitCommentInput struct {
	Name           string
	Comment        string
	PageIdentifier string
}

// CommentView is the public listing shape: {name, comment, timestamp}.
type CommentView struct {
	Name      string
	Comment   string
	Timestamp string
}

// CommentService backs the public comment widget.
type CommentService interface {
	Submit(ctx context.Context, in SubmitCommentInput) error
	ListByPage(ctx context.Context, pageID string) ([]CommentView, error)
}
