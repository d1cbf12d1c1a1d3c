package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lumopress/user-directory/internal/core/domain"
	"github.com/lumopress/user-directory/internal/core/ports"
)

type stubCommentRepo struct {
	comments  []*domain.Comment
	insertErr error
	listErr   error
}

func (r *stubCommentRepo) Insert(_ context.Context, c *domain.Comment) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	clone := *c
	r.comments = append(r.comments, &clone)
	return nil
}

func (r *stubCommentRepo) ListByPage(_ context.Context, pageID string) ([]*domain.Comment, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*domain.Comment
	for _, c := range r.comments {
		if c.PageID == pageID {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

func TestCommentService_Submit(t *testing.T) {
	repo := &stubCommentRepo{}
	svc := NewCommentService(repo, zerolog.Nop())

	err := svc.Submit(context.Background(), ports.SubmitCommentInput{
		Name:           "Ada",
		Comment:        "Nice article.",
		PageIdentifier: "posts/go-generics",
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(repo.comments) != 1 {
		t.Fatalf("expected one comment stored")
	}
	stored := repo.comments[0]
	if stored.PageID != "posts/go-generics" || stored.Name != "Ada" {
		t.Errorf("unexpected comment: %+v", stored)
	}
	if stored.Timestamp.IsZero() {
		t.Errorf("expected timestamp set")
	}
}

func TestCommentService_Submit_Validation(t *testing.T) {
	svc := NewCommentService(&stubCommentRepo{}, zerolog.Nop())

	err := svc.Submit(context.Background(), ports.SubmitCommentInput{Name: "Ada"})
	if !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestCommentService_ListByPage(t *testing.T) {
	repo := &stubCommentRepo{comments: []*domain.Comment{
		{PageID: "p1", Name: "Ada", Comment: "first", Timestamp: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)},
		{PageID: "p2", Name: "Bob", Comment: "other page", Timestamp: time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)},
	}}
	svc := NewCommentService(repo, zerolog.Nop())

	views, err := svc.ListByPage(context.Background(), "p1")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected one comment, got %d", len(views))
	}
	if views[0].Timestamp != "2024-05-01T09:00:00Z" {
		t.Errorf("unexpected timestamp: %s", views[0].Timestamp)
	}
}

func TestCommentService_ListByPage_MissingPageID(t *testing.T) {
	svc := NewCommentService(&stubCommentRepo{}, zerolog.Nop())

	if _, err := svc.ListByPage(context.Background(), ""); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}
