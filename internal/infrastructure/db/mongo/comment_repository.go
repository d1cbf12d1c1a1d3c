package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lumopress/user-directory/internal/core/domain"
)

const commentsCollection = "comments"

// CommentRepository implements ports.CommentRepository using MongoDB.
type CommentRepository struct {
	coll *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{coll: db.Collection(commentsCollection)}
}

type mongoComment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	PageID    string             `bson:"page_id"`
	Name      string             `bson:"name"`
	Comment   string             `bson:"comment"`
	Timestamp time.Time          `bson:"timestamp"`
}

func (r *CommentRepository) Insert(ctx context.Context, comment *domain.Comment) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoComment{
		PageID:    comment.PageID,
		Name:      comment.Name,
		Comment:   comment.Comment,
		Timestamp: comment.Timestamp.UTC(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		comment.ID = oid.Hex()
	}
	return nil
}

func (r *CommentRepository) ListByPage(ctx context.Context, pageID string) ([]*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{"page_id": pageID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoComment
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list comments: decode: %w", err)
	}

	comments := make([]*domain.Comment, 0, len(docs))
	for _, d := range docs {
		comments = append(comments, &domain.Comment{
			ID:        d.ID.Hex(),
			PageID:    d.PageID,
			Name:      d.Name,
			Comment:   d.Comment,
			Timestamp: d.Timestamp,
		})
	}
	return comments, nil
}
