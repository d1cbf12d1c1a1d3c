package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lumopress/user-directory/internal/core/domain"
	"github.com/lumopress/user-directory/internal/core/ports"
)

const profilesCollection = "profiles"

// ProfileRepository implements ports.ProfileStore using MongoDB. The
// profile document is keyed by account id (_id), one-to-one.
type ProfileRepository struct {
	coll *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{coll: db.Collection(profilesCollection)}
}

// Create upserts the profile document. created_at is written only on
// first insert so a replayed creation event cannot move the timestamp.
func (r *ProfileRepository) Create(ctx context.Context, p *domain.Profile) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"display_name": p.DisplayName,
			"email":        p.Email,
			"avatar_url":   p.AvatarURL,
			"role":         p.Role,
			"disabled":     p.Disabled,
		},
		"$setOnInsert": bson.M{"created_at": p.CreatedAt.UTC()},
	}

	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": p.AccountID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	return nil
}

func (r *ProfileRepository) FindByID(ctx context.Context, accountID string) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Profile
	if err := r.coll.FindOne(ctx, bson.M{"_id": accountID}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return &p, nil
}

// Update applies a partial update. An unknown id matches nothing; that
// is not reported as an error.
func (r *ProfileRepository) Update(ctx context.Context, accountID string, update ports.ProfileUpdate) error {
	fields := bson.M{}
	if update.Role != nil {
		fields["role"] = *update.Role
	}
	if update.Disabled != nil {
		fields["disabled"] = *update.Disabled
	}
	if len(fields) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": accountID}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

// Delete is idempotent: deleting an absent document succeeds.
func (r *ProfileRepository) Delete(ctx context.Context, accountID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": accountID})
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}

// List returns every profile ordered by created_at descending. The
// directory is assumed small; no pagination.
func (r *ProfileRepository) List(ctx context.Context) ([]*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer cur.Close(ctx)

	var profiles []*domain.Profile
	if err := cur.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("list profiles: decode: %w", err)
	}
	return profiles, nil
}
