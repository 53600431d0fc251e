package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/notewise/notes-api/internal/core/domain"
)

const collectionUsers = "users"

// UserRepository implements ports.UserRepository using MongoDB.
type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers)}
}

// mongoUser mirrors the persisted document. BSON-native types stay inside
// this package; the domain only ever sees string ids and time.Time values.
type mongoUser struct {
	UserID     string    `bson:"user_id"`
	UserName   string    `bson:"user_name"`
	UserEmail  string    `bson:"user_email"`
	Password   string    `bson:"password"`
	CreatedOn  time.Time `bson:"created_on"`
	LastUpdate time.Time `bson:"last_update"`
}

func (r *UserRepository) Insert(ctx context.Context, user *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoUser{
		UserID:     user.UserID,
		UserName:   user.UserName,
		UserEmail:  user.UserEmail,
		Password:   user.Password,
		CreatedOn:  user.CreatedOn,
		LastUpdate: user.LastUpdate,
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mu mongoUser
	if err := r.col.FindOne(ctx, bson.M{"user_email": email}).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return mu.toDomain(), nil
}

// EnsureIndexes creates the unique email index and the user_id lookup index.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func (mu *mongoUser) toDomain() *domain.User {
	return &domain.User{
		UserID:     mu.UserID,
		UserName:   mu.UserName,
		UserEmail:  mu.UserEmail,
		Password:   mu.Password,
		CreatedOn:  mu.CreatedOn.UTC(),
		LastUpdate: mu.LastUpdate.UTC(),
	}
}
