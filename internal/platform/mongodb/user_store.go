package mongodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lawdept/justice-api/internal/domain"
	"github.com/lawdept/justice-api/internal/platform/logger"
	"github.com/lawdept/justice-api/internal/store"
)

// usersCollection is the collection holding user documents.
const usersCollection = "users"

// userDocument is the persisted shape of a user. The password field stores
// the bcrypt hash, never plaintext.
type userDocument struct {
	ID        string    `bson:"id"`
	Email     string    `bson:"email"`
	Password  string    `bson:"password"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoUserStore implements the store.UserStore interface
// using a MongoDB collection as the storage backend.
type MongoUserStore struct {
	coll   *mongo.Collection
	logger *slog.Logger
}

// NewMongoUserStore creates a new MongoDB implementation of the UserStore
// interface. It accepts a database handle whose client lifecycle is managed
// by the caller, and ensures the unique index on email that backs the
// one-user-per-email invariant.
// If logger is nil, the default logger is used.
func NewMongoUserStore(ctx context.Context, db *mongo.Database, logger *slog.Logger) *MongoUserStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	s := &MongoUserStore{
		coll:   db.Collection(usersCollection),
		logger: logger.With(slog.String("component", "user_store")),
	}

	if err := s.ensureIndexes(ctx); err != nil {
		// Index creation shares the fate of the initial connection: failure
		// is logged and requests surface storage errors instead.
		s.logger.Error("failed to create user indexes", slog.String("error", err.Error()))
	}

	return s
}

// Ensure MongoUserStore implements store.UserStore interface
var _ store.UserStore = (*MongoUserStore)(nil)

// ensureIndexes creates the unique index on email.
func (s *MongoUserStore) ensureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create implements store.UserStore.Create
// Returns store.ErrEmailExists if a user with the same email already exists.
func (s *MongoUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	doc := userDocument{
		ID:        user.ID.String(),
		Email:     user.Email,
		Password:  user.HashedPassword,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			log.Debug("duplicate email on user create", slog.String("email", user.Email))
			return fmt.Errorf("%w: %v", store.ErrEmailExists, err)
		}
		log.Error("failed to create user",
			slog.String("email", user.Email),
			slog.String("error", err.Error()))
		return err
	}

	log.Info("user created", slog.String("user_id", user.ID.String()))
	return nil
}

// GetByEmail implements store.UserStore.GetByEmail
// Returns store.ErrUserNotFound if the user does not exist.
func (s *MongoUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var doc userDocument
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			log.Debug("user not found", slog.String("email", email))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by email",
			slog.String("email", email),
			slog.String("error", err.Error()))
		return nil, err
	}

	id, err := uuid.Parse(doc.ID)
	if err != nil {
		log.Error("stored user has malformed ID",
			slog.String("email", email),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("malformed user ID in store: %w", err)
	}

	return &domain.User{
		ID:             id,
		Email:          doc.Email,
		HashedPassword: doc.Password,
		CreatedAt:      doc.CreatedAt,
		UpdatedAt:      doc.UpdatedAt,
	}, nil
}
