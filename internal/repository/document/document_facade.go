package document

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"classico-be/internal/apperr"
	"classico-be/internal/entity"
	"classico-be/internal/repository/contract"
)

type userDocument struct {
	Id           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	Username     *string            `bson:"username,omitempty"`
	PasswordHash string             `bson:"password_hash"`
	CreatedAt    time.Time          `bson:"created_at"`
}

type messageDocument struct {
	Name      *string   `bson:"name,omitempty"`
	Email     *string   `bson:"email,omitempty"`
	Subject   *string   `bson:"subject,omitempty"`
	Body      *string   `bson:"message,omitempty"`
	CreatedAt time.Time `bson:"created_at"`
}

type StorageFacadeImpl struct {
	db         *mongo.Database
	descriptor string
}

func NewStorageFacade(db *mongo.Database, descriptor string) contract.StorageFacade {
	return &StorageFacadeImpl{db: db, descriptor: descriptor}
}

func (f *StorageFacadeImpl) users() *mongo.Collection {
	return f.db.Collection("users")
}

func (f *StorageFacadeImpl) messages() *mongo.Collection {
	return f.db.Collection("messages")
}

// EnsureUserSchema creates the unique email index; CreateIndexes on an
// identical existing index is a no-op, which gives us ensure semantics.
func (f *StorageFacadeImpl) EnsureUserSchema(ctx context.Context) error {
	_, err := f.users().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrConnection, err)
	}
	return nil
}

// EnsureMessageSchema indexes created_at so the flexible message store
// stays queryable; collections themselves appear on first insert.
func (f *StorageFacadeImpl) EnsureMessageSchema(ctx context.Context) error {
	_, err := f.messages().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrConnection, err)
	}
	return nil
}

func (f *StorageFacadeImpl) CreateUser(ctx context.Context, email string, username *string, passwordHash string) (*entity.User, error) {
	doc := userDocument{
		Email:        email,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}

	res, err := f.users().InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperr.ErrEmailTaken
		}
		return nil, fmt.Errorf("%w: %v", apperr.ErrConnection, err)
	}

	id, _ := res.InsertedID.(primitive.ObjectID)
	return &entity.User{
		Id:           id.Hex(),
		Email:        doc.Email,
		Username:     doc.Username,
		PasswordHash: doc.PasswordHash,
		CreatedAt:    doc.CreatedAt,
	}, nil
}

func (f *StorageFacadeImpl) FindUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	var doc userDocument
	err := f.users().FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", apperr.ErrConnection, err)
	}
	return &entity.User{
		Id:           doc.Id.Hex(),
		Email:        doc.Email,
		Username:     doc.Username,
		PasswordHash: doc.PasswordHash,
		CreatedAt:    doc.CreatedAt,
	}, nil
}

func (f *StorageFacadeImpl) StoreMessage(ctx context.Context, msg *entity.Message) error {
	doc := messageDocument{
		Name:      msg.Name,
		Email:     msg.Email,
		Subject:   msg.Subject,
		Body:      msg.Body,
		CreatedAt: time.Now(),
	}
	if _, err := f.messages().InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrConnection, err)
	}
	return nil
}

func (f *StorageFacadeImpl) Kind() entity.BackendKind {
	return entity.BackendDocument
}

func (f *StorageFacadeImpl) Descriptor() string {
	return f.descriptor
}
