package contract

import (
	"context"

	"classico-be/internal/entity"
)

// StorageFacade is the paradigm-agnostic data access surface. Both the
// relational and the document implementation honor the same contracts, so
// nothing downstream ever needs to know which backend is live.
type StorageFacade interface {
	// EnsureUserSchema creates the credential-holding structure if absent.
	// Safe to call repeatedly and concurrently.
	EnsureUserSchema(ctx context.Context) error

	// EnsureMessageSchema creates the message-holding structure if absent.
	EnsureMessageSchema(ctx context.Context) error

	// CreateUser fails with apperr.ErrEmailTaken when the email exists;
	// the backend's uniqueness constraint is the authoritative guard.
	CreateUser(ctx context.Context, email string, username *string, passwordHash string) (*entity.User, error)

	// FindUserByEmail returns (nil, nil) when no user matches.
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// StoreMessage appends a contact submission. Messages are never read
	// back by this layer.
	StoreMessage(ctx context.Context, msg *entity.Message) error

	Kind() entity.BackendKind

	// Descriptor is a human-readable connection string for API responses.
	Descriptor() string
}
