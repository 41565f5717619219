package service

import (
	"context"
	"strconv"
	"sync"

	"classico-be/internal/apperr"
	"classico-be/internal/backend"
	"classico-be/internal/entity"
	"classico-be/internal/pkg/logger"
	"classico-be/internal/repository/contract"
)

// memoryFacade is an in-memory StorageFacade honoring the same contracts
// as the real implementations, including the email uniqueness guard.
type memoryFacade struct {
	kind entity.BackendKind

	mu       sync.Mutex
	nextId   int
	users    map[string]*entity.User
	messages []*entity.Message
}

func newMemoryFacade(kind entity.BackendKind) *memoryFacade {
	return &memoryFacade{kind: kind, nextId: 1, users: map[string]*entity.User{}}
}

func (f *memoryFacade) EnsureUserSchema(context.Context) error    { return nil }
func (f *memoryFacade) EnsureMessageSchema(context.Context) error { return nil }

func (f *memoryFacade) CreateUser(_ context.Context, email string, username *string, passwordHash string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.users[email]; exists {
		return nil, apperr.ErrEmailTaken
	}
	user := &entity.User{
		Id:           strconv.Itoa(f.nextId),
		Email:        email,
		Username:     username,
		PasswordHash: passwordHash,
	}
	f.nextId++
	f.users[email] = user
	return user, nil
}

func (f *memoryFacade) FindUserByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.users[email], nil
}

func (f *memoryFacade) StoreMessage(_ context.Context, msg *entity.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, msg)
	return nil
}

func (f *memoryFacade) Kind() entity.BackendKind { return f.kind }
func (f *memoryFacade) Descriptor() string       { return "memory://" + string(f.kind) }

func (f *memoryFacade) userCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.users)
}

func (f *memoryFacade) messageCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.messages)
}

// memoryConnector hands the selector a memoryFacade of whatever kind the
// decision engine asked for.
type memoryConnector struct {
	mu     sync.Mutex
	facade *memoryFacade
}

func (c *memoryConnector) Connect(_ context.Context, kind entity.BackendKind) (contract.StorageFacade, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.facade = newMemoryFacade(kind)
	return c.facade, nil
}

func newTestSelector() (*backend.Selector, *memoryConnector) {
	connector := &memoryConnector{}
	return backend.NewSelector(connector, logger.NewNopLogger()), connector
}
