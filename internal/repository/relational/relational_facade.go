package relational

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gorm.io/gorm"

	"classico-be/internal/apperr"
	"classico-be/internal/entity"
	"classico-be/internal/mapper"
	"classico-be/internal/model"
	"classico-be/internal/repository/contract"
)

type StorageFacadeImpl struct {
	db            *gorm.DB
	descriptor    string
	userMapper    *mapper.UserMapper
	messageMapper *mapper.MessageMapper

	migrateMu sync.Mutex
}

func NewStorageFacade(db *gorm.DB, descriptor string) contract.StorageFacade {
	return &StorageFacadeImpl{
		db:            db,
		descriptor:    descriptor,
		userMapper:    mapper.NewUserMapper(),
		messageMapper: mapper.NewMessageMapper(),
	}
}

// EnsureUserSchema relies on AutoMigrate's ensure semantics: an existing
// users table is left alone. The mutex keeps concurrent uploads from
// racing DDL statements against each other.
func (f *StorageFacadeImpl) EnsureUserSchema(ctx context.Context) error {
	f.migrateMu.Lock()
	defer f.migrateMu.Unlock()
	if err := f.db.WithContext(ctx).AutoMigrate(&model.User{}); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrConnection, err)
	}
	return nil
}

func (f *StorageFacadeImpl) EnsureMessageSchema(ctx context.Context) error {
	f.migrateMu.Lock()
	defer f.migrateMu.Unlock()
	if err := f.db.WithContext(ctx).AutoMigrate(&model.Message{}); err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrConnection, err)
	}
	return nil
}

func (f *StorageFacadeImpl) CreateUser(ctx context.Context, email string, username *string, passwordHash string) (*entity.User, error) {
	modelUser := f.userMapper.ToModel(email, username, passwordHash)
	if err := f.db.WithContext(ctx).Create(modelUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.ErrEmailTaken
		}
		return nil, fmt.Errorf("%w: %v", apperr.ErrConnection, err)
	}
	return f.userMapper.ToEntity(modelUser), nil
}

func (f *StorageFacadeImpl) FindUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	var modelUser model.User
	err := f.db.WithContext(ctx).Where("email = ?", email).First(&modelUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", apperr.ErrConnection, err)
	}
	return f.userMapper.ToEntity(&modelUser), nil
}

func (f *StorageFacadeImpl) StoreMessage(ctx context.Context, msg *entity.Message) error {
	if err := f.db.WithContext(ctx).Create(f.messageMapper.ToModel(msg)).Error; err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrConnection, err)
	}
	return nil
}

func (f *StorageFacadeImpl) Kind() entity.BackendKind {
	return entity.BackendRelational
}

func (f *StorageFacadeImpl) Descriptor() string {
	return f.descriptor
}
