package mapper

import (
	"strconv"

	"classico-be/internal/entity"
	"classico-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

// ToEntity normalizes the auto-increment identity to an opaque string so
// both storage paradigms present users identically.
func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:           strconv.FormatUint(uint64(u.Id), 10),
		Email:        u.Email,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
	}
}

func (m *UserMapper) ToModel(email string, username *string, passwordHash string) *model.User {
	return &model.User{
		Email:        email,
		Username:     username,
		PasswordHash: passwordHash,
	}
}
