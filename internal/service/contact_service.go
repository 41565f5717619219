package service

import (
	"context"

	"github.com/go-playground/validator/v10"

	"classico-be/internal/backend"
	"classico-be/internal/dto"
	"classico-be/internal/entity"
)

type IContactService interface {
	Submit(ctx context.Context, req *dto.ContactRequest) error
}

type contactService struct {
	selector *backend.Selector
	validate *validator.Validate
}

func NewContactService(selector *backend.Selector) IContactService {
	return &contactService{
		selector: selector,
		validate: validator.New(),
	}
}

// Submit stores one contact message. When this is the first storage touch
// of the process, the presence of a contact submission decides Document.
func (s *contactService) Submit(ctx context.Context, req *dto.ContactRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return err
	}

	facade, err := s.selector.Ensure(ctx, []entity.DetectedForm{{Intent: entity.IntentContact}})
	if err != nil {
		return err
	}

	return facade.StoreMessage(ctx, &entity.Message{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Message,
	})
}
