package backend

import (
	"context"
	"fmt"

	"classico-be/internal/apperr"
	"classico-be/internal/config"
	"classico-be/internal/entity"
	"classico-be/internal/repository/contract"
	"classico-be/internal/repository/document"
	"classico-be/internal/repository/relational"
	"classico-be/pkg/database"
)

// Connector turns a decided kind into a live storage facade. Abstracted so
// the selector can be exercised in tests without real databases.
type Connector interface {
	Connect(ctx context.Context, kind entity.BackendKind) (contract.StorageFacade, error)
}

type configConnector struct {
	cfg *config.Config
}

func NewConnector(cfg *config.Config) Connector {
	return &configConnector{cfg: cfg}
}

func (c *configConnector) Connect(ctx context.Context, kind entity.BackendKind) (contract.StorageFacade, error) {
	if kind == entity.BackendDocument {
		db, err := database.NewMongoDatabase(ctx, c.cfg.Mongo.URI)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperr.ErrConnection, err)
		}
		return document.NewStorageFacade(db, c.cfg.Mongo.URI), nil
	}

	rel := c.cfg.Relational
	db, err := database.NewGormDB(database.GormConfig{
		Driver:   rel.Driver,
		Host:     rel.Host,
		Port:     rel.Port,
		User:     rel.User,
		Password: rel.Password,
		DBName:   rel.Database,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrConnection, err)
	}

	descriptor := fmt.Sprintf("%s://%s@%s:%d/%s", rel.Driver, rel.User, rel.Host, rel.Port, rel.Database)
	return relational.NewStorageFacade(db, descriptor), nil
}
