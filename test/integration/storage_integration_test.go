package integration

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classico-be/internal/apperr"
	"classico-be/internal/entity"
	"classico-be/internal/repository/contract"
	"classico-be/internal/repository/document"
	"classico-be/internal/repository/relational"
	"classico-be/pkg/database"
)

func uniqueEmail() string {
	return fmt.Sprintf("it-%d@example.com", time.Now().UnixNano())
}

// exerciseFacade runs the shared contract against whichever backend is
// reachable: idempotent provisioning, create/find identity round-trip,
// duplicate conflict, message append.
func exerciseFacade(t *testing.T, facade contract.StorageFacade) {
	ctx := context.Background()

	// Provisioning twice must be a no-op, not an error.
	require.NoError(t, facade.EnsureUserSchema(ctx))
	require.NoError(t, facade.EnsureUserSchema(ctx))
	require.NoError(t, facade.EnsureMessageSchema(ctx))
	require.NoError(t, facade.EnsureMessageSchema(ctx))

	email := uniqueEmail()
	created, err := facade.CreateUser(ctx, email, nil, "hash-material")
	require.NoError(t, err)
	require.NotEmpty(t, created.Id)

	found, err := facade.FindUserByEmail(ctx, email)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.Id, found.Id, "identity must round-trip unchanged")

	_, err = facade.CreateUser(ctx, email, nil, "other-hash")
	assert.ErrorIs(t, err, apperr.ErrEmailTaken)

	subject := "integration"
	assert.NoError(t, facade.StoreMessage(ctx, &entity.Message{Subject: &subject}))

	missing, err := facade.FindUserByEmail(ctx, "nobody-"+email)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestRelationalFacade(t *testing.T) {
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	host := os.Getenv("MYSQL_HOST")
	if host == "" {
		t.Skip("Skipping integration test: MYSQL_HOST not set")
	}
	port, _ := strconv.Atoi(os.Getenv("MYSQL_PORT"))
	if port == 0 {
		port = 3306
	}

	db, err := database.NewGormDB(database.GormConfig{
		Driver:   os.Getenv("RELATIONAL_DRIVER"),
		Host:     host,
		Port:     port,
		User:     os.Getenv("MYSQL_USER"),
		Password: os.Getenv("MYSQL_PASSWORD"),
		DBName:   os.Getenv("MYSQL_DATABASE"),
	})
	require.NoError(t, err)

	exerciseFacade(t, relational.NewStorageFacade(db, "test"))
}

func TestDocumentFacade(t *testing.T) {
	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("Skipping integration test: MONGO_URI not set")
	}

	db, err := database.NewMongoDatabase(context.Background(), uri)
	require.NoError(t, err)

	exerciseFacade(t, document.NewStorageFacade(db, uri))
}
