package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/conduit-core/internal/database"
	"github.com/sbilibin2017/conduit-core/internal/models"
)

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	err = database.Migrate(context.Background(), db)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func insertTestUser(t *testing.T, db *sqlx.DB, username string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	_, err := db.Exec(
		`INSERT INTO "user" (user_id, username, email, bio, password_hash) VALUES ($1, $2, $3, '', 'hash')`,
		userID, username, username+"@example.com",
	)
	assert.NoError(t, err)
	return userID
}

func insertTestArticle(t *testing.T, db *sqlx.DB, authorID uuid.UUID, slug string, tags string) uuid.UUID {
	t.Helper()

	articleID := uuid.New()
	_, err := db.Exec(
		`INSERT INTO article (article_id, user_id, slug, title, description, body, tag_list) VALUES ($1, $2, $3, $3, '', '', $4)`,
		articleID, authorID, slug, tags,
	)
	assert.NoError(t, err)
	return articleID
}

func testUser(username string) models.UserDB {
	return models.UserDB{
		UserID:       uuid.New(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hash",
	}
}
