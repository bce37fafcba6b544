package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
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

	schema := `
	CREATE TABLE IF NOT EXISTS users (
		user_id VARCHAR(64) PRIMARY KEY,
		name VARCHAR(100) NOT NULL DEFAULT '',
		email VARCHAR(100) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL DEFAULT '',
		skin_type VARCHAR(32) NOT NULL DEFAULT '',
		goals JSONB NOT NULL DEFAULT '[]',
		dob DATE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS daily_entries (
		user_id VARCHAR(64) NOT NULL REFERENCES users(user_id),
		entry_date DATE NOT NULL,
		habits JSONB NOT NULL DEFAULT '{}',
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (user_id, entry_date)
	);

	CREATE TABLE IF NOT EXISTS photo_assessments (
		assessment_id UUID PRIMARY KEY,
		user_id VARCHAR(64) NOT NULL REFERENCES users(user_id),
		taken_at TIMESTAMPTZ NOT NULL,
		photo_key TEXT NOT NULL DEFAULT '',
		severity REAL NOT NULL,
		confidence REAL NOT NULL,
		lesion_count INT NOT NULL DEFAULT 0,
		conditions JSONB NOT NULL DEFAULT '[]',
		summary TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS skin_plans (
		plan_id UUID PRIMARY KEY,
		user_id VARCHAR(64) NOT NULL REFERENCES users(user_id),
		generated_at TIMESTAMPTZ NOT NULL,
		advice TEXT NOT NULL DEFAULT '',
		products JSONB NOT NULL DEFAULT '[]'
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func seedUser(t *testing.T, db *sqlx.DB, userID string) {
	t.Helper()
	_, err := db.Exec(
		`INSERT INTO users (user_id, name, email) VALUES ($1, $2, $3)`,
		userID, userID, userID+"@example.com",
	)
	assert.NoError(t, err)
}
