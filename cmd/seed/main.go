package main

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/oksasatya/identity-api/config"
)

// Seeds a local admin row for development. The matching Cognito identity has
// to be created by signing in once; this only prepares the local store.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "admin@example.com"
	name := "Local Admin"

	var id string
	err = db.QueryRow(`
		INSERT INTO users (id, name, email, role, is_onboarded, created_at)
		VALUES ($1, $2, $3, 'admin', true, now())
		ON CONFLICT (email) DO UPDATE SET role = 'admin', updated_at = now()
		RETURNING id
	`, uuid.NewString(), name, email).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	fmt.Printf("seeded admin: id=%s email=%s\n", id, email)
}
