// provision-admin creates the bootstrap admin identity. It is run once
// by an operator against a fresh database; it refuses to run if an
// active admin already exists, and it never ships credentials in code.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/hrledger/hr-backend-go/internal/config"
	"github.com/hrledger/hr-backend-go/internal/domain/profile"
	"github.com/hrledger/hr-backend-go/internal/pkg/database"
	"github.com/hrledger/hr-backend-go/internal/pkg/validator"
	"github.com/hrledger/hr-backend-go/internal/repository/postgresql"
)

func main() {
	var (
		email    = flag.String("email", os.Getenv("ADMIN_EMAIL"), "admin email (or ADMIN_EMAIL)")
		fullName = flag.String("name", os.Getenv("ADMIN_NAME"), "admin full name (or ADMIN_NAME)")
	)
	flag.Parse()

	password := os.Getenv("ADMIN_PASSWORD")

	if *email == "" || password == "" || *fullName == "" {
		log.Fatal("ADMIN_EMAIL, ADMIN_PASSWORD and ADMIN_NAME are required")
	}
	if !validator.IsValidEmail(*email) {
		log.Fatal("admin email format is invalid")
	}
	if len(password) < 8 {
		log.Fatal("admin password must be at least 8 characters")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	profileRepo := postgresql.NewProfileRepository(db)

	exists, err := profileRepo.AdminExists(ctx)
	if err != nil {
		log.Fatalf("failed to check for existing admin: %v", err)
	}
	if exists {
		log.Fatal("an active admin already exists; refusing to provision another")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	created, err := profileRepo.Create(ctx, profile.UserProfile{
		Email:        *email,
		PasswordHash: string(hash),
		FullName:     *fullName,
		Role:         profile.RoleAdmin,
		IsActive:     true,
	})
	if err != nil {
		log.Fatalf("failed to create admin profile: %v", err)
	}

	log.Printf("admin provisioned: id=%s email=%s", created.ID, created.Email)
}
