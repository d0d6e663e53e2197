package main

import (
	"context"
	"flag"
	"log"

	"github.com/Breezy-Reese/hotel/config"
	"github.com/Breezy-Reese/hotel/internal/models"
	"github.com/Breezy-Reese/hotel/internal/repository"
	"github.com/Breezy-Reese/hotel/pkg/database"
	"golang.org/x/crypto/bcrypt"
)

// seedadmin creates an admin account, or resets its password if the email
// already exists. Passwords are stored as bcrypt digests only.
func main() {
	email := flag.String("email", "admin@hotel.local", "admin email")
	password := flag.String("password", "", "admin password (required)")
	flag.Parse()

	if *password == "" {
		log.Fatal("usage: seedadmin -email <email> -password <password>")
	}

	cfg := config.Load()
	db := database.NewPostgresDB(cfg.DSN())

	digest, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	admins := repository.NewAdminRepository(db)
	admin := &models.Admin{Email: *email, Password: string(digest)}
	if err := admins.Upsert(context.Background(), admin); err != nil {
		log.Fatalf("upsert admin: %v", err)
	}

	log.Printf("admin %s ready", *email)
}
