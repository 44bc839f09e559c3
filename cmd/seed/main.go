package main

import (
	"context"
	"errors"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	userserrors "tripora/internal/users/errors"
	"tripora/internal/users/repository"
	"tripora/pkg/config"
	"tripora/pkg/model"
)

const JobName = "seed"

// Seeds the initial admin account. Re-running is a no-op when the
// username already exists.
func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	cfg := config.Load(JobName)
	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	username := envOr("ADMIN_USERNAME", "admin")
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		cfg.Log.Fatal("ADMIN_PASSWORD must be set to seed the admin user")
	}
	email := cfg.AdminEmail
	if email == "" {
		cfg.Log.Fatal("ADMIN_EMAIL must be set to seed the admin user")
	}

	users := repository.NewMongoUserRepository(cfg)

	_, err := users.FindByUsername(ctx, username)
	if err == nil {
		cfg.Log.Info("Admin user already exists, nothing to do", "username", username)
		return
	}
	if !errors.Is(err, userserrors.ErrNotFound) {
		cfg.Log.Fatal("Failed to check for existing admin user", "error", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		cfg.Log.Fatal("Failed to hash admin password", "error", err)
	}

	admin := &model.User{
		Username: username,
		Email:    email,
		Password: string(hash),
		Role:     "admin",
	}
	if err := users.Create(ctx, admin); err != nil {
		cfg.Log.Fatal("Failed to create admin user", "error", err)
	}

	cfg.Log.Info("Admin user created", "username", username, "email", email)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
