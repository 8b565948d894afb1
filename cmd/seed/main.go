package main

import (
	"context"
	"flag"
	"log"

	"printshop/internal/auth"
	"printshop/internal/config"
	"printshop/internal/db"
	"printshop/internal/model"
	"printshop/internal/repository"
	"printshop/internal/service"
)

// Creates the default super admin so a fresh deployment has a way into the
// dashboard. Does nothing if the username is already taken.
func main() {
	cfg := config.Load()

	username := flag.String("username", cfg.AdminUsername, "super admin username")
	email := flag.String("email", cfg.AdminEmail, "super admin email")
	password := flag.String("password", cfg.AdminPassword, "super admin password")
	flag.Parse()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.Admin{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	adminRepo := repository.NewAdminRepository(gormDB)
	authService := service.NewAuthService(adminRepo, auth.NewJWTService(cfg.JWTSecret))

	if err := authService.Bootstrap(context.Background(), *username, *email, *password); err != nil {
		log.Fatalf("Failed to create super admin: %v", err)
	}

	log.Printf("Super admin %q is ready", *username)
}
