// seed-admin creates or resets the initial admin user.
//
// Usage:
//
//	DB_USER=... DB_PASSWORD=... DB_HOST=... DB_PORT=... DB_NAME=... go run ./cmd/seed-admin
//
// Username and password can be overridden with ADMIN_USERNAME / ADMIN_PASSWORD.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gorm.io/gorm"

	"github.com/amirrdn/acounting-api/config"
	"github.com/amirrdn/acounting-api/models"
	"github.com/amirrdn/acounting-api/utils"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

func main() {
	ctx := context.Background()
	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		fmt.Fprintln(os.Stderr, "database not initialized (config.GetDB returned nil). Set DB_* env vars.")
		os.Exit(1)
	}
	if err := models.MigrateAll(db); err != nil {
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}

	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = defaultAdminUsername
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = defaultAdminPassword
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to hash password: %v\n", err)
		os.Exit(1)
	}

	var user models.User
	err = db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{
			Username: username,
			Password: string(hashed),
			Name:     "Administrator",
			Role:     models.RoleAdmin,
			IsActive: utils.NewTrue(),
		}
		if err := db.WithContext(ctx).Create(&user).Error; err != nil {
			fmt.Fprintf(os.Stderr, "failed to create admin user: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("admin user %q created (id %d)\n", username, user.ID)
		return
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "failed to lookup admin user: %v\n", err)
		os.Exit(1)
	}

	err = db.WithContext(ctx).Model(&user).Updates(map[string]interface{}{
		"Password": string(hashed),
		"Role":     models.RoleAdmin,
		"IsActive": true,
	}).Error
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to update admin user: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("admin user %q password reset (id %d)\n", username, user.ID)
}
