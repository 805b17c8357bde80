// Operator CLI for managing staff accounts without going through the API.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"laporpak/backend/internal/config"
	"laporpak/backend/internal/models"
	"laporpak/backend/internal/storage"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	store := storage.NewStorageService(db, nil) // No redis needed for admin CLI

	if len(os.Args) < 2 {
		usage()
	}

	switch os.Args[1] {
	case "create":
		if len(os.Args) < 5 {
			fmt.Println("Usage: admin create <username> <full name> <password> [role]")
			os.Exit(1)
		}
		role := models.RoleAdmin
		if len(os.Args) > 5 {
			role = models.Role(strings.ToLower(os.Args[5]))
			if !role.Valid() {
				log.Fatalf("Unknown role %q (admin, master_admin, pimpinan)", os.Args[5])
			}
		}
		if err := createAdmin(store, os.Args[2], os.Args[3], os.Args[4], role); err != nil {
			log.Fatalf("Error creating admin: %v", err)
		}
		fmt.Printf("Admin %s created with role %s.\n", os.Args[2], role)

	case "set-role":
		if len(os.Args) != 4 {
			fmt.Println("Usage: admin set-role <username> <role>")
			os.Exit(1)
		}
		role := models.Role(strings.ToLower(os.Args[3]))
		if !role.Valid() {
			log.Fatalf("Unknown role %q (admin, master_admin, pimpinan)", os.Args[3])
		}
		if err := setRole(store, os.Args[2], role); err != nil {
			log.Fatalf("Error changing role: %v", err)
		}
		fmt.Printf("Role of %s changed to %s.\n", os.Args[2], role)

	case "set-password":
		if len(os.Args) != 4 {
			fmt.Println("Usage: admin set-password <username> <password>")
			os.Exit(1)
		}
		if err := setPassword(store, os.Args[2], os.Args[3]); err != nil {
			log.Fatalf("Error resetting password: %v", err)
		}
		fmt.Printf("Password of %s has been reset.\n", os.Args[2])

	default:
		usage()
	}
}

func usage() {
	fmt.Println("Usage: admin <command> [args]")
	fmt.Println("Commands: create, set-role, set-password")
	os.Exit(1)
}

func createAdmin(store *storage.Service, username, fullName, password string, role models.Role) error {
	admin := &models.Admin{
		FullName: fullName,
		Username: username,
		Password: password,
		Role:     role,
	}
	if err := admin.HashPassword(); err != nil {
		return err
	}
	return store.CreateAdmin(admin)
}

func setRole(store *storage.Service, username string, role models.Role) error {
	admin, err := store.GetAdminByUsername(username)
	if err != nil {
		return err
	}
	admin.Role = role
	return store.UpdateAdmin(admin)
}

func setPassword(store *storage.Service, username, password string) error {
	admin, err := store.GetAdminByUsername(username)
	if err != nil {
		return err
	}
	admin.Password = password
	if err := admin.HashPassword(); err != nil {
		return err
	}
	return store.UpdateAdmin(admin)
}
