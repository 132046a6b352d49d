// Command register-admin creates the admin user the login endpoint
// authenticates against. The password is bcrypt-hashed before it
// touches the database.
package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/hjortab/hjort-api/config"
	"github.com/hjortab/hjort-api/models"
	"github.com/hjortab/hjort-api/utils"
)

func main() {
	username := flag.String("username", "", "admin username (required)")
	password := flag.String("password", "", "admin password (required)")
	email := flag.String("email", "", "admin email")
	firstName := flag.String("first-name", "", "admin first name")
	lastName := flag.String("last-name", "", "admin last name")
	flag.Parse()

	if *username == "" || *password == "" {
		log.Fatal("both -username and -password are required")
	}

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	utils.InitLogger()

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to hash password: %v", err)
	}

	admin := models.AdminUser{
		Username:     *username,
		PasswordHash: string(hashed),
		Email:        *email,
		FirstName:    *firstName,
		LastName:     *lastName,
	}
	if err := db.Create(&admin).Error; err != nil {
		utils.ErrorLogger.Fatalf("Failed to create admin user: %v", err)
	}

	utils.InfoLogger.Printf("Admin user %q created.", admin.Username)
}
