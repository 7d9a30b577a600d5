package main

import (
	"flag"
	"fmt"

	"github.com/Masood-zone/CMS--full/app/config"
	"github.com/Masood-zone/CMS--full/app/database"
	"github.com/Masood-zone/CMS--full/app/models"
)

func main() {
	name := flag.String("name", "", "full name")
	email := flag.String("email", "", "email address")
	password := flag.String("password", "", "password (min 8 chars)")
	role := flag.String("role", string(models.Admin), "SUPER_ADMIN, ADMIN or TEACHER")
	flag.Parse()

	if *name == "" || *email == "" || *password == "" {
		fmt.Println("Usage: add_user -name NAME -email EMAIL -password PASSWORD [-role ROLE]")
		return
	}

	// Initialize database connection
	config.InitDB()
	db := config.GetDB()
	if db == nil {
		fmt.Println("Failed to connect to database")
		return
	}
	defer db.Close()

	user := &models.User{
		Name:     *name,
		Email:    *email,
		Password: *password,
		Role:     models.UserRole(*role),
	}

	if err := database.CreateUser(db, user); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		return
	}

	fmt.Printf("User created successfully: %s (%s, %s)\n", user.Name, user.Email, user.Role)
}
