package main

import (
	"log"
	"os"

	"rlc-hub-be/internal/model"
	"rlc-hub-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding subscription plans...")
	seedPlans(db)

	color.Cyan("Seeding super admin...")
	seedSuperAdmin(db)

	color.Green("✅ Seeding completed!")
}

func seedPlans(db *gorm.DB) {
	plans := []model.SubscriptionPlan{
		{Name: "Starter", Slug: "starter", Price: 0, BillingPeriod: "monthly", TokenLimit: 200000},
		{Name: "Team", Slug: "team", Price: 490000, BillingPeriod: "monthly", TokenLimit: 1000000},
		{Name: "Enterprise", Slug: "enterprise", Price: 1490000, BillingPeriod: "monthly", TokenLimit: 5000000},
	}

	for _, p := range plans {
		var existing model.SubscriptionPlan
		if err := db.Where("slug = ?", p.Slug).First(&existing).Error; err == nil {
			color.Yellow("Plan '%s' already exists, skipping...", p.Slug)
			continue
		}

		if err := db.Create(&p).Error; err != nil {
			color.Red("Error creating plan '%s': %v", p.Slug, err)
		} else {
			color.Green("Created plan: %s (%s)", p.Name, p.Slug)
		}
	}
}

func seedSuperAdmin(db *gorm.DB) {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@rlc-hub.local"
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "changeme123"
		color.Yellow("SEED_ADMIN_PASSWORD not set, using default. Change it immediately.")
	}

	var existing model.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		color.Yellow("Super admin '%s' already exists, skipping...", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		color.Red("Error hashing admin password: %v", err)
		return
	}

	admin := model.User{
		Email:        email,
		FirstName:    "Super",
		LastName:     "Admin",
		PasswordHash: string(hash),
		Role:         "super_admin",
		Status:       "active",
	}

	if err := db.Create(&admin).Error; err != nil {
		color.Red("Error creating super admin: %v", err)
	} else {
		color.Green("Created super admin: %s", email)
	}
}
