package boot

import (
	"log"
	"os"

	"stayease/src/config"
	"stayease/src/db"
	"stayease/src/models"
	"stayease/src/types"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(
		&models.User{},
		&models.Place{},
		&models.Booking{},
		&models.Payment{},
		&models.Review{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	return db
}

// SeedRootAdmin makes sure the super-admin account exists. It is a no-op
// unless both ROOT_ADMIN_EMAIL and ROOT_ADMIN_PASSWORD are set.
func SeedRootAdmin(db *gorm.DB) {
	email := os.Getenv("ROOT_ADMIN_EMAIL")
	password := os.Getenv("ROOT_ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}
	var count int64
	if err := db.
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).
		Error; err != nil {
		log.Printf("Error checking for root admin: %s\n", err.Error())
		return
	}
	if count > 0 {
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing root admin password: %s\n", err.Error())
		return
	}
	admin := models.User{
		Username:       "admin",
		Email:          email,
		Password:       string(hash),
		ProfilePicture: config.DEFAULT_PROFILE_PICTURE,
		Role:           types.ROLE_ADMIN,
	}
	if err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&admin).Error
	}); err != nil {
		log.Printf("Error seeding root admin: %s\n", err.Error())
		return
	}
	log.Printf("Seeded root admin account: %d\n", admin.ID)
}
