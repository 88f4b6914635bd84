package configs

import (
	"log"

	"github.com/TanthaiP001/spprosupply/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin สร้าง admin ครั้งแรกจาก ADMIN_EMAIL/ADMIN_PASSWORD
// ถ้ามี user อยู่แล้วจะ promote เป็น admin และตั้งรหัสผ่านใหม่
func SeedAdmin(cfg *Config) error {
	db := DB()
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("⚠️ skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	var existing entity.User
	if err := db.Where("email = ?", cfg.AdminEmail).First(&existing).Error; err == nil {
		log.Println("ℹ️ admin already exists:", cfg.AdminEmail)
		return db.Model(&existing).Updates(map[string]any{
			"role":     "admin",
			"password": string(hash),
		}).Error
	}

	admin := entity.User{
		Email:     cfg.AdminEmail,
		Password:  string(hash),
		FirstName: cfg.AdminFirstName,
		LastName:  cfg.AdminLastName,
		Phone:     cfg.AdminPhone,
		Role:      "admin",
	}
	return db.Create(&admin).Error
}
