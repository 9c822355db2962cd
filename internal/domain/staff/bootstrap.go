package staff

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// EnsureBootstrapAdmin creates the first admin account from ADMIN_EMAIL +
// ADMIN_PASSWORD when the staff table is empty. Without it a fresh deploy has
// no way to log in.
func EnsureBootstrapAdmin(db *gorm.DB) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	var count int64
	if err := db.Model(&Staff{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	h := string(hashed)

	admin := Staff{
		Name:         "Admin",
		Email:        email,
		Password:     &h,
		AuthProvider: "local",
		Role:         RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	fmt.Println("✅ Bootstrapped admin account:", email)
	return nil
}
