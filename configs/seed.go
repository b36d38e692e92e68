package configs

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"

	"github.com/BoaventuraDBoaventura/menu-stream-sub000/entity"
)

// SeedAdmin creates the platform admin on first boot.
func SeedAdmin(cfg *Config) error {
	db := DB()
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Email:     cfg.AdminEmail,
		Password:  string(hash),
		FirstName: "Admin",
		Role:      "admin",
	}
	return db.Create(&admin).Error
}

// SeedLookups inserts the fixed order statuses and default platform settings.
func SeedLookups() error {
	db := DB()

	for _, name := range []string{
		entity.StatusNew, entity.StatusPreparing, entity.StatusReady,
		entity.StatusDelivered, entity.StatusCancelled,
	} {
		db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: name})
	}

	defaults := map[string]string{
		"default_currency":  `"USD"`,
		"trial_days":        `14`,
		"max_staff_members": `20`,
	}
	for key, val := range defaults {
		setting := entity.PlatformSetting{Key: key, Value: datatypes.JSON(val)}
		db.Where("key = ?", key).FirstOrCreate(&setting)
	}

	log.Println("lookup tables seeded")
	return nil
}
