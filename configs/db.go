package configs

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/BoaventuraDBoaventura/menu-stream-sub000/entity"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) error {
	var dial gorm.Dialector
	switch cfg.DBDriver {
	case "sqlite":
		dial = sqlite.Open(cfg.DBSource)
	case "postgres":
		dial = postgres.Open(cfg.DBSource)
	default:
		return fmt.Errorf("unknown db driver %q", cfg.DBDriver)
	}

	database, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	db = database
	return nil
}

func SetupDatabase() error {
	return db.AutoMigrate(
		&entity.User{}, &entity.PasswordReset{},
		&entity.Restaurant{}, &entity.StaffMember{},
		&entity.Category{}, &entity.MenuItem{}, &entity.MenuItemOption{},
		&entity.Option{}, &entity.OptionValue{},
		&entity.Table{},
		&entity.OrderStatus{}, &entity.Order{}, &entity.OrderItem{}, &entity.OrderItemSelection{},
		&entity.OrderCounter{},
		&entity.PaymentMethod{},
		&entity.PlatformSetting{},
	)
}
