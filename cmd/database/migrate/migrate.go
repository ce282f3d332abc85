package migration

import (
	"Recette/entities"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	// uuid_generate_v4() is the default for recipes.id
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";").Error; err != nil {
		return fmt.Errorf("create uuid-ossp extension: %w", err)
	}

	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		return fmt.Errorf("migrate recipe table: %w", err)
	}

	log.Info("Database migration complete")
	return nil
}
