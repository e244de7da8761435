package persistence

import (
	"fmt"

	"github.com/Shrivardhan5306/Senatebot-Autonomous-Governance/shared/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func BuildDSN(cfg *config.PostgresConfig) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Address, cfg.Port, cfg.User, cfg.Password, cfg.DBName)
}

func InitGorm(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&EventModel{}, &RegistrationModel{}, &AuditLogModel{}); err != nil {
		return nil, err
	}
	return db, nil
}
