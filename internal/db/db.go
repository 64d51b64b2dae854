package db

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/killyross/barbershop-booking/internal/config"
	"github.com/killyross/barbershop-booking/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Barber{},
		&models.Customer{},
		&models.Service{},
		&models.Reservation{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedOwner(db, cfg)

	return db
}

// seedOwner garante que existe pelo menos um utilizador com acesso ao
// dashboard no primeiro arranque.
func seedOwner(db *gorm.DB, cfg *config.Config) {
	if cfg.OwnerName == "" || cfg.OwnerPassword == "" {
		return
	}

	var count int64
	if err := db.Model(&models.Barber{}).Where("role = ?", "owner").Count(&count).Error; err != nil {
		log.Printf("owner seed check failed: %v", err)
		return
	}
	if count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.OwnerPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("owner seed hash failed: %v", err)
		return
	}

	owner := models.Barber{
		Name:         cfg.OwnerName,
		PasswordHash: string(hashed),
		Role:         "owner",
		Active:       true,
	}

	if err := db.Create(&owner).Error; err != nil {
		log.Printf("owner seed failed: %v", err)
		return
	}

	log.Printf("seeded owner account %q", cfg.OwnerName)
}
