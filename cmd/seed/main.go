// Command seed creates demo data: an admin, a clinician, and a sample
// patient with one booking, plus the care service catalog. It is
// idempotent and skips everything when the admin already exists.
package main

import (
	"time"

	"carebook/config"
	"carebook/internal/domain/entity"
	"carebook/internal/infrastructure/database"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const adminPhone = "9999999999"

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	if err := database.RunMigrations(cfg.DB.URL()); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("phone = ?", adminPhone).Count(&count).Error; err != nil {
		logrus.Fatalf("Failed to check for existing seed data: %v", err)
	}
	if count > 0 {
		logrus.Info("Seed data already present")
		return
	}

	if err := db.Transaction(seed); err != nil {
		logrus.Fatalf("Failed to seed data: %v", err)
	}

	logrus.Info("Seed data created")
}

func seed(tx *gorm.DB) error {
	admin := &entity.User{
		Name:         "Admin",
		Phone:        adminPhone,
		PasswordHash: mustHash("adminpass"),
		Role:         entity.RoleAdmin,
	}
	if err := tx.Create(admin).Error; err != nil {
		return err
	}

	clinicianUser := &entity.User{
		Name:         "Dr. Asha Verma",
		Phone:        "9888888888",
		PasswordHash: mustHash("clinicianpass"),
		Role:         entity.RoleClinician,
	}
	if err := tx.Create(clinicianUser).Error; err != nil {
		return err
	}
	clinician := &entity.ClinicianProfile{
		UserID:         clinicianUser.ID,
		Specialization: "physiotherapy",
		Biography:      "Home-visit physiotherapist.",
	}
	if err := tx.Create(clinician).Error; err != nil {
		return err
	}

	patientUser := &entity.User{
		Name:         "Test Patient",
		Phone:        "9876543210",
		PasswordHash: mustHash("password"),
		Role:         entity.RolePatient,
	}
	if err := tx.Create(patientUser).Error; err != nil {
		return err
	}
	patient := &entity.PatientProfile{
		UserID:         patientUser.ID,
		Address:        "Delhi, India",
		MedicalHistory: "None",
	}
	if err := tx.Create(patient).Error; err != nil {
		return err
	}

	booking := &entity.Booking{
		PatientID:   patient.ID,
		Service:     "physiotherapy",
		ScheduledAt: time.Now().UTC().Add(24 * time.Hour),
		Notes:       "Initial visit",
	}
	if err := tx.Create(booking).Error; err != nil {
		return err
	}

	services := []entity.CareService{
		{Name: "physiotherapy", Description: "Home physiotherapy session", Price: decimal.NewFromInt(1200)},
		{Name: "ICU-at-home", Description: "Critical care setup at home, per day", Price: decimal.NewFromInt(15000)},
		{Name: "nursing-visit", Description: "Scheduled nursing visit", Price: decimal.NewFromInt(800)},
	}
	for i := range services {
		if err := tx.Create(&services[i]).Error; err != nil {
			return err
		}
	}

	return nil
}

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logrus.Fatalf("Failed to hash seed password: %v", err)
	}
	return string(hash)
}
