package service

import (
	"testing"

	"referral-coordination-backend/internal/database"
	"referral-coordination-backend/internal/models"
	"referral-coordination-backend/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func newServices(t *testing.T) (*OrganizationService, *ReferralService) {
	t.Helper()

	db := setupTestDB(t)
	orgRepo := repository.NewOrganizationRepo(db)
	referralRepo := repository.NewReferralRepo(db)
	auditRepo := repository.NewAuditRepo(db)

	orgService := NewOrganizationService(orgRepo, auditRepo)
	referralService := NewReferralService(referralRepo, orgRepo, auditRepo)
	return orgService, referralService
}

func validOrgInput(name, role string) CreateOrganizationInput {
	return CreateOrganizationInput{
		Name: name,
		Type: models.TypeClinic,
		Role: role,
		Contact: models.Contact{
			Email: "front-desk@example.org",
			Phone: "5551234567",
		},
	}
}

func strPtr(s string) *string {
	return &s
}
