package database

import (
	"fmt"
	"testing"
	"time"

	"ledger-copilot/internal/config"
	"ledger-copilot/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// cleanupTables lists tables in foreign-key safe delete order.
var cleanupTables = []string{
	"action_executions",
	"proposals",
	"webhook_events",
	"transactions",
	"provider_items",
	"categories",
	"audit_logs",
	"users",
	"tenants",
}

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// Every connection to :memory: is a fresh database.
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			Driver:         DriverSQLite,
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return testDB
}

func CreateTestTenant(t *testing.T, db *DB, name string) *models.Tenant {
	t.Helper()

	tenant := &models.Tenant{Name: name}
	if err := db.Create(tenant).Error; err != nil {
		t.Fatalf("failed to create test tenant: %v", err)
	}

	return tenant
}

func CreateTestUser(t *testing.T, db *DB, tenant *models.Tenant, email string) *models.User {
	t.Helper()

	user := &models.User{
		Email:        email,
		PasswordHash: "hashed_password",
		Role:         models.RoleMember,
	}
	if tenant != nil {
		user.TenantID = &tenant.ID
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

func CreateTestCategory(t *testing.T, db *DB, tenantID uuid.UUID, name string) *models.Category {
	t.Helper()

	category := &models.Category{TenantID: tenantID, Name: name}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}

	return category
}

func CreateTestProviderItem(t *testing.T, db *DB, tenantID uuid.UUID, itemID string) *models.ProviderItem {
	t.Helper()

	item := &models.ProviderItem{TenantID: tenantID, ProviderItemID: itemID}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to create test provider item: %v", err)
	}

	return item
}

func CreateTestTransaction(t *testing.T, db *DB, tenantID uuid.UUID, providerTxnID, name, amount string, postedDate time.Time) *models.Transaction {
	t.Helper()

	txn := &models.Transaction{
		TenantID:              tenantID,
		ProviderTransactionID: providerTxnID,
		Name:                  name,
		Amount:                decimal.RequireFromString(amount),
		PostedDate:            postedDate,
	}

	if err := db.Create(txn).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return txn
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	for _, table := range cleanupTables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
