package migrations

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var tables = []string{
	"users", "processes", "partners", "sellers", "clients", "orders",
	"payments", "postponed_payments", "fees", "order_fees", "process_fees",
}

func openMemory(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestMigrateCreatesAllTables(t *testing.T) {
	db := openMemory(t)

	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	for _, table := range tables {
		if !db.Migrator().HasTable(table) {
			t.Errorf("table %s was not created", table)
			continue
		}
		for _, column := range []string{"id", "pid", "created_at", "updated_at"} {
			if !db.Migrator().HasColumn(table, column) {
				t.Errorf("%s.%s column missing", table, column)
			}
		}
	}
	if !db.Migrator().HasColumn("fees", "type") {
		t.Error("fees.type column missing")
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := openMemory(t)

	if err := Migrate(db); err != nil {
		t.Fatalf("first migrate: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}

func TestRollbackLast(t *testing.T) {
	db := openMemory(t)

	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := RollbackLast(db); err != nil {
		t.Fatalf("rollback: %v", err)
	}
	if db.Migrator().HasTable("process_fees") {
		t.Fatal("process_fees should be dropped by rollback")
	}
	if !db.Migrator().HasTable("fees") {
		t.Fatal("earlier tables must stay")
	}
}

func TestMigrationIDsAreOrdered(t *testing.T) {
	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("migration %s is not after %s", list[i].ID, list[i-1].ID)
		}
	}
}
