package postgres

import (
	"fmt"

	"deliveryscheduler/internal/adapters/out/postgres/calendarrepo"
	"deliveryscheduler/internal/adapters/out/postgres/courierrepo"
	"deliveryscheduler/internal/adapters/out/postgres/historyrepo"
	"deliveryscheduler/internal/adapters/out/postgres/schedulerepo"
	"deliveryscheduler/internal/adapters/out/postgres/sourcerepo"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Migrate creates or updates the tables owned by the engine, including the
// partial unique index that allows one active schedule per source row.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&schedulerepo.ScheduleDTO{},
		&calendarrepo.DayDTO{},
		&historyrepo.EntryDTO{},
		&courierrepo.CourierDTO{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate engine tables")
	}

	stmt := fmt.Sprintf(
		`CREATE UNIQUE INDEX IF NOT EXISTS %s ON delivery_schedules (source_kind, source_id) WHERE status NOT IN ('delivered', 'cancelled')`,
		schedulerepo.ActiveSourceIndex,
	)
	if err := db.Exec(stmt).Error; err != nil {
		return errors.Wrap(err, "failed to create active source index")
	}
	return nil
}

// MigrateSourceTables creates the order tables for local development and tests.
// In production they belong to the order workflows.
func MigrateSourceTables(db *gorm.DB) error {
	return errors.Wrap(db.AutoMigrate(
		&sourcerepo.StandardOrderDTO{},
		&sourcerepo.StandardOrderItemDTO{},
		&sourcerepo.CustomFabricationOrderDTO{},
		&sourcerepo.CustomDesignOrderDTO{},
	), "failed to migrate source tables")
}
