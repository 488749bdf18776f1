package db

import (
	"github.com/ndzsps/mentaltradingjournal-sub001/internal/models"
)

func AutoMigrate(db *DB) error {
	if db == nil || db.Gorm == nil || db.SQL == nil {
		return nil
	}

	return db.Gorm.AutoMigrate(
		&models.User{},
		&models.JournalEntry{},
		&models.ProgressStats{},
		&models.Blueprint{},
		&models.BacktestSession{},
		&models.Subscription{},
		&models.UserDailyStats{},
	)
}
