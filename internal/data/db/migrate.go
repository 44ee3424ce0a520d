package db

import (
	"gorm.io/gorm"

	"github.com/yungbote/crossword-backend/internal/domain/puzzle"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&puzzle.Puzzle{},
	)
}
