package puzzle

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Puzzle is a generated crossword. SolutionJSON holds the grid rows and HintsJSON the ten
// clues (across 1-5, then down 1-5); both are JSON arrays of strings.
type Puzzle struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Theme        string         `gorm:"column:theme;not null" json:"theme"`
	SolutionJSON datatypes.JSON `gorm:"column:solution_json;not null" json:"solution_json"`
	HintsJSON    datatypes.JSON `gorm:"column:hints_json;not null" json:"hints_json"`
	CreatedAt    time.Time      `gorm:"not null;index" json:"created_at"`
}

func (Puzzle) TableName() string { return "puzzle" }

func (p *Puzzle) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
