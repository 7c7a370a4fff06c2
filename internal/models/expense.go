package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MonthlyExpense is a standalone running cost of the dealer's business.
// Its lifecycle is independent of cars and sales.
type MonthlyExpense struct {
	DefaultModel
	UserID      uuid.UUID       `json:"userId"`
	User        User            `json:"-"`
	Description string          `json:"description" example:"Lot rent"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(12,2)" example:"1200.00"`
	Date        time.Time       `json:"date" example:"2021-02-01T00:00:00Z"`
}

// BeforeSave normalizes the description and sets the timezone for the date to UTC.
func (e *MonthlyExpense) BeforeSave(_ *gorm.DB) error {
	e.Description = strings.TrimSpace(e.Description)

	if e.Date.IsZero() {
		e.Date = time.Now().In(time.UTC)
	} else {
		e.Date = e.Date.In(time.UTC)
	}

	return nil
}

// AfterFind sets the timezone for the date to UTC.
func (e *MonthlyExpense) AfterFind(tx *gorm.DB) error {
	_ = e.DefaultModel.AfterFind(tx)

	e.Date = e.Date.In(time.UTC)
	return nil
}
