package controllers

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cardealer/backend/internal/models"
)

var errDescriptionEmpty = errors.New("the description must be set")

// MonthlyExpenseEditable contains all fields callers can set on an expense.
type MonthlyExpenseEditable struct {
	Description string          `json:"description" example:"Lot rent"`
	Amount      decimal.Decimal `json:"amount" example:"1200.00"`
	Date        time.Time       `json:"date" example:"2024-06-01T00:00:00Z"`
}

func (editable MonthlyExpenseEditable) model() models.MonthlyExpense {
	return models.MonthlyExpense{
		Description: editable.Description,
		Amount:      editable.Amount,
		Date:        editable.Date,
	}
}

type MonthlyExpenseResponse struct {
	Data  *models.MonthlyExpense `json:"data"`
	Error *string                `json:"error"`
}

// MonthlyExpenseListResponse carries the expenses together with their
// sum so that clients do not have to re-add decimal values.
type MonthlyExpenseListResponse struct {
	Data  []models.MonthlyExpense `json:"data"`
	Total decimal.Decimal         `json:"total" example:"3600.00"`
	Error *string                 `json:"error"`
}
