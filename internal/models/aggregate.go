package models

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Dashboard holds the aggregates for the dashboard view.
//
// TotalCars, SoldCars and AvailableCars always satisfy
// total = sold + available.
type Dashboard struct {
	TotalPartialProfit decimal.Decimal `json:"totalPartialProfit" example:"8000.00"` // Sum of the partial profit of all sales in range
	TotalExpenses      decimal.Decimal `json:"totalExpenses" example:"1200.00"`      // Sum of all expenses in range
	NetProfit          decimal.Decimal `json:"netProfit" example:"6800.00"`          // Partial profit minus expenses, may be negative
	TotalCars          int64           `json:"totalCars" example:"12"`
	SoldCars           int64           `json:"soldCars" example:"5"`
	AvailableCars      int64           `json:"availableCars" example:"7"`
}

// DashboardTotals computes the aggregates for one user. The date range
// applies to both the sale set and the expense set; car counts are
// always unfiltered.
func DashboardTotals(userID uuid.UUID, dateRange *DateRange) (Dashboard, error) {
	partialProfit, err := PartialProfitSum(userID, dateRange)
	if err != nil {
		return Dashboard{}, err
	}

	expenses, err := ExpenseSum(userID, dateRange)
	if err != nil {
		return Dashboard{}, err
	}

	total, sold, available, err := CarCounts(userID)
	if err != nil {
		return Dashboard{}, err
	}

	return Dashboard{
		TotalPartialProfit: partialProfit,
		TotalExpenses:      expenses,
		NetProfit:          partialProfit.Sub(expenses),
		TotalCars:          total,
		SoldCars:           sold,
		AvailableCars:      available,
	}, nil
}

// PartialProfitSum returns the sum of the partial profit over the user's
// sales in the date range. An empty set sums to zero.
func PartialProfitSum(userID uuid.UUID, dateRange *DateRange) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := salesQuery(DB, userID, dateRange).
		Select("SUM(sales.partial_profit)").
		Row().
		Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("summing partial profit failed: %w", err)
	}

	if !sum.Valid {
		return decimal.Zero, nil
	}

	return sum.Decimal, nil
}

// ExpenseSum returns the sum of the user's expense amounts in the date range.
//
// The database aggregate is tried first. SUM returns NULL instead of zero
// under some conditions, so an invalid result for a non-empty set falls
// back to summing the fetched rows in process. A truly empty set yields
// exact decimal zero, never an absent value.
func ExpenseSum(userID uuid.UUID, dateRange *DateRange) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := expensesQuery(DB, userID, dateRange).
		Select("SUM(monthly_expenses.amount)").
		Row().
		Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("summing expenses failed: %w", err)
	}

	if sum.Valid {
		return sum.Decimal, nil
	}

	expenses, err := FilteredExpenses(userID, dateRange)
	if err != nil {
		return decimal.Zero, err
	}

	return SumExpenseAmounts(expenses), nil
}

// SumExpenseAmounts sums expense amounts in process. It is the fallback
// for ExpenseSum when the database aggregate yields no usable result.
func SumExpenseAmounts(expenses []MonthlyExpense) decimal.Decimal {
	sum := decimal.Zero
	for _, expense := range expenses {
		sum = sum.Add(expense.Amount)
	}

	return sum
}

// CarCounts returns the total, sold and available car counts for the user.
func CarCounts(userID uuid.UUID) (total, sold, available int64, err error) {
	err = DB.Model(&Car{}).Where("user_id = ?", userID).Count(&total).Error
	if err != nil {
		return 0, 0, 0, err
	}

	err = DB.Model(&Car{}).Where("user_id = ? AND status = ?", userID, CarStatusSold).Count(&sold).Error
	if err != nil {
		return 0, 0, 0, err
	}

	err = DB.Model(&Car{}).Where("user_id = ? AND status = ?", userID, CarStatusAvailable).Count(&available).Error
	if err != nil {
		return 0, 0, 0, err
	}

	return total, sold, available, nil
}
