package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CarFilter holds the optional filter parameters for car lists and exports.
//
// Month and Year are kept as strings on purpose: values that do not parse
// as integers are silently ignored instead of failing the request.
type CarFilter struct {
	Search    string `form:"search"`    // Case-insensitive substring match on car type or chassis number
	Status    string `form:"status"`    // Exact match on the status
	Clearance string `form:"clearance"` // Exact match on the clearance type
	Month     string `form:"month"`     // Calendar month of the purchase date
	Year      string `form:"year"`      // Calendar year of the purchase date
}

// DateRange is an inclusive calendar date range.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ParseDateRange parses the start_date/end_date parameter pair.
//
// Both bounds are required. If either is missing or does not parse as an
// ISO date, nil is returned and the caller skips the range filter. This
// permissive behavior is deliberate.
func ParseDateRange(start, end string) *DateRange {
	if start == "" || end == "" {
		return nil
	}

	s, err := time.Parse("2006-01-02", start)
	if err != nil {
		return nil
	}

	e, err := time.Parse("2006-01-02", end)
	if err != nil {
		return nil
	}

	return &DateRange{Start: s, End: e}
}

// FilteredCars returns the user's cars matching the filter,
// newest-created first.
func FilteredCars(userID uuid.UUID, filter CarFilter) ([]Car, error) {
	q := DB.
		Where("cars.user_id = ?", userID).
		Order("datetime(cars.created_at) DESC")

	if filter.Search != "" {
		search := fmt.Sprintf("%%%s%%", filter.Search)
		q = q.Where("cars.car_type LIKE ? OR cars.chassis_number LIKE ?", search, search)
	}

	if filter.Status != "" {
		q = q.Where("cars.status = ?", filter.Status)
	}

	if filter.Clearance != "" {
		q = q.Where("cars.clearance_type = ?", filter.Clearance)
	}

	// Non-integer and out-of-range month/year values skip the filter
	// instead of failing
	if filter.Month != "" {
		if month, err := strconv.Atoi(filter.Month); err == nil && month >= 1 && month <= 12 {
			q = q.Where("CAST(strftime('%m', cars.purchase_date) AS INTEGER) = ?", month)
		}
	}

	if filter.Year != "" {
		if year, err := strconv.Atoi(filter.Year); err == nil {
			q = q.Where("CAST(strftime('%Y', cars.purchase_date) AS INTEGER) = ?", year)
		}
	}

	var cars []Car
	err := q.Find(&cars).Error
	if err != nil {
		return nil, err
	}

	return cars, nil
}

// FilteredSales returns the user's sales with their cars preloaded,
// latest sale date first. A nil range returns all sales.
func FilteredSales(userID uuid.UUID, dateRange *DateRange) ([]Sale, error) {
	q := salesQuery(DB, userID, dateRange).
		Preload("Car").
		Order("datetime(sales.sale_date) DESC, datetime(sales.created_at) DESC")

	var sales []Sale
	err := q.Find(&sales).Error
	if err != nil {
		return nil, err
	}

	return sales, nil
}

// FilteredExpenses returns the user's expenses, latest date first.
// A nil range returns all expenses.
func FilteredExpenses(userID uuid.UUID, dateRange *DateRange) ([]MonthlyExpense, error) {
	q := expensesQuery(DB, userID, dateRange).
		Order("datetime(monthly_expenses.date) DESC, datetime(monthly_expenses.created_at) DESC")

	var expenses []MonthlyExpense
	err := q.Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	return expenses, nil
}

// salesQuery scopes sales to the owner of their car and applies the
// optional date range. Sales are scoped transitively: their car must
// belong to the user.
func salesQuery(db *gorm.DB, userID uuid.UUID, dateRange *DateRange) *gorm.DB {
	q := db.Model(&Sale{}).
		Joins("JOIN cars ON cars.id = sales.car_id AND cars.deleted_at IS NULL").
		Where("cars.user_id = ?", userID)

	if dateRange != nil {
		q = q.
			Where("sales.sale_date >= date(?)", day(dateRange.Start)).
			Where("sales.sale_date < date(?)", day(dateRange.End).AddDate(0, 0, 1))
	}

	return q
}

func expensesQuery(db *gorm.DB, userID uuid.UUID, dateRange *DateRange) *gorm.DB {
	q := db.Model(&MonthlyExpense{}).
		Where("monthly_expenses.user_id = ?", userID)

	if dateRange != nil {
		q = q.
			Where("monthly_expenses.date >= date(?)", day(dateRange.Start)).
			Where("monthly_expenses.date < date(?)", day(dateRange.End).AddDate(0, 0, 1))
	}

	return q
}

// day truncates a timestamp to midnight UTC of its day.
func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
