package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Sale records the sale of exactly one car.
type Sale struct {
	DefaultModel
	CarID         uuid.UUID       `json:"carId" gorm:"uniqueIndex"`
	Car           Car             `json:"-"`
	SaleDate      time.Time       `json:"saleDate" example:"2021-02-03T00:00:00Z"`
	SaleValue     decimal.Decimal `json:"saleValue" gorm:"type:DECIMAL(12,2)" example:"60000.00"`
	PartialProfit decimal.Decimal `json:"partialProfit" gorm:"type:DECIMAL(12,2)" example:"8000.00" default:"0"` // Manually recorded profit, independent of the computed total profit
}

// BeforeSave sets the timezone for the sale date to UTC.
func (s *Sale) BeforeSave(_ *gorm.DB) error {
	if s.SaleDate.IsZero() {
		s.SaleDate = time.Now().In(time.UTC)
	} else {
		s.SaleDate = s.SaleDate.In(time.UTC)
	}

	return nil
}

// AfterFind sets the timezone for the sale date to UTC.
func (s *Sale) AfterFind(tx *gorm.DB) error {
	_ = s.DefaultModel.AfterFind(tx)

	s.SaleDate = s.SaleDate.In(time.UTC)
	return nil
}

// TotalProfit is the sale value minus the car's purchase value.
// It is computed on every read and never stored, so later changes
// to the purchase value are reflected immediately.
//
// The car association must be loaded.
func (s Sale) TotalProfit() decimal.Decimal {
	return s.SaleValue.Sub(s.Car.PurchaseValue)
}

// AddSale records the sale of a car and marks the car as sold.
//
// Both writes happen in one transaction: either the sale row and the
// status flip are durably visible together, or neither is. A second
// sale for the same car fails with ErrCarAlreadySold.
func AddSale(car Car, sale *Sale) error {
	sale.CarID = car.ID

	return DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Create(sale).Error
		if err != nil {
			return err
		}

		return tx.Model(&Car{}).Where("id = ?", car.ID).Update("status", CarStatusSold).Error
	})
}
