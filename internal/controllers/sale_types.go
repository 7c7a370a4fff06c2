package controllers

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cardealer/backend/internal/models"
)

// SaleEditable contains all fields callers can set on a sale.
type SaleEditable struct {
	SaleDate      time.Time       `json:"saleDate" example:"2024-06-15T00:00:00Z"`
	SaleValue     decimal.Decimal `json:"saleValue" example:"18000.00"`
	PartialProfit decimal.Decimal `json:"partialProfit" example:"1200.00"`
}

func (editable SaleEditable) model() models.Sale {
	return models.Sale{
		SaleDate:      editable.SaleDate,
		SaleValue:     editable.SaleValue,
		PartialProfit: editable.PartialProfit,
	}
}

// Sale is the API representation of a sale.
type Sale struct {
	models.DefaultModel
	SaleEditable
	CarID       uuid.UUID       `json:"carId" example:"d1b4a9d3-4b16-4e1d-a9b4-2a8e6f4b8f19"`
	TotalProfit decimal.Decimal `json:"totalProfit" example:"3499.50"`
}

func newSale(model models.Sale) Sale {
	return Sale{
		DefaultModel: model.DefaultModel,
		SaleEditable: SaleEditable{
			SaleDate:      model.SaleDate,
			SaleValue:     model.SaleValue,
			PartialProfit: model.PartialProfit,
		},
		CarID:       model.CarID,
		TotalProfit: model.TotalProfit(),
	}
}

type SaleResponse struct {
	Data  *Sale   `json:"data"`
	Error *string `json:"error"`
}

// SaleListItem is one entry of the sales list. The car is reported by
// its type label, monetary values are plain numbers.
type SaleListItem struct {
	ID            uuid.UUID `json:"id" example:"b1c0f9ab-6f7b-47c3-bb1c-0a0bd3e4f9a2"`
	Car           string    `json:"car" example:"سيارة سيدان"`
	ChassisNumber string    `json:"chassis_number" example:"JTNB11HK5J3000001"`
	SaleDate      string    `json:"sale_date" example:"2024-06-15"`
	SaleValue     float64   `json:"sale_value" example:"18000"`
	PurchaseValue float64   `json:"purchase_value" example:"14500.5"`
	TotalProfit   float64   `json:"total_profit" example:"3499.5"`
	PartialProfit float64   `json:"partial_profit" example:"1200"`
}

func newSaleListItem(model models.Sale) SaleListItem {
	return SaleListItem{
		ID:            model.ID,
		Car:           model.Car.CarType.Label(),
		ChassisNumber: model.Car.ChassisNumber,
		SaleDate:      model.SaleDate.Format("2006-01-02"),
		SaleValue:     model.SaleValue.InexactFloat64(),
		PurchaseValue: model.Car.PurchaseValue.InexactFloat64(),
		TotalProfit:   model.TotalProfit().InexactFloat64(),
		PartialProfit: model.PartialProfit.InexactFloat64(),
	}
}
