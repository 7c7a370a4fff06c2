package controllers

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"

	"github.com/cardealer/backend/internal/models"
)

// CarEditable contains all fields callers can set on a car.
type CarEditable struct {
	Name          string               `json:"name" example:"تويوتا كامري"`
	CarType       models.CarType       `json:"carType" example:"sedan"`
	Year          int                  `json:"year" example:"2020"`
	ChassisNumber string               `json:"chassisNumber" example:"JTNB11HK5J3000001"`
	PurchaseDate  time.Time            `json:"purchaseDate" example:"2024-03-01T00:00:00Z"`
	PurchaseValue decimal.Decimal      `json:"purchaseValue" example:"14500.50"`
	ClearanceType models.ClearanceType `json:"clearanceType" example:"purchase"`
}

func (editable CarEditable) model() models.Car {
	return models.Car{
		Name:          editable.Name,
		CarType:       editable.CarType,
		Year:          editable.Year,
		ChassisNumber: editable.ChassisNumber,
		PurchaseDate:  editable.PurchaseDate,
		PurchaseValue: editable.PurchaseValue,
		ClearanceType: editable.ClearanceType,
	}
}

// validate checks the fields that the database schema cannot.
func (editable CarEditable) validate() error {
	if editable.CarType != "" && !slices.Contains(models.CarTypes, editable.CarType) {
		return errCarTypeInvalid
	}

	if editable.ClearanceType != "" && !slices.Contains(models.ClearanceTypes, editable.ClearanceType) {
		return errClearanceTypeInvalid
	}

	return nil
}

// Car is the API representation of a car.
type Car struct {
	models.DefaultModel
	CarEditable
	Status models.CarStatus `json:"status" example:"available"`
	Sale   *Sale            `json:"sale"`
}

func newCar(model models.Car) Car {
	car := Car{
		DefaultModel: model.DefaultModel,
		CarEditable: CarEditable{
			Name:          model.Name,
			CarType:       model.CarType,
			Year:          model.Year,
			ChassisNumber: model.ChassisNumber,
			PurchaseDate:  model.PurchaseDate,
			PurchaseValue: model.PurchaseValue,
			ClearanceType: model.ClearanceType,
		},
		Status: model.Status,
	}

	if model.Sale != nil {
		// Attach the car so that the profit can be computed
		loaded := *model.Sale
		loaded.Car = model

		sale := newSale(loaded)
		car.Sale = &sale
	}

	return car
}

type CarResponse struct {
	Data  *Car    `json:"data"`
	Error *string `json:"error"`
}

// CarListItem is one entry of the car list. Enum fields carry their
// display labels, monetary values are plain numbers.
type CarListItem struct {
	ID            uuid.UUID `json:"id" example:"d1b4a9d3-4b16-4e1d-a9b4-2a8e6f4b8f19"`
	CarType       string    `json:"car_type" example:"سيارة سيدان"`
	Year          int       `json:"year" example:"2020"`
	ChassisNumber string    `json:"chassis_number" example:"JTNB11HK5J3000001"`
	PurchaseDate  string    `json:"purchase_date" example:"2024-03-01"`
	PurchaseValue float64   `json:"purchase_value" example:"14500.5"`
	Status        string    `json:"status" example:"غير مباع"`
}

func newCarListItem(model models.Car) CarListItem {
	return CarListItem{
		ID:            model.ID,
		CarType:       model.CarType.Label(),
		Year:          model.Year,
		ChassisNumber: model.ChassisNumber,
		PurchaseDate:  model.PurchaseDate.Format("2006-01-02"),
		PurchaseValue: model.PurchaseValue.InexactFloat64(),
		Status:        model.Status.Label(),
	}
}
