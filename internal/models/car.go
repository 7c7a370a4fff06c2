package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CarType categorizes the vehicle body style.
type CarType string

const (
	CarTypeSedan     CarType = "sedan"
	CarTypeSUV       CarType = "suv"
	CarTypeTruck     CarType = "truck"
	CarTypeVan       CarType = "van"
	CarTypeCoupe     CarType = "coupe"
	CarTypeHatchback CarType = "hatchback"
)

// CarTypes lists all valid car types.
var CarTypes = []CarType{CarTypeSedan, CarTypeSUV, CarTypeTruck, CarTypeVan, CarTypeCoupe, CarTypeHatchback}

var carTypeLabels = map[CarType]string{
	CarTypeSedan:     "سيارة سيدان",
	CarTypeSUV:       "سيارة SUV",
	CarTypeTruck:     "شاحنة",
	CarTypeVan:       "فان",
	CarTypeCoupe:     "كوبيه",
	CarTypeHatchback: "هاتشباك",
}

// Label returns the display label for the car type.
// Unknown values are returned as-is.
func (t CarType) Label() string {
	if label, ok := carTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

// ClearanceType describes how a car entered the inventory.
type ClearanceType string

const (
	ClearancePurchase ClearanceType = "purchase"
	ClearanceAuction  ClearanceType = "auction"
)

// ClearanceTypes lists all valid clearance types.
var ClearanceTypes = []ClearanceType{ClearancePurchase, ClearanceAuction}

var clearanceTypeLabels = map[ClearanceType]string{
	ClearancePurchase: "شراء",
	ClearanceAuction:  "إعلان",
}

// Label returns the display label for the clearance type.
func (t ClearanceType) Label() string {
	if label, ok := clearanceTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

// CarStatus is the sale state of a car.
type CarStatus string

const (
	CarStatusAvailable CarStatus = "available"
	CarStatusSold      CarStatus = "sold"
)

var carStatusLabels = map[CarStatus]string{
	CarStatusAvailable: "غير مباع",
	CarStatusSold:      "مباع",
}

// Label returns the display label for the status.
func (s CarStatus) Label() string {
	if label, ok := carStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// Car represents a vehicle in a dealer's inventory.
type Car struct {
	DefaultModel
	UserID        uuid.UUID       `json:"userId"`
	User          User            `json:"-"`
	Name          string          `json:"name" example:"Toyota Camry" default:""` // Optional display name
	CarType       CarType         `json:"carType" example:"sedan"`
	Year          int             `json:"year" example:"2020"` // Model year
	ChassisNumber string          `json:"chassisNumber" gorm:"uniqueIndex" example:"VIN2020XYZ"`
	PurchaseDate  time.Time       `json:"purchaseDate" example:"2020-05-01T00:00:00Z"`
	PurchaseValue decimal.Decimal `json:"purchaseValue" gorm:"type:DECIMAL(12,2)" example:"50000.00"`
	ClearanceType ClearanceType   `json:"clearanceType" example:"purchase"`
	Status        CarStatus       `json:"status" example:"available" default:"available"`
	Sale          *Sale           `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// BeforeSave normalizes fields and defaults the status to available.
func (c *Car) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.ChassisNumber = strings.TrimSpace(c.ChassisNumber)

	if c.Status == "" {
		c.Status = CarStatusAvailable
	}

	if c.PurchaseDate.IsZero() {
		c.PurchaseDate = time.Now().In(time.UTC)
	} else {
		c.PurchaseDate = c.PurchaseDate.In(time.UTC)
	}

	return nil
}

// AfterFind sets the timezone for the purchase date to UTC.
func (c *Car) AfterFind(tx *gorm.DB) error {
	_ = c.DefaultModel.AfterFind(tx)

	c.PurchaseDate = c.PurchaseDate.In(time.UTC)
	return nil
}

// DeleteCar removes a car together with its sale, if any.
//
// Sales only exist as part of a car, therefore this is the only
// code path that deletes them.
func DeleteCar(car Car) error {
	return DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("car_id = ?", car.ID).Delete(&Sale{}).Error
		if err != nil {
			return err
		}

		return tx.Delete(&car).Error
	})
}
