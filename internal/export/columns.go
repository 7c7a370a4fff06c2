// Package export renders filtered record lists into downloadable
// documents. The PDF path shapes Arabic text for fixed left-to-right
// placement; the XLSX path writes logical order and leaves bidirectional
// rendering to the spreadsheet viewer.
package export

import (
	"strconv"
	"time"

	"github.com/cardealer/backend/internal/models"
)

// column describes one table column: its header label, its share of the
// PDF page's printable width, and its XLSX column width.
type column struct {
	header    string
	pdfWidth  float64
	xlsxWidth float64
}

var carColumns = []column{
	{"الاسم", 1.2, 20},
	{"النوع", 1.2, 15},
	{"السنة", 0.7, 10},
	{"الشاصي", 0.9, 15},
	{"تاريخ الشراء", 1.0, 15},
	{"القيمة", 0.8, 15},
	{"التخليص", 0.7, 15},
	{"الحالة", 0.7, 15},
}

var saleColumns = []column{
	{"اسم السيارة", 1.2, 20},
	{"النوع", 1.0, 15},
	{"السنة", 0.7, 10},
	{"الشاصي", 0.9, 15},
	{"تاريخ الشراء", 1.0, 15},
	{"قيمة الشراء", 0.8, 15},
	{"التخليص", 0.9, 15},
}

// cell is one table value. Shaped cells pass through the text shaping
// adapter before PDF placement; chassis numbers, formatted numbers and
// dates are placed as-is.
type cell struct {
	text   string
	shaped bool
}

func carRow(car models.Car) []cell {
	return []cell{
		{displayName(car.Name), true},
		{car.CarType.Label(), true},
		{strconv.Itoa(car.Year), false},
		{car.ChassisNumber, false},
		{formatDate(car.PurchaseDate), false},
		{car.PurchaseValue.StringFixed(2), false},
		{car.ClearanceType.Label(), true},
		{car.Status.Label(), true},
	}
}

// saleRow renders the car details of a sale. The sale's car association
// must be loaded.
func saleRow(sale models.Sale) []cell {
	car := sale.Car

	return []cell{
		{displayName(car.Name), true},
		{car.CarType.Label(), true},
		{strconv.Itoa(car.Year), false},
		{car.ChassisNumber, false},
		{formatDate(car.PurchaseDate), false},
		{car.PurchaseValue.StringFixed(2), false},
		{car.ClearanceType.Label(), true},
	}
}

func displayName(name string) string {
	if name == "" {
		return "N/A"
	}
	return name
}

func formatDate(t time.Time) string {
	return t.Format("02/01/2006")
}
