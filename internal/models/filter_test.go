package models_test

import (
	"time"

	"github.com/cardealer/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestParseDateRange() {
	r := models.ParseDateRange("2024-01-01", "2024-01-31")
	suite.Require().NotNil(r)
	suite.Assert().Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), r.Start)
	suite.Assert().Equal(time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), r.End)
}

// A half set or unparseable pair yields no range at all.
func (suite *TestSuiteStandard) TestParseDateRangeInvalid() {
	suite.Assert().Nil(models.ParseDateRange("", ""))
	suite.Assert().Nil(models.ParseDateRange("2024-01-01", ""))
	suite.Assert().Nil(models.ParseDateRange("", "2024-01-31"))
	suite.Assert().Nil(models.ParseDateRange("01/01/2024", "2024-01-31"))
	suite.Assert().Nil(models.ParseDateRange("2024-01-01", "not-a-date"))
}

func (suite *TestSuiteStandard) TestFilteredCarsSearch() {
	user := suite.createTestUser(models.User{})
	_ = suite.createTestCar(models.Car{UserID: user.ID, CarType: models.CarTypeSedan, ChassisNumber: "VIN2020XYZ"})
	_ = suite.createTestCar(models.Car{UserID: user.ID, CarType: models.CarTypeTruck, ChassisNumber: "OTHER"})

	// Chassis number match
	cars, err := models.FilteredCars(user.ID, models.CarFilter{Search: "2020"})
	suite.Require().NoError(err)
	suite.Require().Len(cars, 1)
	suite.Assert().Equal("VIN2020XYZ", cars[0].ChassisNumber)

	// Car type match
	cars, err = models.FilteredCars(user.ID, models.CarFilter{Search: "sedan"})
	suite.Require().NoError(err)
	suite.Require().Len(cars, 1)
	suite.Assert().Equal(models.CarTypeSedan, cars[0].CarType)
}

func (suite *TestSuiteStandard) TestFilteredCarsStatusAndClearance() {
	user := suite.createTestUser(models.User{})
	sold := suite.createTestCar(models.Car{UserID: user.ID, ClearanceType: models.ClearanceAuction})
	_ = suite.createTestSale(sold, models.Sale{SaleValue: decimal.NewFromInt(100)})
	_ = suite.createTestCar(models.Car{UserID: user.ID, ClearanceType: models.ClearancePurchase})

	cars, err := models.FilteredCars(user.ID, models.CarFilter{Status: "sold"})
	suite.Require().NoError(err)
	suite.Require().Len(cars, 1)
	suite.Assert().Equal(sold.ID, cars[0].ID)

	cars, err = models.FilteredCars(user.ID, models.CarFilter{Clearance: "purchase"})
	suite.Require().NoError(err)
	suite.Require().Len(cars, 1)
	suite.Assert().Equal(models.ClearancePurchase, cars[0].ClearanceType)
}

func (suite *TestSuiteStandard) TestFilteredCarsMonthYear() {
	user := suite.createTestUser(models.User{})
	march := suite.createTestCar(models.Car{UserID: user.ID, PurchaseDate: time.Date(2023, 3, 10, 0, 0, 0, 0, time.UTC)})
	_ = suite.createTestCar(models.Car{UserID: user.ID, PurchaseDate: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)})

	cars, err := models.FilteredCars(user.ID, models.CarFilter{Month: "3"})
	suite.Require().NoError(err)
	suite.Require().Len(cars, 1)
	suite.Assert().Equal(march.ID, cars[0].ID)

	cars, err = models.FilteredCars(user.ID, models.CarFilter{Year: "2024"})
	suite.Require().NoError(err)
	suite.Require().Len(cars, 1)

	// Month and year combined
	cars, err = models.FilteredCars(user.ID, models.CarFilter{Month: "3", Year: "2024"})
	suite.Require().NoError(err)
	suite.Assert().Len(cars, 0)
}

// Month and year values that are not integers do not filter at all.
func (suite *TestSuiteStandard) TestFilteredCarsIgnoresUnparseableMonthYear() {
	user := suite.createTestUser(models.User{})
	_ = suite.createTestCar(models.Car{UserID: user.ID})
	_ = suite.createTestCar(models.Car{UserID: user.ID})

	cars, err := models.FilteredCars(user.ID, models.CarFilter{Month: "abc", Year: "20x4"})
	suite.Require().NoError(err)
	suite.Assert().Len(cars, 2)
}

// A month outside 1-12 is treated like an unparseable one and returns
// the unfiltered set.
func (suite *TestSuiteStandard) TestFilteredCarsIgnoresOutOfRangeMonth() {
	user := suite.createTestUser(models.User{})
	_ = suite.createTestCar(models.Car{UserID: user.ID, PurchaseDate: time.Date(2023, 3, 10, 0, 0, 0, 0, time.UTC)})
	_ = suite.createTestCar(models.Car{UserID: user.ID, PurchaseDate: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)})

	for _, month := range []string{"13", "0", "-1"} {
		cars, err := models.FilteredCars(user.ID, models.CarFilter{Month: month})
		suite.Require().NoError(err)
		suite.Assert().Len(cars, 2, "month: %s", month)
	}
}

func (suite *TestSuiteStandard) TestFilteredCarsScopedToUser() {
	user := suite.createTestUser(models.User{})
	other := suite.createTestUser(models.User{})
	_ = suite.createTestCar(models.Car{UserID: user.ID})
	_ = suite.createTestCar(models.Car{UserID: other.ID})

	cars, err := models.FilteredCars(user.ID, models.CarFilter{})
	suite.Require().NoError(err)
	suite.Require().Len(cars, 1)
	suite.Assert().Equal(user.ID, cars[0].UserID)
}

func (suite *TestSuiteStandard) TestFilteredCarsOrder() {
	user := suite.createTestUser(models.User{})

	older := suite.createTestCar(models.Car{UserID: user.ID, DefaultModel: models.DefaultModel{CreatedAt: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)}})
	newer := suite.createTestCar(models.Car{UserID: user.ID, DefaultModel: models.DefaultModel{CreatedAt: time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)}})

	cars, err := models.FilteredCars(user.ID, models.CarFilter{})
	suite.Require().NoError(err)
	suite.Require().Len(cars, 2)
	suite.Assert().Equal(newer.ID, cars[0].ID)
	suite.Assert().Equal(older.ID, cars[1].ID)
}

func (suite *TestSuiteStandard) TestFilteredSalesDateRange() {
	user := suite.createTestUser(models.User{})

	june := suite.createTestCar(models.Car{UserID: user.ID})
	_ = suite.createTestSale(june, models.Sale{SaleDate: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), SaleValue: decimal.NewFromInt(100)})

	december := suite.createTestCar(models.Car{UserID: user.ID})
	_ = suite.createTestSale(december, models.Sale{SaleDate: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), SaleValue: decimal.NewFromInt(200)})

	sales, err := models.FilteredSales(user.ID, models.ParseDateRange("2024-06-01", "2024-06-30"))
	suite.Require().NoError(err)
	suite.Require().Len(sales, 1)
	suite.Assert().Equal(june.ID, sales[0].CarID)

	// The end date is inclusive
	sales, err = models.FilteredSales(user.ID, models.ParseDateRange("2024-06-15", "2024-06-15"))
	suite.Require().NoError(err)
	suite.Assert().Len(sales, 1)

	// A nil range returns everything
	sales, err = models.FilteredSales(user.ID, nil)
	suite.Require().NoError(err)
	suite.Assert().Len(sales, 2)
}

func (suite *TestSuiteStandard) TestFilteredSalesLoadsCar() {
	user := suite.createTestUser(models.User{})
	car := suite.createTestCar(models.Car{UserID: user.ID, PurchaseValue: decimal.NewFromInt(50000)})
	_ = suite.createTestSale(car, models.Sale{SaleValue: decimal.NewFromInt(60000)})

	sales, err := models.FilteredSales(user.ID, nil)
	suite.Require().NoError(err)
	suite.Require().Len(sales, 1)

	suite.Assert().Equal(car.ChassisNumber, sales[0].Car.ChassisNumber)
	suite.Assert().True(sales[0].TotalProfit().Equal(decimal.NewFromInt(10000)))
}

func (suite *TestSuiteStandard) TestFilteredExpenses() {
	user := suite.createTestUser(models.User{})
	_ = suite.createTestExpense(models.MonthlyExpense{UserID: user.ID, Amount: decimal.NewFromInt(100), Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)})
	_ = suite.createTestExpense(models.MonthlyExpense{UserID: user.ID, Amount: decimal.NewFromInt(200), Date: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)})

	expenses, err := models.FilteredExpenses(user.ID, models.ParseDateRange("2024-06-01", "2024-06-30"))
	suite.Require().NoError(err)
	suite.Require().Len(expenses, 1)
	suite.Assert().True(expenses[0].Amount.Equal(decimal.NewFromInt(100)))

	expenses, err = models.FilteredExpenses(uuid.New(), nil)
	suite.Require().NoError(err)
	suite.Assert().Len(expenses, 0)
}
