package controllers_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/cardealer/backend/internal/controllers"
	"github.com/cardealer/backend/internal/models"
	"github.com/cardealer/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCreateSale() {
	user, headers := suite.signUp()
	car := suite.createTestCar(user, models.Car{ChassisNumber: "VIN-1", PurchaseValue: decimal.NewFromInt(50000)})

	editable := controllers.SaleEditable{
		SaleDate:      time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		SaleValue:     decimal.NewFromInt(60000),
		PartialProfit: decimal.NewFromInt(8000),
	}

	recorder := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("/v1/cars/%s/sale", car.ID), editable, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response controllers.SaleResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal(car.ID, response.Data.CarID)
	suite.Assert().True(response.Data.TotalProfit.Equal(decimal.NewFromInt(10000)), "total profit is %s", response.Data.TotalProfit)

	// The car is now sold
	var reloaded models.Car
	suite.Require().NoError(models.DB.First(&reloaded, "id = ?", car.ID).Error)
	suite.Assert().Equal(models.CarStatusSold, reloaded.Status)
}

func (suite *TestSuiteStandard) TestCreateSaleTwice() {
	user, headers := suite.signUp()
	car := suite.createTestCar(user, models.Car{ChassisNumber: "VIN-1"})

	editable := controllers.SaleEditable{SaleValue: decimal.NewFromInt(100)}

	recorder := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("/v1/cars/%s/sale", car.ID), editable, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	recorder = test.Request(suite.T(), http.MethodPost, fmt.Sprintf("/v1/cars/%s/sale", car.ID), editable, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	suite.Assert().Contains(recorder.Body.String(), "already")
}

func (suite *TestSuiteStandard) TestCreateSaleForCarOfOtherUser() {
	user, _ := suite.signUp()
	car := suite.createTestCar(user, models.Car{ChassisNumber: "VIN-1"})

	_, otherHeaders := suite.signUp()

	recorder := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("/v1/cars/%s/sale", car.ID), controllers.SaleEditable{}, otherHeaders)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

// The list endpoint reports car details and computed profit.
func (suite *TestSuiteStandard) TestGetSalesListShape() {
	user, headers := suite.signUp()
	car := suite.createTestCar(user, models.Car{
		CarType:       models.CarTypeSedan,
		ChassisNumber: "VIN-1",
		PurchaseValue: decimal.RequireFromString("14500.50"),
	})
	_ = suite.createTestSale(car, models.Sale{
		SaleDate:      time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		SaleValue:     decimal.NewFromInt(18000),
		PartialProfit: decimal.NewFromInt(1200),
	})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/sales", nil, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var items []controllers.SaleListItem
	test.DecodeResponse(suite.T(), &recorder, &items)

	suite.Require().Len(items, 1)
	suite.Assert().Equal("سيارة سيدان", items[0].Car)
	suite.Assert().Equal("VIN-1", items[0].ChassisNumber)
	suite.Assert().Equal("2024-06-15", items[0].SaleDate)
	suite.Assert().InDelta(18000, items[0].SaleValue, 0.001)
	suite.Assert().InDelta(3499.50, items[0].TotalProfit, 0.001)
	suite.Assert().InDelta(1200, items[0].PartialProfit, 0.001)
}

func (suite *TestSuiteStandard) TestGetSalesDateRange() {
	user, headers := suite.signUp()

	june := suite.createTestCar(user, models.Car{ChassisNumber: "VIN-JUNE"})
	_ = suite.createTestSale(june, models.Sale{SaleDate: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), SaleValue: decimal.NewFromInt(100)})

	december := suite.createTestCar(user, models.Car{ChassisNumber: "VIN-DEC"})
	_ = suite.createTestSale(december, models.Sale{SaleDate: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), SaleValue: decimal.NewFromInt(200)})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/sales?start_date=2024-06-01&end_date=2024-06-30", nil, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var items []controllers.SaleListItem
	test.DecodeResponse(suite.T(), &recorder, &items)
	suite.Require().Len(items, 1)
	suite.Assert().Equal("VIN-JUNE", items[0].ChassisNumber)

	// An unparseable range is ignored
	recorder = test.Request(suite.T(), http.MethodGet, "/v1/sales?start_date=bad&end_date=2024-06-30", nil, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	test.DecodeResponse(suite.T(), &recorder, &items)
	suite.Assert().Len(items, 2)
}

func (suite *TestSuiteStandard) TestGetSale() {
	user, headers := suite.signUp()
	car := suite.createTestCar(user, models.Car{ChassisNumber: "VIN-1", PurchaseValue: decimal.NewFromInt(100)})
	sale := suite.createTestSale(car, models.Sale{SaleValue: decimal.NewFromInt(150)})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/sales/%s", sale.ID), nil, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.SaleResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(sale.ID, response.Data.ID)
	suite.Assert().True(response.Data.TotalProfit.Equal(decimal.NewFromInt(50)))
}

func (suite *TestSuiteStandard) TestGetSaleOfOtherUser() {
	user, _ := suite.signUp()
	car := suite.createTestCar(user, models.Car{ChassisNumber: "VIN-1"})
	sale := suite.createTestSale(car, models.Sale{SaleValue: decimal.NewFromInt(100)})

	_, otherHeaders := suite.signUp()

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/sales/%s", sale.ID), nil, otherHeaders)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestUpdateSale() {
	user, headers := suite.signUp()
	car := suite.createTestCar(user, models.Car{ChassisNumber: "VIN-1"})
	sale := suite.createTestSale(car, models.Sale{SaleValue: decimal.NewFromInt(100), PartialProfit: decimal.NewFromInt(10)})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/sales/%s", sale.ID), map[string]any{
		"partialProfit": 25,
	}, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var reloaded models.Sale
	suite.Require().NoError(models.DB.First(&reloaded, "id = ?", sale.ID).Error)
	suite.Assert().True(reloaded.PartialProfit.Equal(decimal.NewFromInt(25)), "partial profit is %s", reloaded.PartialProfit)
	suite.Assert().True(reloaded.SaleValue.Equal(decimal.NewFromInt(100)), "fields not in the body must not change")
}

// Sales have no delete endpoint, they disappear with their car.
func (suite *TestSuiteStandard) TestDeleteSaleNotAllowed() {
	user, headers := suite.signUp()
	car := suite.createTestCar(user, models.Car{ChassisNumber: "VIN-1"})
	sale := suite.createTestSale(car, models.Sale{SaleValue: decimal.NewFromInt(100)})

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/sales/%s", sale.ID), nil, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusMethodNotAllowed)
}
