package controllers_test

import (
	"net/http"
	"time"

	"github.com/cardealer/backend/internal/controllers"
	"github.com/cardealer/backend/internal/models"
	"github.com/cardealer/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestGetDashboard() {
	user, headers := suite.signUp()

	car := suite.createTestCar(user, models.Car{ChassisNumber: "VIN-1"})
	_ = suite.createTestSale(car, models.Sale{SaleValue: decimal.NewFromInt(100), PartialProfit: decimal.NewFromInt(1000)})
	_ = suite.createTestCar(user, models.Car{ChassisNumber: "VIN-2"})
	_ = suite.createTestExpense(user, models.MonthlyExpense{Amount: decimal.NewFromInt(300)})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/dashboard", nil, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.DashboardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().True(response.Data.TotalPartialProfit.Equal(decimal.NewFromInt(1000)))
	suite.Assert().True(response.Data.TotalExpenses.Equal(decimal.NewFromInt(300)))
	suite.Assert().True(response.Data.NetProfit.Equal(decimal.NewFromInt(700)))
	suite.Assert().Equal(int64(2), response.Data.TotalCars)
	suite.Assert().Equal(int64(1), response.Data.SoldCars)
	suite.Assert().Equal(int64(1), response.Data.AvailableCars)
}

func (suite *TestSuiteStandard) TestGetDashboardDateRange() {
	user, headers := suite.signUp()

	car := suite.createTestCar(user, models.Car{ChassisNumber: "VIN-1"})
	_ = suite.createTestSale(car, models.Sale{
		SaleDate:      time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		SaleValue:     decimal.NewFromInt(100),
		PartialProfit: decimal.NewFromInt(1000),
	})

	other := suite.createTestCar(user, models.Car{ChassisNumber: "VIN-2"})
	_ = suite.createTestSale(other, models.Sale{
		SaleDate:      time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
		SaleValue:     decimal.NewFromInt(100),
		PartialProfit: decimal.NewFromInt(500),
	})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/dashboard?start_date=2024-06-01&end_date=2024-06-30", nil, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.DashboardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().True(response.Data.TotalPartialProfit.Equal(decimal.NewFromInt(1000)), "partial profit is %s", response.Data.TotalPartialProfit)

	// Car counts are not filtered by the range
	suite.Assert().Equal(int64(2), response.Data.TotalCars)
}

// Without records every total is zero, never null.
func (suite *TestSuiteStandard) TestGetDashboardEmpty() {
	_, headers := suite.signUp()

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/dashboard", nil, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.DashboardResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().True(response.Data.TotalPartialProfit.Equal(decimal.Zero))
	suite.Assert().True(response.Data.TotalExpenses.Equal(decimal.Zero))
	suite.Assert().True(response.Data.NetProfit.Equal(decimal.Zero))
	suite.Assert().Contains(recorder.Body.String(), `"totalExpenses":"0"`)
}
