package controllers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/cardealer/backend/internal/controllers"
	"github.com/cardealer/backend/internal/models"
	"github.com/cardealer/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCreateCar() {
	_, headers := suite.signUp()

	editable := controllers.CarEditable{
		Name:          "Toyota Camry",
		CarType:       models.CarTypeSedan,
		Year:          2020,
		ChassisNumber: "VIN2020XYZ",
		PurchaseDate:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		PurchaseValue: decimal.RequireFromString("14500.50"),
		ClearanceType: models.ClearancePurchase,
	}

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/cars", editable, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response controllers.CarResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal("VIN2020XYZ", response.Data.ChassisNumber)
	suite.Assert().Equal(models.CarStatusAvailable, response.Data.Status)
}

func (suite *TestSuiteStandard) TestCreateCarInvalid() {
	_, headers := suite.signUp()

	tests := []struct {
		name string
		body any
	}{
		{"empty body", ""},
		{"missing chassis number", controllers.CarEditable{CarType: models.CarTypeSedan}},
		{"whitespace chassis number", controllers.CarEditable{ChassisNumber: "   "}},
		{"unknown car type", controllers.CarEditable{ChassisNumber: "VIN-1", CarType: "rocket"}},
		{"unknown clearance type", controllers.CarEditable{ChassisNumber: "VIN-1", ClearanceType: "gift"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "/v1/cars", tt.body, headers)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestCreateCarDuplicateChassisNumber() {
	_, headers := suite.signUp()

	editable := controllers.CarEditable{ChassisNumber: "VIN-1"}

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/cars", editable, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	recorder = test.Request(suite.T(), http.MethodPost, "/v1/cars", editable, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	suite.Assert().Contains(recorder.Body.String(), "chassis number")
}

// The list endpoint reports display labels and plain numbers.
func (suite *TestSuiteStandard) TestGetCarsListShape() {
	user, headers := suite.signUp()

	_ = suite.createTestCar(user, models.Car{
		CarType:       models.CarTypeSedan,
		Year:          2020,
		ChassisNumber: "VIN2020XYZ",
		PurchaseDate:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		PurchaseValue: decimal.RequireFromString("14500.50"),
	})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/cars", nil, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var items []controllers.CarListItem
	test.DecodeResponse(suite.T(), &recorder, &items)

	suite.Require().Len(items, 1)
	suite.Assert().Equal("سيارة سيدان", items[0].CarType)
	suite.Assert().Equal("غير مباع", items[0].Status)
	suite.Assert().Equal("2024-03-01", items[0].PurchaseDate)
	suite.Assert().InDelta(14500.50, items[0].PurchaseValue, 0.001)
}

func (suite *TestSuiteStandard) TestGetCarsFilters() {
	user, headers := suite.signUp()

	_ = suite.createTestCar(user, models.Car{CarType: models.CarTypeSedan, ChassisNumber: "VIN2020XYZ"})
	_ = suite.createTestCar(user, models.Car{CarType: models.CarTypeTruck, ChassisNumber: "OTHER"})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/cars?search=2020", nil, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var items []controllers.CarListItem
	test.DecodeResponse(suite.T(), &recorder, &items)
	suite.Require().Len(items, 1)
	suite.Assert().Equal("VIN2020XYZ", items[0].ChassisNumber)

	// Unparseable month/year values are ignored
	recorder = test.Request(suite.T(), http.MethodGet, "/v1/cars?month=abc&year=20x4", nil, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	test.DecodeResponse(suite.T(), &recorder, &items)
	suite.Assert().Len(items, 2)
}

func (suite *TestSuiteStandard) TestGetCarsEmptyList() {
	_, headers := suite.signUp()

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/cars", nil, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	suite.Assert().JSONEq(`[]`, recorder.Body.String())
}

func (suite *TestSuiteStandard) TestGetCar() {
	user, headers := suite.signUp()
	car := suite.createTestCar(user, models.Car{ChassisNumber: "VIN-1"})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/cars/%s", car.ID), nil, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.CarResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(car.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestGetCarInvalidID() {
	_, headers := suite.signUp()

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/cars/not-a-uuid", nil, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

// Records of other users are indistinguishable from missing ones.
func (suite *TestSuiteStandard) TestGetCarOfOtherUser() {
	user, _ := suite.signUp()
	car := suite.createTestCar(user, models.Car{ChassisNumber: "VIN-1"})

	_, otherHeaders := suite.signUp()

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/cars/%s", car.ID), nil, otherHeaders)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestUpdateCar() {
	user, headers := suite.signUp()
	car := suite.createTestCar(user, models.Car{Name: "Old Name", ChassisNumber: "VIN-1"})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/cars/%s", car.ID), map[string]any{
		"name": "New Name",
	}, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var reloaded models.Car
	suite.Require().NoError(models.DB.First(&reloaded, "id = ?", car.ID).Error)
	suite.Assert().Equal("New Name", reloaded.Name)
	suite.Assert().Equal("VIN-1", reloaded.ChassisNumber, "fields not in the body must not change")
}

func (suite *TestSuiteStandard) TestUpdateCarInvalidType() {
	user, headers := suite.signUp()
	car := suite.createTestCar(user, models.Car{ChassisNumber: "VIN-1"})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/cars/%s", car.ID), map[string]any{
		"carType": "rocket",
	}, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestDeleteCar() {
	user, headers := suite.signUp()
	car := suite.createTestCar(user, models.Car{ChassisNumber: "VIN-1"})
	_ = suite.createTestSale(car, models.Sale{SaleValue: decimal.NewFromInt(100)})

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/cars/%s", car.ID), nil, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/cars/%s", car.ID), nil, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	// The sale is deleted together with the car
	recorder = test.Request(suite.T(), http.MethodGet, "/v1/sales", nil, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().JSONEq(`[]`, recorder.Body.String())
}

func (suite *TestSuiteStandard) TestDeleteCarOfOtherUser() {
	user, _ := suite.signUp()
	car := suite.createTestCar(user, models.Car{ChassisNumber: "VIN-1"})

	_, otherHeaders := suite.signUp()

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/cars/%s", car.ID), nil, otherHeaders)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestOptionsCar() {
	_, headers := suite.signUp()

	recorder := test.Request(suite.T(), http.MethodOptions, "/v1/cars", nil, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("GET, POST", recorder.Header().Get("allow"))
}
