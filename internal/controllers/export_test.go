package controllers_test

import (
	"bytes"
	"net/http"
	"time"

	"github.com/cardealer/backend/internal/models"
	"github.com/cardealer/backend/test"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

func (suite *TestSuiteStandard) TestExportCarsPDF() {
	user, headers := suite.signUp()
	_ = suite.createTestCar(user, models.Car{ChassisNumber: "VIN-1", PurchaseValue: decimal.NewFromInt(100)})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/cars/export/pdf", nil, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	suite.Assert().Equal("application/pdf", recorder.Header().Get("Content-Type"))
	suite.Assert().Equal(`attachment; filename="cars_list.pdf"`, recorder.Header().Get("Content-Disposition"))
	suite.Assert().True(bytes.HasPrefix(recorder.Body.Bytes(), []byte("%PDF")))
}

// The car export honors the same filters as the list.
func (suite *TestSuiteStandard) TestExportCarsPDFFiltered() {
	user, headers := suite.signUp()
	_ = suite.createTestCar(user, models.Car{ChassisNumber: "VIN2020XYZ"})
	_ = suite.createTestCar(user, models.Car{ChassisNumber: "OTHER"})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/cars/export/pdf?search=2020", nil, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().True(bytes.HasPrefix(recorder.Body.Bytes(), []byte("%PDF")))
}

func (suite *TestSuiteStandard) TestExportSalesPDF() {
	user, headers := suite.signUp()
	car := suite.createTestCar(user, models.Car{ChassisNumber: "VIN-1"})
	_ = suite.createTestSale(car, models.Sale{SaleValue: decimal.NewFromInt(100)})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/sales/export/pdf", nil, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	suite.Assert().Equal("application/pdf", recorder.Header().Get("Content-Type"))
	suite.Assert().Equal(`attachment; filename="sales_list.pdf"`, recorder.Header().Get("Content-Disposition"))
	suite.Assert().True(bytes.HasPrefix(recorder.Body.Bytes(), []byte("%PDF")))
}

func (suite *TestSuiteStandard) TestExportSalesXLSX() {
	user, headers := suite.signUp()

	june := suite.createTestCar(user, models.Car{ChassisNumber: "VIN-JUNE"})
	_ = suite.createTestSale(june, models.Sale{SaleDate: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), SaleValue: decimal.NewFromInt(100)})

	december := suite.createTestCar(user, models.Car{ChassisNumber: "VIN-DEC"})
	_ = suite.createTestSale(december, models.Sale{SaleDate: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), SaleValue: decimal.NewFromInt(200)})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/sales/export/xlsx?start_date=2024-06-01&end_date=2024-06-30", nil, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	suite.Assert().Equal("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", recorder.Header().Get("Content-Type"))
	suite.Assert().Equal(`attachment; filename="sales_list.xlsx"`, recorder.Header().Get("Content-Disposition"))

	// The workbook only contains the sales in range
	f, err := excelize.OpenReader(recorder.Body)
	suite.Require().NoError(err)
	defer f.Close()

	rows, err := f.GetRows("المبيعات")
	suite.Require().NoError(err)
	suite.Require().Len(rows, 2)
	suite.Assert().Equal("VIN-JUNE", rows[1][3])
}
