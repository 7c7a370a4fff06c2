package controllers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cardealer/backend/internal/export"
	"github.com/cardealer/backend/internal/httputil"
	"github.com/cardealer/backend/internal/models"
)

const (
	contentTypePDF  = "application/pdf"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Cars
// @Success		204
// @Router			/v1/cars/export/pdf [options]
func OptionsCarExportPDF(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Sales
// @Success		204
// @Router			/v1/sales/export/pdf [options]
func OptionsSaleExportPDF(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Sales
// @Success		204
// @Router			/v1/sales/export/xlsx [options]
func OptionsSaleExportXLSX(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export cars as PDF
// @Description	Renders the filtered car list as a PDF document
// @Tags			Cars
// @Produce		application/pdf
// @Success		200
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			search		query	string	false	"Search in car type and chassis number"
// @Param			status		query	string	false	"Filter by status"
// @Param			clearance	query	string	false	"Filter by clearance type"
// @Param			month		query	string	false	"Filter by purchase month"
// @Param			year		query	string	false	"Filter by purchase year"
// @Router			/v1/cars/export/pdf [get]
func ExportCarsPDF(c *gin.Context) {
	var filter models.CarFilter
	if err := c.Bind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	cars, err := models.FilteredCars(userID(c), filter)
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCarsPDF(&buf, cars); err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	attachment(c, "cars_list.pdf")
	c.Data(http.StatusOK, contentTypePDF, buf.Bytes())
}

// @Summary		Export sales as PDF
// @Description	Renders the sales list with car details as a PDF document
// @Tags			Sales
// @Produce		application/pdf
// @Success		200
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			start_date	query	string	false	"Start of the sale date range (YYYY-MM-DD)"
// @Param			end_date	query	string	false	"End of the sale date range (YYYY-MM-DD)"
// @Router			/v1/sales/export/pdf [get]
func ExportSalesPDF(c *gin.Context) {
	sales, err := exportSales(c)
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := export.WriteSalesPDF(&buf, sales); err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	attachment(c, "sales_list.pdf")
	c.Data(http.StatusOK, contentTypePDF, buf.Bytes())
}

// @Summary		Export sales as XLSX
// @Description	Renders the sales list with car details as a spreadsheet
// @Tags			Sales
// @Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success		200
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			start_date	query	string	false	"Start of the sale date range (YYYY-MM-DD)"
// @Param			end_date	query	string	false	"End of the sale date range (YYYY-MM-DD)"
// @Router			/v1/sales/export/xlsx [get]
func ExportSalesXLSX(c *gin.Context) {
	sales, err := exportSales(c)
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := export.WriteSalesXLSX(&buf, sales); err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	attachment(c, "sales_list.xlsx")
	c.Data(http.StatusOK, contentTypeXLSX, buf.Bytes())
}

// exportSales loads the sales for an export with the same date range
// handling as the sales list.
func exportSales(c *gin.Context) ([]models.Sale, error) {
	dateRange := models.ParseDateRange(c.Query("start_date"), c.Query("end_date"))
	return models.FilteredSales(userID(c), dateRange)
}

func attachment(c *gin.Context, filename string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
}
