package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cardealer/backend/internal/httputil"
	"github.com/cardealer/backend/internal/models"
)

// RegisterSaleRoutes registers the routes for sales.
func RegisterSaleRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsSaleList)
		r.GET("", GetSales)
	}

	// Exports on the collection
	{
		r.OPTIONS("/export/pdf", OptionsSaleExportPDF)
		r.GET("/export/pdf", ExportSalesPDF)

		r.OPTIONS("/export/xlsx", OptionsSaleExportXLSX)
		r.GET("/export/xlsx", ExportSalesXLSX)
	}

	// Sale with ID
	{
		r.OPTIONS("/:id", OptionsSaleDetail)
		r.GET("/:id", GetSale)
		r.PATCH("/:id", UpdateSale)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Sales
// @Success		204
// @Router			/v1/sales [options]
func OptionsSaleList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Sales
// @Success		204
// @Failure		400	{object}	httpError
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/sales/{id} [options]
func OptionsSaleDetail(c *gin.Context) {
	_, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	httputil.OptionsGetPatch(c)
}

// @Summary		List sales
// @Description	Returns the sales of the authenticated user, newest first
// @Tags			Sales
// @Produce		json
// @Success		200	{array}		SaleListItem
// @Failure		500	{object}	httpError
// @Param			start_date	query	string	false	"Start of the sale date range (YYYY-MM-DD)"
// @Param			end_date	query	string	false	"End of the sale date range (YYYY-MM-DD)"
// @Router			/v1/sales [get]
func GetSales(c *gin.Context) {
	dateRange := models.ParseDateRange(c.Query("start_date"), c.Query("end_date"))

	sales, err := models.FilteredSales(userID(c), dateRange)
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	data := make([]SaleListItem, 0, len(sales))
	for _, sale := range sales {
		data = append(data, newSaleListItem(sale))
	}

	c.JSON(http.StatusOK, data)
}

// @Summary		Get sale
// @Tags			Sales
// @Produce		json
// @Success		200	{object}	SaleResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/sales/{id} [get]
func GetSale(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	sale, err := getSale(c, id)
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	data := newSale(sale)
	c.JSON(http.StatusOK, SaleResponse{Data: &data})
}

// @Summary		Update sale
// @Description	Updates the set fields of a sale
// @Tags			Sales
// @Produce		json
// @Success		200	{object}	SaleResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id		path	string			true	"ID formatted as string"
// @Param			sale	body	SaleEditable	true	"Sale"
// @Router			/v1/sales/{id} [patch]
func UpdateSale(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	sale, err := getSale(c, id)
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, SaleEditable{})
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	var update SaleEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	err = models.DB.Model(&sale).Select("", updateFields...).Updates(update.model()).Error
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	data := newSale(sale)
	c.JSON(http.StatusOK, SaleResponse{Data: &data})
}

// getSale loads a sale by ID, scoped to the authenticated user via the
// sold car's owner. The car association is loaded.
func getSale(c *gin.Context, id uuid.UUID) (models.Sale, error) {
	var sale models.Sale

	err := models.DB.
		Preload("Car").
		Joins("JOIN cars ON cars.id = sales.car_id AND cars.deleted_at IS NULL").
		First(&sale, "sales.id = ? AND cars.user_id = ?", id, userID(c)).Error

	return sale, err
}
