package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cardealer/backend/internal/httputil"
	"github.com/cardealer/backend/internal/models"
)

// RegisterCarRoutes registers the routes for cars.
func RegisterCarRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCarList)
		r.GET("", GetCars)
		r.POST("", CreateCar)
	}

	// Exports on the collection
	{
		r.OPTIONS("/export/pdf", OptionsCarExportPDF)
		r.GET("/export/pdf", ExportCarsPDF)
	}

	// Car with ID
	{
		r.OPTIONS("/:id", OptionsCarDetail)
		r.GET("/:id", GetCar)
		r.PATCH("/:id", UpdateCar)
		r.DELETE("/:id", DeleteCar)

		r.OPTIONS("/:id/sale", OptionsCarSale)
		r.POST("/:id/sale", CreateSale)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Cars
// @Success		204
// @Router			/v1/cars [options]
func OptionsCarList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Cars
// @Success		204
// @Failure		400	{object}	httpError
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/cars/{id} [options]
func OptionsCarDetail(c *gin.Context) {
	_, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Sales
// @Success		204
// @Failure		400	{object}	httpError
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/cars/{id}/sale [options]
func OptionsCarSale(c *gin.Context) {
	_, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		List cars
// @Description	Returns the cars of the authenticated user, newest first
// @Tags			Cars
// @Produce		json
// @Success		200	{array}		CarListItem
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			search		query	string	false	"Search in car type and chassis number"
// @Param			status		query	string	false	"Filter by status"
// @Param			clearance	query	string	false	"Filter by clearance type"
// @Param			month		query	string	false	"Filter by purchase month"
// @Param			year		query	string	false	"Filter by purchase year"
// @Router			/v1/cars [get]
func GetCars(c *gin.Context) {
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

	data := make([]CarListItem, 0, len(cars))
	for _, car := range cars {
		data = append(data, newCarListItem(car))
	}

	c.JSON(http.StatusOK, data)
}

// @Summary		Create car
// @Description	Creates a new car for the authenticated user
// @Tags			Cars
// @Produce		json
// @Success		201	{object}	CarResponse
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			car	body	CarEditable	true	"Car"
// @Router			/v1/cars [post]
func CreateCar(c *gin.Context) {
	var editable CarEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	if strings.TrimSpace(editable.ChassisNumber) == "" {
		c.JSON(http.StatusBadRequest, httpError{errChassisNumberEmpty.Error()})
		return
	}

	if err := editable.validate(); err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	car := editable.model()
	car.UserID = userID(c)

	err = models.DB.Create(&car).Error
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	data := newCar(car)
	c.JSON(http.StatusCreated, CarResponse{Data: &data})
}

// @Summary		Get car
// @Tags			Cars
// @Produce		json
// @Success		200	{object}	CarResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/cars/{id} [get]
func GetCar(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	var car models.Car
	err = models.DB.Preload("Sale").First(&car, "id = ? AND user_id = ?", id, userID(c)).Error
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	data := newCar(car)
	c.JSON(http.StatusOK, CarResponse{Data: &data})
}

// @Summary		Update car
// @Description	Updates the set fields of a car
// @Tags			Cars
// @Produce		json
// @Success		200	{object}	CarResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path	string		true	"ID formatted as string"
// @Param			car	body	CarEditable	true	"Car"
// @Router			/v1/cars/{id} [patch]
func UpdateCar(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	var car models.Car
	err = models.DB.First(&car, "id = ? AND user_id = ?", id, userID(c)).Error
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, CarEditable{})
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	var update CarEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	if err := update.validate(); err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	err = models.DB.Model(&car).Select("", updateFields...).Updates(update.model()).Error
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	data := newCar(car)
	c.JSON(http.StatusOK, CarResponse{Data: &data})
}

// @Summary		Delete car
// @Description	Deletes the car and its sale record
// @Tags			Cars
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/cars/{id} [delete]
func DeleteCar(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	var car models.Car
	err = models.DB.First(&car, "id = ? AND user_id = ?", id, userID(c)).Error
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	err = models.DeleteCar(car)
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Sell car
// @Description	Records the sale of a car and marks it as sold
// @Tags			Sales
// @Produce		json
// @Success		201	{object}	SaleResponse
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id		path	string			true	"ID formatted as string"
// @Param			sale	body	SaleEditable	true	"Sale"
// @Router			/v1/cars/{id}/sale [post]
func CreateSale(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	var car models.Car
	err = models.DB.First(&car, "id = ? AND user_id = ?", id, userID(c)).Error
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	var editable SaleEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	sale := editable.model()
	err = models.AddSale(car, &sale)
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	// Load the association so that the response can report the profit
	sale.Car = car
	sale.Car.Status = models.CarStatusSold

	data := newSale(sale)
	c.JSON(http.StatusCreated, SaleResponse{Data: &data})
}
