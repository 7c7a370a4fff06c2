package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cardealer/backend/internal/httputil"
	"github.com/cardealer/backend/internal/models"
)

// RegisterDashboardRoutes registers the routes for the dashboard.
func RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsDashboard)
	r.GET("", GetDashboard)
}

type DashboardResponse struct {
	Data  *models.Dashboard `json:"data"`
	Error *string           `json:"error"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Router			/v1/dashboard [options]
func OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get dashboard
// @Description	Returns profit and expense totals and car counts for the authenticated user
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	DashboardResponse
// @Failure		500	{object}	httpError
// @Param			start_date	query	string	false	"Start of the date range (YYYY-MM-DD)"
// @Param			end_date	query	string	false	"End of the date range (YYYY-MM-DD)"
// @Router			/v1/dashboard [get]
func GetDashboard(c *gin.Context) {
	dateRange := models.ParseDateRange(c.Query("start_date"), c.Query("end_date"))

	dashboard, err := models.DashboardTotals(userID(c), dateRange)
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	c.JSON(http.StatusOK, DashboardResponse{Data: &dashboard})
}
