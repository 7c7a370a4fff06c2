package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cardealer/backend/internal/httputil"
	"github.com/cardealer/backend/internal/models"
)

// RegisterExpenseRoutes registers the routes for monthly expenses.
func RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsExpenseList)
		r.GET("", GetExpenses)
		r.POST("", CreateExpense)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", OptionsExpenseDetail)
		r.DELETE("/:id", DeleteExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses [options]
func OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/expenses/{id} [options]
func OptionsExpenseDetail(c *gin.Context) {
	_, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	httputil.OptionsDelete(c)
}

// @Summary		List expenses
// @Description	Returns the expenses of the authenticated user with their total, latest first
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	MonthlyExpenseListResponse
// @Failure		500	{object}	httpError
// @Router			/v1/expenses [get]
func GetExpenses(c *gin.Context) {
	expenses, err := models.FilteredExpenses(userID(c), nil)
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	c.JSON(http.StatusOK, MonthlyExpenseListResponse{
		Data:  expenses,
		Total: models.SumExpenseAmounts(expenses),
	})
}

// @Summary		Create expense
// @Tags			Expenses
// @Produce		json
// @Success		201	{object}	MonthlyExpenseResponse
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			expense	body	MonthlyExpenseEditable	true	"Expense"
// @Router			/v1/expenses [post]
func CreateExpense(c *gin.Context) {
	var editable MonthlyExpenseEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	if strings.TrimSpace(editable.Description) == "" {
		c.JSON(http.StatusBadRequest, httpError{errDescriptionEmpty.Error()})
		return
	}

	expense := editable.model()
	expense.UserID = userID(c)

	err = models.DB.Create(&expense).Error
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	c.JSON(http.StatusCreated, MonthlyExpenseResponse{Data: &expense})
}

// @Summary		Delete expense
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/expenses/{id} [delete]
func DeleteExpense(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	var expense models.MonthlyExpense
	err = models.DB.First(&expense, "id = ? AND user_id = ?", id, userID(c)).Error
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	err = models.DB.Delete(&expense).Error
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
