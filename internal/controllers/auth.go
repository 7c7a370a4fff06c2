package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cardealer/backend/internal/httputil"
	"github.com/cardealer/backend/internal/models"
)

// RegisterAuthRoutes registers the routes for authentication.
func RegisterAuthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/register", OptionsRegister)
	r.POST("/register", Register)

	r.OPTIONS("/login", OptionsLogin)
	r.POST("/login", Login)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/v1/auth/register [options]
func OptionsRegister(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/v1/auth/login [options]
func OptionsLogin(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Register user
// @Description	Creates a new user account
// @Tags			Auth
// @Produce		json
// @Success		201	{object}	UserResponse
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			credentials	body	Credentials	true	"Credentials"
// @Router			/v1/auth/register [post]
func Register(c *gin.Context) {
	var credentials Credentials
	err := httputil.BindData(c, &credentials)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	if credentials.Username == "" || credentials.Password == "" {
		c.JSON(http.StatusBadRequest, httpError{errCredentialsEmpty.Error()})
		return
	}

	user := models.User{Username: credentials.Username}
	err = user.SetPassword(credentials.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{err.Error()})
		return
	}

	err = models.DB.Create(&user).Error
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	c.JSON(http.StatusCreated, UserResponse{Data: &user})
}

// @Summary		Log in
// @Description	Verifies the credentials and returns a token for the Authorization header
// @Tags			Auth
// @Produce		json
// @Success		200	{object}	LoginResponse
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			credentials	body	Credentials	true	"Credentials"
// @Router			/v1/auth/login [post]
func Login(c *gin.Context) {
	var credentials Credentials
	err := httputil.BindData(c, &credentials)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	var user models.User
	err = models.DB.First(&user, "username = ?", credentials.Username).Error

	// Check the password even when the user does not exist so that the
	// response does not reveal which usernames are taken
	if err != nil || !user.CheckPassword(credentials.Password) {
		c.JSON(http.StatusUnauthorized, httpError{errInvalidCredentials.Error()})
		return
	}

	session := models.Session{UserID: user.ID}
	err = models.DB.Create(&session).Error
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Data: &LoginData{Token: session.Token, User: user}})
}
