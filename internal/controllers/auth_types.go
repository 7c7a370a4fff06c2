package controllers

import (
	"errors"

	"github.com/cardealer/backend/internal/models"
)

var errCredentialsEmpty = errors.New("username and password must be set")

// Credentials is the request body for registration and login.
type Credentials struct {
	Username string `json:"username" example:"aisha"`
	Password string `json:"password" example:"correct horse battery staple"`
}

type UserResponse struct {
	Data  *models.User `json:"data"`
	Error *string      `json:"error"`
}

// LoginData is the payload of a successful login.
type LoginData struct {
	Token string      `json:"token" example:"9dba8dc6-1a40-4dbc-879e-0e433a6b0b91"`
	User  models.User `json:"user"`
}

type LoginResponse struct {
	Data  *LoginData `json:"data"`
	Error *string    `json:"error"`
}
