package controllers

import (
	"errors"
	"net/http"

	"github.com/cardealer/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no car matching your query"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var errInvalidUUID = errors.New("the specified resource ID is not a valid UUID")

// Auth errors
var errInvalidCredentials = errors.New("the username or password is incorrect")

// Car errors
var (
	errCarTypeInvalid       = errors.New("the specified car type is invalid")
	errClearanceTypeInvalid = errors.New("the specified clearance type is invalid")
	errChassisNumberEmpty   = errors.New("the chassis number must be set")
)
