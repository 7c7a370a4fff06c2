package models

import "errors"

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrChassisNumberExists = errors.New("a car with this chassis number is already registered")
	ErrCarAlreadySold      = errors.New("a sale is already recorded for this car")
	ErrUsernameExists      = errors.New("this username is already taken")
)
