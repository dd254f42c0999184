package ftracker

import (
	"errors"
)

var (
	// ErrUnknownWorkoutCode indicates a package code outside of SWM, RUN and WLK
	ErrUnknownWorkoutCode = errors.New("unknown workout code")
	// ErrInvalidPackage indicates a data list that does not fit the workout code
	ErrInvalidPackage = errors.New("invalid package")
	// ErrInvalidValue indicates a sensor value out of its domain
	ErrInvalidValue = errors.New("invalid value")
)
