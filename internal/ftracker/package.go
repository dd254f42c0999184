package ftracker

import (
	"fmt"
	"math"
)

// Code is a workout code as sent by the sensor block.
type Code string

const (
	CodeSwimming Code = "SWM"
	CodeRunning  Code = "RUN"
	CodeWalking  Code = "WLK"
)

// Codes lists every known workout code.
var Codes = []Code{CodeSwimming, CodeRunning, CodeWalking}

// Package is a raw sensor package: a workout code followed by
// positional values in the order the workout constructor expects.
type Package struct {
	Code Code
	Data []float64
}

// ReadPackage builds a training from a sensor package.
//
// Expected data per code:
//
//	RUN: action, duration, weight
//	WLK: action, duration, weight, height
//	SWM: action, duration, weight, pool length, pool count
func ReadPackage(code Code, data []float64) (Training, error) {
	var want int
	switch code {
	case CodeRunning:
		want = 3
	case CodeWalking:
		want = 4
	case CodeSwimming:
		want = 5
	default:
		return Training{}, fmt.Errorf("%w: %q", ErrUnknownWorkoutCode, string(code))
	}

	if len(data) != want {
		return Training{}, fmt.Errorf("%w: %s expects %d values, got %d", ErrInvalidPackage, code, want, len(data))
	}

	action, err := actionCount(data[0])
	if err != nil {
		return Training{}, err
	}

	switch code {
	case CodeRunning:
		return NewRunning(action, data[1], data[2])
	case CodeWalking:
		return NewWalking(action, data[1], data[2], data[3])
	default:
		return NewSwimming(action, data[1], data[2], data[3], data[4])
	}
}

// actionCount converts a raw value to a whole number of steps or strokes.
func actionCount(v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, fmt.Errorf("%w: action must be a whole number, got %v", ErrInvalidValue, v)
	}
	if v < 0 || v > math.MaxInt32 {
		return 0, fmt.Errorf("%w: action out of range, got %v", ErrInvalidValue, v)
	}
	return int(v), nil
}
