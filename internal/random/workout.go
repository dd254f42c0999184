package random

import (
	"github.com/Yandex-Practicum/go-ftracker/internal/ftracker"
)

// Ranges of generated sensor values
const (
	minAction, maxAction         = 1000, 10000
	maxDuration                  = 3 // hours
	minWeight, maxWeight         = 80, 140
	minHeight, maxHeight         = 150, 220
	minPoolLength, maxPoolLength = 10, 50
	minPoolCount, maxPoolCount   = 1, 10
)

// Action returns random steps or strokes count
func Action() int {
	return rnd.Intn(maxAction-minAction) + minAction
}

// Duration returns random positive duration in hours
func Duration() float64 {
	d := float64(rnd.Intn(maxDuration)) + rnd.Float64()
	if d == 0 {
		return 1
	}
	return d
}

// Weight returns random weight in kilograms
func Weight() float64 {
	return float64(rnd.Intn(maxWeight-minWeight) + minWeight)
}

// Height returns random height in centimeters
func Height() float64 {
	return float64(rnd.Intn(maxHeight-minHeight) + minHeight)
}

// PoolLength returns random pool length in meters
func PoolLength() float64 {
	return float64(rnd.Intn(maxPoolLength-minPoolLength) + minPoolLength)
}

// PoolCount returns random count of swum pool lengths
func PoolCount() float64 {
	return float64(rnd.Intn(maxPoolCount-minPoolCount) + minPoolCount)
}

// Code returns one of the known workout codes
func Code() ftracker.Code {
	return ftracker.Codes[rnd.Intn(len(ftracker.Codes))]
}

// UnknownCode returns random workout code which is not known to the tracker
func UnknownCode() ftracker.Code {
	for {
		code := ftracker.Code(ASCIIString(3, 15))
		if !isKnown(code) {
			return code
		}
	}
}

// Package returns random sensor package for given workout code.
// Unknown codes get the running data layout.
func Package(code ftracker.Code) ftracker.Package {
	data := []float64{float64(Action()), Duration(), Weight()}
	switch code {
	case ftracker.CodeWalking:
		data = append(data, Height())
	case ftracker.CodeSwimming:
		data = append(data, PoolLength(), PoolCount())
	}
	return ftracker.Package{Code: code, Data: data}
}

// AnyPackage returns random sensor package of random known workout code
func AnyPackage() ftracker.Package {
	return Package(Code())
}

func isKnown(code ftracker.Code) bool {
	for _, c := range ftracker.Codes {
		if c == code {
			return true
		}
	}
	return false
}
