package ftracker

import (
	"fmt"
	"math"
)

// Kind is one of the closed set of workout kinds.
type Kind int

const (
	KindRunning Kind = iota + 1
	KindWalking
	KindSwimming
)

// String returns the training type label used in summaries.
func (k Kind) String() string {
	switch k {
	case KindRunning:
		return "Running"
	case KindWalking:
		return "SportsWalking"
	case KindSwimming:
		return "Swimming"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

const (
	lenStep         = 0.65 // meters per step
	swimmingLenStep = 1.38 // meters per stroke
	mInKm           = 1000
	minInH          = 60

	kmhInMsec = 0.06 // approximates 1000/3600 and must stay as is
	cmInM     = 0.01

	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 1.79

	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029

	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

// Training is a single workout built from a sensor package.
// The zero value is not a valid training.
type Training struct {
	kind     Kind
	action   int
	duration float64
	weight   float64

	// walking
	height float64

	// swimming
	lengthPool float64
	countPool  float64
}

// NewRunning returns a running workout.
func NewRunning(action int, duration, weight float64) (Training, error) {
	if err := validateCommon(action, duration, weight); err != nil {
		return Training{}, err
	}
	return Training{
		kind:     KindRunning,
		action:   action,
		duration: duration,
		weight:   weight,
	}, nil
}

// NewWalking returns a sports walking workout. Height is in centimeters.
func NewWalking(action int, duration, weight, height float64) (Training, error) {
	if err := validateCommon(action, duration, weight); err != nil {
		return Training{}, err
	}
	if err := positive("height", height); err != nil {
		return Training{}, err
	}
	return Training{
		kind:     KindWalking,
		action:   action,
		duration: duration,
		weight:   weight,
		height:   height,
	}, nil
}

// NewSwimming returns a swimming workout. Pool length is in meters,
// countPool is the number of pool lengths swum.
func NewSwimming(action int, duration, weight, lengthPool, countPool float64) (Training, error) {
	if err := validateCommon(action, duration, weight); err != nil {
		return Training{}, err
	}
	if err := positive("pool length", lengthPool); err != nil {
		return Training{}, err
	}
	if err := positive("pool count", countPool); err != nil {
		return Training{}, err
	}
	return Training{
		kind:       KindSwimming,
		action:     action,
		duration:   duration,
		weight:     weight,
		lengthPool: lengthPool,
		countPool:  countPool,
	}, nil
}

func validateCommon(action int, duration, weight float64) error {
	if action < 0 {
		return fmt.Errorf("%w: action must not be negative, got %d", ErrInvalidValue, action)
	}
	if err := positive("duration", duration); err != nil {
		return err
	}
	return positive("weight", weight)
}

func positive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidValue, name, v)
	}
	return nil
}

func (t Training) Kind() Kind { return t.kind }
func (t Training) Action() int { return t.action }
func (t Training) Duration() float64 { return t.duration }
func (t Training) Weight() float64 { return t.weight }
func (t Training) Height() float64 { return t.height }
func (t Training) LengthPool() float64 { return t.lengthPool }
func (t Training) CountPool() float64 { return t.countPool }

func (t Training) stepLength() float64 {
	switch t.kind {
	case KindRunning, KindWalking:
		return lenStep
	case KindSwimming:
		return swimmingLenStep
	default:
		panic(unknownKind(t.kind))
	}
}

// Distance returns the covered distance in kilometers derived from action count.
func (t Training) Distance() float64 {
	return float64(t.action) * t.stepLength() / mInKm
}

// MeanSpeed returns the average speed in km/h.
// Swimming speed is derived from the pool, not from the stroke count.
func (t Training) MeanSpeed() float64 {
	switch t.kind {
	case KindRunning, KindWalking:
		return t.Distance() / t.duration
	case KindSwimming:
		return t.lengthPool * t.countPool / mInKm / t.duration
	default:
		panic(unknownKind(t.kind))
	}
}

// SpentCalories returns burned kilocalories.
func (t Training) SpentCalories() float64 {
	switch t.kind {
	case KindRunning:
		return (runningCaloriesMeanSpeedMultiplier*t.MeanSpeed() + runningCaloriesMeanSpeedShift) *
			t.weight / mInKm * t.duration * minInH
	case KindWalking:
		return (walkingCaloriesWeightMultiplier*t.weight +
			math.Pow(t.MeanSpeed()*kmhInMsec, 2)/t.height*cmInM*walkingSpeedHeightMultiplier*t.weight) *
			t.duration * minInH
	case KindSwimming:
		return (t.MeanSpeed() + swimmingCaloriesMeanSpeedShift) * swimmingCaloriesWeightMultiplier *
			t.weight * t.duration
	default:
		panic(unknownKind(t.kind))
	}
}

// ShowTrainingInfo computes the summary of the workout.
func (t Training) ShowTrainingInfo() InfoMessage {
	return InfoMessage{
		TrainingType: t.kind.String(),
		Duration:     t.duration,
		Distance:     t.Distance(),
		Speed:        t.MeanSpeed(),
		Calories:     t.SpentCalories(),
	}
}

func unknownKind(k Kind) string {
	return fmt.Sprintf("ftracker: no formulas for training kind %v", k)
}
