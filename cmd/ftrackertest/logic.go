package ftrackertest

import (
	"fmt"
)

const (
	lenStep   = 0.65
	mInKm     = 1000
	minInH    = 60
	kmhInMsec = 0.06
	cmInM     = 0.01

	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029

	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 1.79

	swimmingLenStep                  = 1.38
	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

func distance(action int, step float64) float64 {
	return float64(action) * step / mInKm
}

func meanSpeed(action int, duration float64) float64 {
	if duration <= 0 {
		return 0
	}
	return distance(action, lenStep) / duration
}

func swimmingMeanSpeed(lengthPool, countPool, duration float64) float64 {
	if duration <= 0 {
		return 0
	}
	return lengthPool * countPool / mInKm / duration
}

func runningSpentCalories(action int, duration, weight float64) float64 {
	speed := meanSpeed(action, duration)
	return (runningCaloriesMeanSpeedMultiplier*speed + runningCaloriesMeanSpeedShift) * weight / mInKm * duration * minInH
}

func walkingSpentCalories(action int, duration, weight, height float64) float64 {
	speed := meanSpeed(action, duration) * kmhInMsec
	return (walkingCaloriesWeightMultiplier*weight + speed*speed/height*cmInM*walkingSpeedHeightMultiplier*weight) * duration * minInH
}

func swimmingSpentCalories(lengthPool, countPool, duration, weight float64) float64 {
	speed := swimmingMeanSpeed(lengthPool, countPool, duration)
	return (speed + swimmingCaloriesMeanSpeedShift) * swimmingCaloriesWeightMultiplier * weight * duration
}

func message(trainingType string, duration, distance, speed, calories float64) string {
	return fmt.Sprintf("Тип тренировки: %s; Длительность: %.3f ч.; Дистанция: %.3f км; Ср. скорость: %.3f км/ч; Потрачено ккал: %.3f.",
		trainingType, duration, distance, speed, calories)
}
