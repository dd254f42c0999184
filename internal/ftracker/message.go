package ftracker

import (
	"fmt"
)

const messageFormat = "Тип тренировки: %s; " +
	"Длительность: %.3f ч.; " +
	"Дистанция: %.3f км; " +
	"Ср. скорость: %.3f км/ч; " +
	"Потрачено ккал: %.3f."

// InfoMessage is the computed summary of a training.
type InfoMessage struct {
	TrainingType string
	Duration     float64 // hours
	Distance     float64 // km
	Speed        float64 // km/h
	Calories     float64 // kcal
}

// Message renders the summary as a single line without a trailing newline.
func (m InfoMessage) Message() string {
	return fmt.Sprintf(messageFormat, m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories)
}

func (m InfoMessage) String() string {
	return m.Message()
}
