package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Yandex-Practicum/go-ftracker/internal/ftracker"
)

func TestFormatPackage(t *testing.T) {
	tests := []struct {
		name string
		p    ftracker.Package
		want string
	}{
		{"running", ftracker.Package{Code: ftracker.CodeRunning, Data: []float64{15000, 1, 75}}, "RUN 15000,1,75"},
		{"walking", ftracker.Package{Code: ftracker.CodeWalking, Data: []float64{9000, 1.5, 75, 180}}, "WLK 9000,1.5,75,180"},
		{"swimming", ftracker.Package{Code: ftracker.CodeSwimming, Data: []float64{720, 0.25, 80, 25, 40}}, "SWM 720,0.25,80,25,40"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatPackage(tt.p))
		})
	}
}
