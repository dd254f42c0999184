package main

//go:generate go build -o=../../bin/ftracker

import (
	"io"
	"log"
	"os"

	"github.com/Yandex-Practicum/go-ftracker/internal/ftracker"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("ftracker: ")

	if err := run(os.Stdout, packages()); err != nil {
		log.Fatalf("cannot process packages: %s", err)
	}
}

func run(w io.Writer, pkgs []ftracker.Package) error {
	return ftracker.Process(w, pkgs)
}

// packages returns sensor packages received from the tracker block
func packages() []ftracker.Package {
	return []ftracker.Package{
		{Code: ftracker.CodeSwimming, Data: []float64{720, 1, 80, 25, 40}},
		{Code: ftracker.CodeRunning, Data: []float64{15000, 1, 75}},
		{Code: ftracker.CodeWalking, Data: []float64{9000, 1, 75, 180}},
	}
}
