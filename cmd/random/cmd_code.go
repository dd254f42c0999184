package main

import (
	"fmt"

	"github.com/Yandex-Practicum/go-ftracker/internal/random"
)

var unknownCodeCmd = cmd{
	name:      "unknown-code",
	shortHelp: "generates random workout code unknown to the tracker",
	do:        generateUnknownCode,
}

func generateUnknownCode() {
	fmt.Print(random.UnknownCode())
}
