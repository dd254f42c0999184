package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/Yandex-Practicum/go-ftracker/internal/ftracker"
	"github.com/Yandex-Practicum/go-ftracker/internal/random"
)

var packageFlags = flag.NewFlagSet("package", flag.ExitOnError)

var (
	flagPackageCode  = packageFlags.String("code", "", "workout code: SWM, RUN or WLK; random if empty")
	flagPackageCount = packageFlags.Int("n", 1, "number of packages to generate")
)

var packageCmd = cmd{
	name:      "package",
	shortHelp: "generates random sensor packages",
	do:        generatePackage,
	flags:     packageFlags,
}

func generatePackage() {
	if *flagPackageCount < 1 {
		fatalf("number of packages must be positive, got %d", *flagPackageCount)
	}

	for i := 0; i < *flagPackageCount; i++ {
		var p ftracker.Package
		switch code := ftracker.Code(*flagPackageCode); code {
		case "":
			p = random.AnyPackage()
		case ftracker.CodeSwimming, ftracker.CodeRunning, ftracker.CodeWalking:
			p = random.Package(code)
		default:
			fatalf("unknown workout code %q", code)
		}
		fmt.Println(formatPackage(p))
	}
}

// formatPackage renders package as "CODE v1,v2,..."
func formatPackage(p ftracker.Package) string {
	values := make([]string, 0, len(p.Data))
	for _, v := range p.Data {
		values = append(values, strconv.FormatFloat(v, 'f', -1, 64))
	}
	return string(p.Code) + " " + strings.Join(values, ",")
}
