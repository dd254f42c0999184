package ftrackertest

//go:generate go test -c -o=../../bin/ftrackertest

import (
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
)

func TestMain(m *testing.M) {
	os.Exit(m.Run())
}

func TestTracker(t *testing.T) {
	suite.Run(t, new(TrackerSuite))
}
