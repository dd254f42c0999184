package ftrackertest

import (
	"os"
	"time"
)

var config = struct {
	BinaryPath string
	RunTimeout time.Duration
}{
	BinaryPath: func() string {
		if val := os.Getenv("FTRACKER_BINARY_PATH"); val != "" {
			return val
		}
		return "bin/ftracker"
	}(),

	RunTimeout: func() time.Duration {
		if val := os.Getenv("FTRACKER_RUN_TIMEOUT"); val != "" {
			if d, err := time.ParseDuration(val); err == nil {
				return d
			}
		}
		return 10 * time.Second
	}(),
}

// binaryPath prefers the -binary-path flag over environment
func binaryPath() string {
	if flagBinaryPath != "" {
		return flagBinaryPath
	}
	return config.BinaryPath
}
