package ftrackertest

import (
	"flag"
)

var (
	flagBinaryPath string // путь до бинарного файла трекера
	flagRuns       int    // сколько раз параллельно запускать трекер
)

func init() {
	flag.StringVar(&flagBinaryPath, "binary-path", "", "path to target ftracker binary")
	flag.IntVar(&flagRuns, "runs", 5, "number of concurrent tracker runs in determinism check")
}
