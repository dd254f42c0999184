package ftrackertest

import (
	"os"
	"testing"

	"github.com/rekby/fixenv"
	"github.com/stretchr/testify/assert"
	"golang.org/x/net/context"

	"github.com/Yandex-Practicum/go-ftracker/internal/fork"
)

type Env struct {
	*fixenv.EnvT
	*assert.Assertions
	Ctx context.Context

	t testing.TB
}

func New(t testing.TB) *Env {
	ctx, ctxCancel := context.WithCancel(context.Background())
	t.Cleanup(ctxCancel)

	res := Env{
		EnvT:       fixenv.NewEnv(t),
		Assertions: assert.New(t),
		t:          t,
		Ctx:        ctx,
	}
	return &res
}

func (e *Env) Fatalf(format string, args ...any) {
	e.T().Fatalf(format, args...)
}

func (e *Env) Logf(format string, args ...any) {
	e.t.Logf(format, args...)
}

// runResult is the observable outcome of a finished tracker process
type runResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

func ExistPath(e *Env, filePath string) string {
	return fixenv.Cache(e.EnvT, filePath, nil, func() (string, error) {
		e.Logf("Проверяю наличие файла: %q", filePath)
		_, err := os.Stat(filePath)
		if err != nil {
			return "", err
		}
		return filePath, nil
	})
}

func TrackerPath(e *Env) string {
	return ExistPath(e, binaryPath())
}

// RunTracker starts the tracker once per test and caches its result
func RunTracker(e *Env) runResult {
	path := TrackerPath(e)
	return fixenv.Cache(e.EnvT, path, nil, func() (runResult, error) {
		return runTrackerOnce(e, path)
	})
}

// runTrackerOnce starts the tracker without caching, so it is safe to call concurrently
func runTrackerOnce(e *Env, path string) (runResult, error) {
	ctx, cancel := context.WithTimeout(e.Ctx, config.RunTimeout)
	defer cancel()

	process := fork.NewBackgroundProcess(ctx, path)
	e.Logf("Запускаю трекер: %s", process)
	if err := process.Start(ctx); err != nil {
		return runResult{}, err
	}

	exitCode, err := process.Wait(ctx)
	if err != nil {
		return runResult{}, err
	}

	return runResult{
		ExitCode: exitCode,
		Stdout:   string(process.Stdout(ctx)),
		Stderr:   string(process.Stderr(ctx)),
	}, nil
}
