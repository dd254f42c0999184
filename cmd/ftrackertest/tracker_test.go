package ftrackertest

import (
	"os"
	"strings"

	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
)

type TrackerSuite struct {
	suite.Suite
}

func (suite *TrackerSuite) SetupSuite() {
	if flagBinaryPath != "" {
		return
	}
	if _, err := os.Stat(config.BinaryPath); err != nil {
		suite.T().Skipf("-binary-path flag is not set and %q is not available: %v", config.BinaryPath, err)
	}
}

// expectedOutput is the tracker output for its built-in sensor packages
func expectedOutput() []string {
	return []string{
		message("Swimming", 1, distance(720, swimmingLenStep), swimmingMeanSpeed(25, 40, 1), swimmingSpentCalories(25, 40, 1, 80)),
		message("Running", 1, distance(15000, lenStep), meanSpeed(15000, 1), runningSpentCalories(15000, 1, 75)),
		message("SportsWalking", 1, distance(9000, lenStep), meanSpeed(9000, 1), walkingSpentCalories(9000, 1, 75, 180)),
	}
}

func (suite *TrackerSuite) TestShowTrainingInfo() {
	e := New(suite.T())
	res := RunTracker(e)

	suite.Require().Equalf(0, res.ExitCode, "Трекер завершился с ненулевым кодом, STDERR:\n%s", res.Stderr)

	lines := strings.Split(strings.TrimRight(res.Stdout, "\n"), "\n")
	expected := expectedOutput()
	suite.Require().Len(lines, len(expected), "Количество строк вывода не совпадает с количеством пакетов")

	for i := range expected {
		suite.Assert().Equalf(expected[i], lines[i], "Строка #%d не совпадает с ожидаемой", i+1)
	}
}

func (suite *TrackerSuite) TestReferenceValues() {
	lines := expectedOutput()
	suite.Assert().Contains(lines[0], "Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.")
	suite.Assert().Contains(lines[1], "Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч")
	suite.Assert().Contains(lines[2], "Дистанция: 5.850 км; Ср. скорость: 5.850 км/ч")
}

func (suite *TrackerSuite) TestStableOutput() {
	e := New(suite.T())
	path := TrackerPath(e)
	reference := RunTracker(e)

	runs := flagRuns
	if runs < 1 {
		runs = 1
	}

	results := make([]runResult, runs)
	g, _ := errgroup.WithContext(e.Ctx)
	for i := 0; i < runs; i++ {
		i := i
		g.Go(func() error {
			res, err := runTrackerOnce(e, path)
			results[i] = res
			return err
		})
	}
	suite.Require().NoError(g.Wait(), "Не удалось запустить трекер")

	for i, res := range results {
		suite.Assert().Equalf(reference.Stdout, res.Stdout, "Вывод запуска #%d отличается от первого запуска", i+1)
		suite.Assert().Emptyf(res.Stderr, "Трекер не должен ничего писать в STDERR при успешном запуске")
	}
}
