package ftracker

import (
	"fmt"
	"io"
)

// Process handles packages strictly in order and writes one summary line
// per package to w. It stops at the first failing package; lines written
// before the failure are kept.
func Process(w io.Writer, packages []Package) error {
	for i, p := range packages {
		training, err := ReadPackage(p.Code, p.Data)
		if err != nil {
			return fmt.Errorf("package #%d (%s): %w", i+1, p.Code, err)
		}

		if _, err := fmt.Fprintln(w, training.ShowTrainingInfo().Message()); err != nil {
			return fmt.Errorf("cannot write summary: %w", err)
		}
	}
	return nil
}
