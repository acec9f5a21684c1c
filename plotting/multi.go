package plotting

import (
	"errors"

	"github.com/notargets/eulerfv/model_problems/Euler1D"
)

// Multi hands every snapshot to each of its visualizers in order
type Multi []Euler1D.Visualizer

func (m Multi) AddSnapshot(s *Euler1D.Snapshot) (err error) {
	for _, v := range m {
		if err = v.AddSnapshot(s); err != nil {
			return
		}
	}
	return
}

// Finish finishes every visualizer, even after one of them fails
func (m Multi) Finish() error {
	var errs []error
	for _, v := range m {
		errs = append(errs, v.Finish())
	}
	return errors.Join(errs...)
}
