package transform

import "time"

// Observer is notified about pass progress
type Observer interface {
	// DecoratorApplied is called after a registered decorator returned
	DecoratorApplied(name string, kind ResultKind)
	// FileTransformed is called when a file walk completes
	FileTransformed(path string, elapsed time.Duration, err error)
}

type nopObserver struct{}

func (nopObserver) DecoratorApplied(string, ResultKind)          {}
func (nopObserver) FileTransformed(string, time.Duration, error) {}
