package main

import "fmt"

type Task interface {
	// Run executes the task until completion or error.
	Run() error
}

// Start runs the task asynchronously. The returned channel receives
// the task result, or an error if it panicked, and is then closed.
func Start(t Task) <-chan error {
	errs := make(chan error, 1)
	go func() {
		defer close(errs)
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			errs <- fmt.Errorf("inner function panic: %+v", r)
		}()
		errs <- t.Run()
	}()
	return errs
}
