// spinner.go implements the progress spinner shown while iedash renders or exports.

// Package ui holds small terminal presentation helpers.
package ui

import (
	"fmt"
	"io"
	"sync"
	"time"
)

const spinnerInterval = 120 * time.Millisecond

// Spinner animates a message on w until Stop is called.
type Spinner struct {
	w       io.Writer
	message string
	done    chan struct{}
	once    sync.Once
}

// StartSpinner begins animating message on w and returns the spinner.
func StartSpinner(w io.Writer, message string) *Spinner {
	s := &Spinner{w: w, message: message, done: make(chan struct{})}
	go s.loop()
	return s
}

func (s *Spinner) loop() {
	frames := `|/-\`
	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()
	idx := 0
	for {
		select {
		case <-s.done:
			fmt.Fprintf(s.w, "\r%s    \r", s.message)
			return
		case <-ticker.C:
			fmt.Fprintf(s.w, "\r%s %c", s.message, frames[idx%len(frames)])
			idx++
		}
	}
}

// Stop halts the animation and prints a done/fail marker. It is safe to
// call more than once.
func (s *Spinner) Stop(success bool) {
	s.once.Do(func() {
		close(s.done)
		status := "[done]"
		if !success {
			status = "[fail]"
		}
		fmt.Fprintf(s.w, "\r%s %s\n", s.message, status)
	})
}
