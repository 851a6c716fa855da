package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Spinner provides a simple progress indicator with context cancellation support.
type Spinner struct {
	w       io.Writer
	message string
	ctx     context.Context
	cancel  context.CancelFunc
	done    chan struct{}
	stopped chan struct{}
	frames  []string
	once    sync.Once
	started bool
	mu      sync.Mutex
}

// newSpinner creates a spinner on stderr that stops when ctx is cancelled.
func newSpinner(ctx context.Context, message string) *Spinner {
	return newSpinnerTo(ctx, os.Stderr, message)
}

func newSpinnerTo(ctx context.Context, w io.Writer, message string) *Spinner {
	spinnerCtx, cancel := context.WithCancel(ctx)
	return &Spinner{
		w:       w,
		message: message,
		ctx:     spinnerCtx,
		cancel:  cancel,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
		frames:  []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
	}
}

// Start begins the spinner animation.
func (s *Spinner) Start() {
	s.mu.Lock()
	s.started = true
	s.mu.Unlock()

	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		for i := 0; ; i++ {
			select {
			case <-s.ctx.Done():
				s.clearLine()
				return
			case <-s.done:
				return
			case <-ticker.C:
				s.mu.Lock()
				fmt.Fprintf(s.w, "\r%s %s", styleIconSpinner.Render(s.frames[i%len(s.frames)]), StyleDim.Render(s.message))
				s.mu.Unlock()
			}
		}
	}()
}

// SetMessage replaces the text shown next to the spinner.
func (s *Spinner) SetMessage(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(message) < len(s.message) {
		fmt.Fprintf(s.w, "\r%s", strings.Repeat(" ", len(s.message)+4))
	}
	s.message = message
}

// Stop stops the spinner and clears the line. It is safe to call more than once.
func (s *Spinner) Stop() {
	s.once.Do(func() { close(s.done) })
	s.mu.Lock()
	started := s.started
	s.mu.Unlock()
	if started {
		<-s.stopped
	}
	s.cancel()
	s.clearLine()
}

func (s *Spinner) clearLine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", len(s.message)+4))
}

// Cancelled returns true if the spinner was stopped due to context cancellation.
func (s *Spinner) Cancelled() bool {
	select {
	case <-s.done:
		return false
	default:
		return s.ctx.Err() != nil
	}
}
