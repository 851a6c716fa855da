package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncBuffer is a bytes.Buffer safe for the spinner goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinnerBasic(t *testing.T) {
	var out syncBuffer
	s := newSpinnerTo(context.Background(), &out, "Rendering...")
	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	if !strings.Contains(out.String(), "Rendering...") {
		t.Errorf("spinner output %q should contain the message", out.String())
	}
	if s.Cancelled() {
		t.Error("Stop should not count as cancellation")
	}
}

func TestSpinnerWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s := newSpinnerTo(ctx, &syncBuffer{}, "Testing with context...")
	s.Start()
	cancel()
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("Spinner should be cancelled after context cancellation")
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinnerTo(context.Background(), &syncBuffer{}, "Testing idempotent stop...")
	s.Start()

	s.Stop()
	s.Stop()
	s.Stop()
}

func TestSpinnerStopWithoutStart(t *testing.T) {
	s := newSpinnerTo(context.Background(), &syncBuffer{}, "never started")
	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop without Start blocked")
	}
}

func TestSpinnerSetMessage(t *testing.T) {
	var out syncBuffer
	s := newSpinnerTo(context.Background(), &out, "first")
	s.Start()
	s.SetMessage("second stage")
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	if !strings.Contains(out.String(), "second stage") {
		t.Errorf("spinner output %q should contain the updated message", out.String())
	}
}
