package cli

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/gridcal/pkg/errors"
)

// fixClock pins the clock used for current-week highlighting.
func fixClock(t *testing.T, tm time.Time) {
	t.Helper()
	old := now
	now = func() time.Time { return tm }
	t.Cleanup(func() { now = old })
}

func TestParseYear(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"2025", 2025, false},
		{"1", 1, false},
		{"9999", 9999, false},
		{"0", 0, true},
		{"10000", 0, true},
		{"twenty", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseYear(tt.in)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidYear) {
					t.Errorf("err = %v, want INVALID_YEAR", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("parseYear(%q) = %d, %v", tt.in, got, err)
			}
		})
	}
}

func TestWeekCommand(t *testing.T) {
	tests := []struct {
		args     []string
		contains []string
		wantCode errors.Code
	}{
		{
			args:     []string{"week", "2025", "1"},
			contains: []string{"2025-W01", "Dec 30-Jan 5", "2024-12-30"},
		},
		{
			args:     []string{"week", "2026", "53"},
			contains: []string{"2026-W53", "Dec 28-Jan 3"},
		},
		{
			args:     []string{"week", "2025", "53"},
			contains: []string{"Dec 29-Jan 4", "2025 has only 52 weeks"},
		},
		{args: []string{"week", "2025", "54"}, wantCode: errors.ErrCodeInvalidWeek},
		{args: []string{"week", "2025", "x"}, wantCode: errors.ErrCodeInvalidWeek},
		{args: []string{"week", "0", "1"}, wantCode: errors.ErrCodeInvalidYear},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args[1:], "/"), func(t *testing.T) {
			out := captureStdout(t)
			root := New(io.Discard, LogInfo).RootCommand()
			root.SetArgs(tt.args)
			root.SetErr(io.Discard)
			err := root.Execute()

			if tt.wantCode != "" {
				if !errors.Is(err, tt.wantCode) {
					t.Errorf("err = %v, want %s", err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(out.String(), want) {
					t.Errorf("output missing %q:\n%s", want, out.String())
				}
			}
		})
	}
}

func TestWeeksCommand(t *testing.T) {
	fixClock(t, time.Date(2020, 6, 1, 12, 0, 0, 0, time.UTC))
	out := captureStdout(t)

	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs([]string{"weeks", "2026"})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Week", "Dec 29-Jan 4", "Dec 28-Jan 3", "53 ISO weeks", "weeks 2026 -i"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestCurrentWeek(t *testing.T) {
	// Thursday 2021-01-07 is in ISO week 1 of 2021.
	fixClock(t, time.Date(2021, 1, 7, 9, 0, 0, 0, time.UTC))
	if got := currentWeek(2021); got != 1 {
		t.Errorf("currentWeek(2021) = %d, want 1", got)
	}
	if got := currentWeek(2020); got != -1 {
		t.Errorf("currentWeek(2020) = %d, want -1", got)
	}
}

func TestWeeksTableWindow(t *testing.T) {
	got := weeksTable(2025, -1, 10, 5)
	for _, want := range []string{"Mar 10-16", "Apr 7-13"} {
		if !strings.Contains(got, want) {
			t.Errorf("table missing %q:\n%s", want, got)
		}
	}
	for _, absent := range []string{"Mar 3-9", "Apr 14-20"} {
		if strings.Contains(got, absent) {
			t.Errorf("table contains %q outside the window", absent)
		}
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m weekBrowser, msgs ...tea.Msg) weekBrowser {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(weekBrowser)
	}
	return m
}

func TestWeekBrowserYears(t *testing.T) {
	fixClock(t, time.Date(2030, 3, 1, 0, 0, 0, 0, time.UTC))

	m := newWeekBrowser(2025)
	m = update(t, m, key("right"), key("right"), key("left"))
	if m.year != 2026 {
		t.Errorf("year = %d, want 2026", m.year)
	}
	m = update(t, m, key("h"))
	if m.year != 2025 {
		t.Errorf("year = %d, want 2025", m.year)
	}
	m = update(t, m, key("t"))
	if m.year != 2030 {
		t.Errorf("year = %d after t, want 2030", m.year)
	}
}

func TestWeekBrowserBounds(t *testing.T) {
	m := update(t, newWeekBrowser(9999), key("right"))
	if m.year != 9999 {
		t.Errorf("year = %d, want 9999", m.year)
	}
	if m.status == "" {
		t.Error("expected a status message past the last year")
	}
	if !strings.Contains(m.View(), m.status) {
		t.Error("view does not show the status message")
	}

	m = update(t, m, key("left"))
	if m.status != "" {
		t.Errorf("status = %q, want cleared", m.status)
	}
}

func TestWeekBrowserScroll(t *testing.T) {
	m := update(t, newWeekBrowser(2025), tea.WindowSizeMsg{Width: 80, Height: 30})
	if m.height != 20 {
		t.Fatalf("height = %d, want 20", m.height)
	}
	m = update(t, m, key("up"))
	if m.offset != 0 {
		t.Errorf("offset = %d, want 0", m.offset)
	}
	for range 100 {
		m = update(t, m, key("down"))
	}
	if m.offset != 52-20 {
		t.Errorf("offset = %d, want %d", m.offset, 52-20)
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 70})
	if m.offset != 0 {
		t.Errorf("offset = %d after grow, want 0", m.offset)
	}
}

func TestWeekBrowserQuit(t *testing.T) {
	for _, k := range []string{"q", "esc"} {
		var msg tea.KeyMsg
		if k == "esc" {
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		} else {
			msg = key(k)
		}
		_, cmd := newWeekBrowser(2025).Update(msg)
		if cmd == nil {
			t.Fatalf("%s: expected quit command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: command did not quit", k)
		}
	}
}
