package mode

import (
	"errors"
	"testing"
)

func TestModeNames(t *testing.T) {
	tests := []struct {
		mode    Mode
		name    string
		display string
		cursor  CursorStyle
	}{
		{Normal, "normal", "NORMAL", CursorBlock},
		{Insert, "insert", "INSERT", CursorBar},
		{Command, "command", "COMMAND", CursorBar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mode.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.mode.DisplayName(); got != tt.display {
				t.Errorf("DisplayName() = %q, want %q", got, tt.display)
			}
			if got := tt.mode.CursorStyle(); got != tt.cursor {
				t.Errorf("CursorStyle() = %v, want %v", got, tt.cursor)
			}
		})
	}
}

func TestManagerStartsInNormal(t *testing.T) {
	m := NewManager()
	if !m.Is(Normal) {
		t.Errorf("initial mode = %v, want normal", m.Current())
	}
}

func TestManagerTransitions(t *testing.T) {
	tests := []struct {
		name    string
		path    []Mode
		wantErr bool
	}{
		{"normal to insert", []Mode{Insert}, false},
		{"normal to command", []Mode{Command}, false},
		{"insert back to normal", []Mode{Insert, Normal}, false},
		{"command back to normal", []Mode{Command, Normal}, false},
		{"insert to command", []Mode{Insert, Command}, true},
		{"command to insert", []Mode{Command, Insert}, true},
		{"same mode is a no-op", []Mode{Normal}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager()
			var err error
			for _, to := range tt.path {
				if err = m.Switch(to); err != nil {
					break
				}
			}
			if (err != nil) != tt.wantErr {
				t.Fatalf("Switch() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidTransition) {
				t.Errorf("error should wrap ErrInvalidTransition: %v", err)
			}
		})
	}
}

func TestManagerReset(t *testing.T) {
	for _, from := range []Mode{Insert, Command} {
		m := NewManager()
		if err := m.Switch(from); err != nil {
			t.Fatal(err)
		}
		m.Reset()
		if !m.Is(Normal) {
			t.Errorf("Reset from %v left mode %v", from, m.Current())
		}
		if m.Previous() != from {
			t.Errorf("Previous() = %v, want %v", m.Previous(), from)
		}
	}
}

func TestManagerCallbacks(t *testing.T) {
	m := NewManager()

	var changes [][2]Mode
	unsubscribe := m.OnChange(func(from, to Mode) {
		changes = append(changes, [2]Mode{from, to})
	})

	_ = m.Switch(Insert)
	_ = m.Switch(Insert)
	m.Reset()
	m.Reset()

	want := [][2]Mode{{Normal, Insert}, {Insert, Normal}}
	if len(changes) != len(want) {
		t.Fatalf("callbacks = %v, want %v", changes, want)
	}
	for i := range want {
		if changes[i] != want[i] {
			t.Errorf("change %d = %v, want %v", i, changes[i], want[i])
		}
	}

	unsubscribe()
	_ = m.Switch(Command)
	if len(changes) != len(want) {
		t.Error("callback fired after unsubscribe")
	}
}
