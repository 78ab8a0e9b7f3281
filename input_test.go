package dnd

import "testing"

func TestInputKindNamesRoundTrip(t *testing.T) {
	for k := InputPress; k <= InputKeyDown; k++ {
		got, err := ParseInputKind(k.String())
		if err != nil {
			t.Errorf("ParseInputKind(%q): %v", k.String(), err)
			continue
		}
		if got != k {
			t.Errorf("ParseInputKind(%q) = %v, want %v", k.String(), got, k)
		}
	}
}

func TestParseInputKindRejects(t *testing.T) {
	for _, name := range []string{"", "none", "click", "Press"} {
		if k, err := ParseInputKind(name); err == nil {
			t.Errorf("ParseInputKind(%q) = %v, want error", name, k)
		}
	}
}

func TestInputKindStringOutOfRange(t *testing.T) {
	if got := InputKind(200).String(); got != "InputKind(200)" {
		t.Errorf("String() = %q", got)
	}
}

func TestEventKindString(t *testing.T) {
	tests := []struct {
		kind EventKind
		want string
	}{
		{EventDrag, "drag"},
		{EventDragStart, "drag:start"},
		{EventDragEnter, "drag:enter"},
		{EventDragOver, "drag:over"},
		{EventDragLeave, "drag:leave"},
		{EventDragEnd, "drag:end"},
		{EventDrop, "drop"},
		{EventDragPrevent, "drag:prevent"},
		{EventKind(99), "EventKind(99)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("EventKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPreventPhaseString(t *testing.T) {
	if PhaseStart.String() != "start" || PhaseEnter.String() != "enter" {
		t.Errorf("phases = %q, %q", PhaseStart, PhaseEnter)
	}
}

func TestInputIsEscape(t *testing.T) {
	tests := []struct {
		in   Input
		want bool
	}{
		{Input{Kind: InputKeyDown, Key: KeyEscape}, true},
		{Input{Kind: InputKeyDown, Key: "Enter"}, false},
		{Input{Kind: InputPress, Key: KeyEscape}, false},
	}
	for _, tt := range tests {
		if got := tt.in.isEscape(); got != tt.want {
			t.Errorf("isEscape(%+v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
