package tray

import (
	"testing"
)

// fakeWindowService records every call so tests can assert dispatch exactness.
type fakeWindowService struct {
	shown  []string
	hidden []string
	events []emittedEvent
}

type emittedEvent struct {
	window string
	event  string
}

func (f *fakeWindowService) Show(name string) {
	f.shown = append(f.shown, name)
}

func (f *fakeWindowService) Hide(name string) {
	f.hidden = append(f.hidden, name)
}

func (f *fakeWindowService) Emit(name string, event string) {
	f.events = append(f.events, emittedEvent{window: name, event: event})
}

func (f *fakeWindowService) callCount() int {
	return len(f.shown) + len(f.hidden) + len(f.events)
}

func TestDispatchPerformsExactlyOneAction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		action     menuAction
		wantShown  []string
		wantHidden []string
		wantEvents []emittedEvent
		wantQuit   bool
	}{
		{
			name:      "show targets main window",
			action:    actionShow,
			wantShown: []string{"main"},
		},
		{
			name:       "hide targets main window",
			action:     actionHide,
			wantHidden: []string{"main"},
		},
		{
			name:       "click through emits one notification",
			action:     actionClickThrough,
			wantEvents: []emittedEvent{{window: "main", event: "toggle-click-through"}},
		},
		{
			name:       "reset position emits one notification",
			action:     actionResetPos,
			wantEvents: []emittedEvent{{window: "main", event: "reset-position"}},
		},
		{
			name:       "autostart emits one notification",
			action:     actionAutostart,
			wantEvents: []emittedEvent{{window: "main", event: "toggle-autostart"}},
		},
		{
			name:     "quit only quits",
			action:   actionQuit,
			wantQuit: true,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			windows := &fakeWindowService{}
			quitCalls := 0
			controller := NewController(windows, func() { quitCalls++ })

			controller.dispatch(tc.action)

			if got, want := windows.shown, tc.wantShown; !equalStrings(got, want) {
				t.Errorf("shown windows: got %v want %v", got, want)
			}
			if got, want := windows.hidden, tc.wantHidden; !equalStrings(got, want) {
				t.Errorf("hidden windows: got %v want %v", got, want)
			}
			if got, want := windows.events, tc.wantEvents; !equalEvents(got, want) {
				t.Errorf("emitted events: got %v want %v", got, want)
			}

			wantQuitCalls := 0
			if tc.wantQuit {
				wantQuitCalls = 1
			}
			if quitCalls != wantQuitCalls {
				t.Errorf("quit calls: got %d want %d", quitCalls, wantQuitCalls)
			}

			wantWindowCalls := len(tc.wantShown) + len(tc.wantHidden) + len(tc.wantEvents)
			if windows.callCount() != wantWindowCalls {
				t.Errorf("window service calls: got %d want %d", windows.callCount(), wantWindowCalls)
			}
		})
	}
}

func TestDispatchUnknownActionIsNoop(t *testing.T) {
	t.Parallel()

	windows := &fakeWindowService{}
	quitCalls := 0
	controller := NewController(windows, func() { quitCalls++ })

	controller.dispatch(menuAction(99))

	if windows.callCount() != 0 {
		t.Fatalf("expected no window service calls, got %d", windows.callCount())
	}
	if quitCalls != 0 {
		t.Fatalf("expected no quit calls, got %d", quitCalls)
	}
}

func TestMenuEntriesAreFixed(t *testing.T) {
	t.Parallel()

	want := []menuEntry{
		{id: "show", label: "Show", action: actionShow},
		{id: "hide", label: "Hide", action: actionHide},
		{id: "click_through", label: "Toggle Click-Through", action: actionClickThrough},
		{id: "reset_pos", label: "Reset Position", action: actionResetPos},
		{id: "autostart", label: "Start at Login", action: actionAutostart},
		{id: "quit", label: "Quit", action: actionQuit},
	}

	got := menuEntries()
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}

	seen := make(map[string]bool, len(got))
	for i, entry := range got {
		if entry != want[i] {
			t.Errorf("entry %d: got %+v want %+v", i, entry, want[i])
		}
		if seen[entry.id] {
			t.Errorf("duplicate entry id %q", entry.id)
		}
		seen[entry.id] = true
	}
}

func equalStrings(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func equalEvents(got, want []emittedEvent) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
