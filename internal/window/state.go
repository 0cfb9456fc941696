// Package window tracks main window visibility and applies it to the host window.
package window

import "time"

// State is the visibility of the main window.
type State string

const (
	// StateVisible means the window is shown
	StateVisible State = "visible"

	// StateHidden means the window lives only in the tray
	StateHidden State = "hidden"
)

// Event is an input to the visibility machine.
type Event string

const (
	// EventShow shows and focuses the window
	EventShow Event = "show"

	// EventHide hides the window
	EventHide Event = "hide"

	// EventToggle is a primary click on the tray icon
	EventToggle Event = "toggle_from_tray_click"

	// EventInterceptedClose is a close request that was turned into a hide
	EventInterceptedClose Event = "intercepted_close"
)

// Transition records one state change.
type Transition struct {
	From      State
	To        State
	Event     Event
	Timestamp time.Time
}

// Next returns the state reached from s on event e. There is no terminal state.
func Next(s State, e Event) State {
	switch e {
	case EventShow:
		return StateVisible
	case EventHide, EventInterceptedClose:
		return StateHidden
	case EventToggle:
		if s == StateVisible {
			return StateHidden
		}
		return StateVisible
	default:
		return s
	}
}
