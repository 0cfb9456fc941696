// Package router maps menu, tray and window events onto actions. It holds no state and knows
// nothing about the identifiers it forwards.
package router

import (
	"github.com/sing-config/sing-config/internal/menu"
)

// Kind is the closed set of things the shell can do in response to an event.
type Kind string

const (
	// KindTerminate exits the process
	KindTerminate Kind = "terminate"

	// KindShowWindow makes the window visible and focuses it
	KindShowWindow Kind = "show_window"

	// KindHideWindow hides the window to the tray
	KindHideWindow Kind = "hide_window"

	// KindToggleWindow hides a visible window or shows a hidden one
	KindToggleWindow Kind = "toggle_window"

	// KindForward hands the identifier to the embedding application
	KindForward Kind = "forward"
)

// Source tells which surface produced an event.
type Source string

const (
	SourceMenu   Source = "menu"
	SourceTray   Source = "tray"
	SourceIcon   Source = "tray_icon"
	SourceWindow Source = "window"
)

// Action is the routing outcome. ID is only set for KindForward.
type Action struct {
	Kind Kind   `json:"kind"`
	ID   string `json:"id,omitempty"`
}

var (
	Terminate  = Action{Kind: KindTerminate}
	ShowWindow = Action{Kind: KindShowWindow}
	HideWindow = Action{Kind: KindHideWindow}
	Toggle     = Action{Kind: KindToggleWindow}
)

// Forward returns the action that passes id through unchanged.
func Forward(id string) Action {
	return Action{Kind: KindForward, ID: id}
}

// IsForward reports whether the action leaves the shell.
func (a Action) IsForward() bool {
	return a.Kind == KindForward
}

func (a Action) String() string {
	if a.Kind == KindForward {
		return string(a.Kind) + "(" + a.ID + ")"
	}
	return string(a.Kind)
}

// RouteMenu routes a click on a menu bar entry.
func RouteMenu(id string) Action {
	switch id {
	case menu.IDAppQuit:
		return Terminate
	default:
		return Forward(id)
	}
}

// RouteTray routes a click on a tray menu entry.
func RouteTray(id string) Action {
	switch id {
	case menu.IDTrayQuit:
		return Terminate
	case menu.IDTrayShow:
		return ShowWindow
	case menu.IDTrayHide:
		return HideWindow
	default:
		return Forward(id)
	}
}

// TrayIconClick routes a primary-button click on the tray icon itself.
func TrayIconClick() Action {
	return Toggle
}

// CloseRequested routes the window's close request. Closing never terminates.
func CloseRequested() Action {
	return HideWindow
}
