package core

// Action represents a semantic input action, abstracted from physical keys.
// Frontends translate their key events to actions; the game only sees these.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // Left arrow, A, H
	ActionUp                // Up arrow, W, K
	ActionRight             // Right arrow, D, L
	ActionDown              // Down arrow, S, J
	ActionRestart           // R - start a new game once the current one is over
	ActionQuit              // Q, Esc, Ctrl+C
	ActionScreenshot        // Ctrl+S - dump the current frame to a text file
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionUp:
		return "Up"
	case ActionRight:
		return "Right"
	case ActionDown:
		return "Down"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}

// IsDirectional reports whether the action steers the snake.
func (a Action) IsDirectional() bool {
	return a >= ActionLeft && a <= ActionDown
}
