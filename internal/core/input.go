package core

// Action represents a semantic game action, abstracted from physical key presses.
// Input adapters translate raw keys into actions; the game never sees keys.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, h, a - move player left
	ActionRight          // Right arrow, l, d - move player right
	ActionRestart        // Space - restart after game over
	ActionScores         // Tab - open scoreboard after game over
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRestart:
		return "Restart"
	case ActionScores:
		return "Scores"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Key repeat timing in ticks, close to a typical OS auto-repeat at 60 TPS.
const (
	RepeatDelay    = 15
	RepeatInterval = 2
)

// RepeatFires reports whether a key held for the given number of ticks
// should fire this tick. It fires on the first tick, then after delay
// ticks once every interval ticks. Hosts without native key repeat use it.
func RepeatFires(held, delay, interval int) bool {
	switch {
	case held <= 0:
		return false
	case held == 1:
		return true
	case held < delay || interval <= 0:
		return false
	}
	return (held-delay)%interval == 0
}
