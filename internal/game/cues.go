package game

// Cues receives the audible events of a session. Implementations must not
// block: they are called from the frontend's update loop.
type Cues interface {
	// Turned fires when a direction change is accepted.
	Turned()
	// AppleEaten fires when the snake eats the apple.
	AppleEaten()
	// ThemeStart fires when the snake starts moving.
	ThemeStart()
	// ThemeStop fires when the game ends, before GameOver.
	ThemeStop()
	// GameOver fires once when the snake dies.
	GameOver()
}

// NopCues ignores every cue.
type NopCues struct{}

func (NopCues) Turned()     {}
func (NopCues) AppleEaten() {}
func (NopCues) ThemeStart() {}
func (NopCues) ThemeStop()  {}
func (NopCues) GameOver()   {}
