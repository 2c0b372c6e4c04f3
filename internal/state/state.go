// Package state implements the run lifecycle state machine.
package state

// RunState represents the current lifecycle state of a run.
type RunState int

const (
	MainMenu RunState = iota
	Playing
	Paused
	GameOver
	Exit
)

// String returns the string representation of the run state.
func (s RunState) String() string {
	switch s {
	case MainMenu:
		return "MainMenu"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	case GameOver:
		return "GameOver"
	case Exit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// Simulating reports whether fixed ticks advance physics, obstacles and
// collisions in this state.
func (s RunState) Simulating() bool {
	return s == Playing
}

// Trigger is an event that may cause a state transition.
type Trigger int

const (
	TriggerNone    Trigger = iota
	TriggerStart           // confirm on the main menu
	TriggerPause           // pause action while playing
	TriggerResume          // resume action while paused
	TriggerCrash           // collision or out-of-bounds
	TriggerRestart         // restart action after game over
	TriggerMenu            // back to the main menu after game over
	TriggerExit            // exit action on the main menu
	TriggerQuit            // frontend close request, legal from every live state
)

// String returns the string representation of the trigger.
func (t Trigger) String() string {
	switch t {
	case TriggerNone:
		return "None"
	case TriggerStart:
		return "Start"
	case TriggerPause:
		return "Pause"
	case TriggerResume:
		return "Resume"
	case TriggerCrash:
		return "Crash"
	case TriggerRestart:
		return "Restart"
	case TriggerMenu:
		return "Menu"
	case TriggerExit:
		return "Exit"
	case TriggerQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Transition describes one committed state change.
type Transition struct {
	From    RunState
	To      RunState
	Trigger Trigger
}

type edge struct {
	from    RunState
	trigger Trigger
}

// transitions is the complete table of legal state changes.
var transitions = map[edge]RunState{
	{MainMenu, TriggerStart}:   Playing,
	{MainMenu, TriggerExit}:    Exit,
	{Playing, TriggerPause}:    Paused,
	{Paused, TriggerResume}:    Playing,
	{Playing, TriggerCrash}:    GameOver,
	{GameOver, TriggerRestart}: Playing,
	{GameOver, TriggerMenu}:    MainMenu,
	{MainMenu, TriggerQuit}:    Exit,
	{Playing, TriggerQuit}:     Exit,
	{Paused, TriggerQuit}:      Exit,
	{GameOver, TriggerQuit}:    Exit,
}

// Target returns the state a trigger leads to from the given state.
func Target(from RunState, t Trigger) (RunState, bool) {
	to, ok := transitions[edge{from, t}]
	return to, ok
}
