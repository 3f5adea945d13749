// Package actions builds the list of timed console commands that the demo
// player plugin executes while a recording is played back, and reads and
// writes the JSON file that carries them.
package actions

import "fmt"

// MinTick is the lowest tick the player can seek to or execute a command at.
// It is also the delay between locking the spectator camera on a player and
// releasing the lock.
const MinTick = 64

// FileSuffix is appended to a demo path to name its actions file.
const FileSuffix = ".json"

// Console commands understood by the playback engine, plus the plugin's own
// pause_playback directive.
const (
	cmdGotoTick      = "demo_gototick"
	cmdSpecLock      = "spec_lock_to_accountid"
	cmdSpecMode      = "spec_mode 1"
	cmdSpecUnlock    = cmdSpecLock + " 0"
	cmdDisconnect    = "disconnect"
	cmdPausePlayback = "pause_playback"
)

// Action is a console command scheduled at a playback tick.
type Action struct {
	Tick int    `json:"tick"`
	Cmd  string `json:"cmd"`
}

// String renders the action as "tick: cmd".
func (a Action) String() string {
	return fmt.Sprintf("%d: %s", a.Tick, a.Cmd)
}

// Clamp raises tick to MinTick when it is lower. Ticks at or above MinTick
// are returned unchanged.
func Clamp(tick int) int {
	if tick < MinTick {
		return MinTick
	}
	return tick
}
