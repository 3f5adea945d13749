package actions

import (
	"fmt"
	"os"

	"github.com/demo-actions/demo-actions/internal/platform"
)

// Builder accumulates actions for one demo and writes them to the demo's
// actions file. A Builder is not safe for concurrent use.
type Builder struct {
	path    string
	actions []Action

	// writeFile is os.WriteFile outside of tests.
	writeFile func(name string, data []byte, perm os.FileMode) error
}

// New returns an empty Builder targeting the actions file of demoPath.
// No I/O is performed.
func New(demoPath string) *Builder {
	return &Builder{
		path:      FilePath(demoPath),
		writeFile: os.WriteFile,
	}
}

// FilePath returns the actions file path for demoPath: the demo path with
// FileSuffix appended and all separators converted to forward slashes.
func FilePath(demoPath string) string {
	return platform.UnixSeparators(demoPath + FileSuffix)
}

// Path returns the file Commit writes to.
func (b *Builder) Path() string {
	return b.path
}

// Len returns the number of scheduled actions.
func (b *Builder) Len() int {
	return len(b.actions)
}

// Actions returns a copy of the scheduled actions in insertion order.
func (b *Builder) Actions() []Action {
	out := make([]Action, len(b.actions))
	copy(out, b.actions)
	return out
}

// SkipAhead jumps playback to targetTick when startTick is reached.
// targetTick is not required to be after startTick.
func (b *Builder) SkipAhead(startTick, targetTick int) *Builder {
	return b.add(startTick, fmt.Sprintf("%s %d", cmdGotoTick, Clamp(targetTick)))
}

// SpectatePlayer locks the spectator camera on playerID at tick and forces
// the first person camera mode, then releases the lock MinTick ticks later
// so the viewer can move the camera to other players.
func (b *Builder) SpectatePlayer(tick int, playerID string) *Builder {
	b.add(tick, fmt.Sprintf("%s %s", cmdSpecLock, playerID))
	// Some demos leave the camera in free mode, where the lock alone has no
	// visible effect.
	b.add(tick, cmdSpecMode)
	return b.add(tick+MinTick, cmdSpecUnlock)
}

// StopPlayback ends the playback session at tick.
func (b *Builder) StopPlayback(tick int) *Builder {
	return b.add(tick, cmdDisconnect)
}

// PausePlayback pauses playback at tick. pause_playback is handled by the
// player plugin, not by the game itself.
func (b *Builder) PausePlayback(tick int) *Builder {
	return b.add(tick, cmdPausePlayback)
}

// Command schedules an arbitrary console command at tick. The command is
// written as given.
func (b *Builder) Command(tick int, command string) *Builder {
	return b.add(tick, command)
}

// Commit writes the scheduled actions to Path, replacing any existing file.
// When no action is scheduled it does nothing and the file at Path, if any,
// is left untouched. Calling Commit again rewrites the file with the current
// list.
func (b *Builder) Commit() error {
	if len(b.actions) == 0 {
		return nil
	}

	data, err := Encode(b.actions)
	if err != nil {
		return err
	}

	if err := b.writeFile(b.path, data, 0644); err != nil { //nolint:gosec // read by the game plugin
		return fmt.Errorf("failed to write actions file: %w", err)
	}

	return nil
}

func (b *Builder) add(tick int, command string) *Builder {
	b.actions = append(b.actions, Action{Tick: Clamp(tick), Cmd: command})
	return b
}
