package audio

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrPlayerUnavailable indicates no supported audio player was found on this system.
var ErrPlayerUnavailable = errors.New("no audio player available")

// Backend plays a sound file until it ends or ctx is cancelled.
type Backend interface {
	Play(ctx context.Context, path string) error
}

type playerCommand struct {
	name string
	args []string
}

var knownPlayers = []playerCommand{
	{name: "paplay"},
	{name: "pw-play"},
	{name: "afplay"},
	{name: "aplay", args: []string{"-q"}},
	{name: "ffplay", args: []string{"-nodisp", "-autoexit", "-loglevel", "quiet"}},
	{name: "play", args: []string{"-q"}},
}

type commandBackend struct {
	path string
	args []string
}

// NewCommandBackend resolves an external player. A non-empty preferred value is
// split into a command and its arguments and takes precedence over known players.
func NewCommandBackend(preferred string) (Backend, error) {
	if fields := strings.Fields(preferred); len(fields) > 0 {
		path, err := exec.LookPath(fields[0])
		if err != nil {
			return nil, fmt.Errorf("find player %s: %w", fields[0], ErrPlayerUnavailable)
		}
		return &commandBackend{path: path, args: fields[1:]}, nil
	}

	for _, player := range knownPlayers {
		path, err := exec.LookPath(player.name)
		if err == nil {
			return &commandBackend{path: path, args: player.args}, nil
		}
	}
	return nil, ErrPlayerUnavailable
}

func (backend *commandBackend) Play(ctx context.Context, path string) error {
	args := append(append([]string(nil), backend.args...), path)
	if err := exec.CommandContext(ctx, backend.path, args...).Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%s: %w", filepath.Base(backend.path), err)
	}
	return nil
}

func (backend *commandBackend) String() string {
	return strings.TrimSpace(filepath.Base(backend.path) + " " + strings.Join(backend.args, " "))
}
