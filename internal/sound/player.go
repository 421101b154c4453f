// Package sound provides fire-and-forget playback of short audio cues.
package sound

import (
	"os/exec"
	"runtime"

	"go.uber.org/zap"
)

// Player plays a single configured audio asset through whatever command
// line player the host provides. Playback failures are logged and
// swallowed; they are never surfaced to the user.
type Player struct {
	path    string
	enabled bool
	logger  *zap.Logger
}

// New creates a Player for the given asset path. A nil logger disables
// diagnostics.
func New(path string, enabled bool, logger *zap.Logger) *Player {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Player{path: path, enabled: enabled, logger: logger}
}

// Play requests playback of the configured asset and returns
// immediately. The cue is best-effort.
func (p *Player) Play() {
	if !p.enabled || p.path == "" {
		return
	}
	go p.run()
}

func (p *Player) run() {
	name, args := playerCommand(p.path)
	if name == "" {
		p.logger.Warn("no audio player available", zap.String("os", runtime.GOOS))
		return
	}
	if err := exec.Command(name, args...).Run(); err != nil {
		p.logger.Warn("audio play failed",
			zap.String("player", name),
			zap.String("asset", p.path),
			zap.Error(err),
		)
	}
}

// playerCommand picks the platform audio player for the asset.
func playerCommand(path string) (string, []string) {
	switch runtime.GOOS {
	case "darwin":
		return "afplay", []string{path}
	case "linux":
		for _, candidate := range []string{"paplay", "aplay", "mpg123"} {
			if _, err := exec.LookPath(candidate); err == nil {
				return candidate, []string{path}
			}
		}
		return "", nil
	default:
		return "", nil
	}
}
