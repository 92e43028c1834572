package notify

import (
	"errors"
	"log/slog"
	"os/exec"
	"runtime"
)

// candidateCommands is the preferred audio player order for each platform
// when no command is configured.
var candidateCommands = map[string][]string{
	"darwin": {"afplay"},
	"linux":  {"paplay", "aplay", "ffplay"},
}

// Player launches an external command to play a sound file. Launches are
// fire-and-forget: the process is started and never waited on.
type Player struct {
	command string // configured player command, empty for auto-detection
	sounds  map[Sound]string
	logger  *slog.Logger
}

// NewPlayer builds a player for the two fixed sound files. Either path may
// be empty; Play on a missing kind reports false from Has and the caller
// falls back to the bell.
func NewPlayer(command, createdPath, completedPath string, logger *slog.Logger) *Player {
	if logger == nil {
		logger = slog.Default()
	}
	sounds := make(map[Sound]string)
	if createdPath != "" {
		sounds[SoundCreated] = createdPath
	}
	if completedPath != "" {
		sounds[SoundCompleted] = completedPath
	}
	return &Player{command: command, sounds: sounds, logger: logger}
}

// Has reports whether a sound file is configured for kind.
func (p *Player) Has(kind Sound) bool {
	_, ok := p.sounds[kind]
	return ok
}

// Play starts playback of the sound for kind and returns without waiting.
func (p *Player) Play(kind Sound) error {
	path, ok := p.sounds[kind]
	if !ok {
		return nil
	}

	command := p.command
	if command == "" {
		detected, err := detectPlayer()
		if err != nil {
			return err
		}
		command = detected
	}

	p.logger.Debug("playing sound", "command", command, "path", path)
	return exec.Command(command, path).Start()
}

// detectPlayer walks the platform's candidate chain and returns the first
// command present in PATH.
func detectPlayer() (string, error) {
	candidates, ok := candidateCommands[runtime.GOOS]
	if !ok {
		candidates = candidateCommands["linux"]
	}
	for _, cmd := range candidates {
		if _, err := exec.LookPath(cmd); err == nil {
			return cmd, nil
		}
	}
	return "", errors.New("no audio player found")
}
