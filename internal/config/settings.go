package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/tomz197/rocketraid/internal/loop/config"
	"github.com/tomz197/rocketraid/internal/object"
)

// ErrInvalidArena is returned for an arena with a non-positive side.
var ErrInvalidArena = errors.New("invalid arena")

// Settings holds everything a host reads from its environment.
type Settings struct {
	Arena    object.Arena
	LogLevel log.Level
	LogFile  string
	Audio    bool

	SSHHost    string
	SSHPort    string
	SSHHostKey string
}

// Defaults for the SSH host.
const (
	DefaultSSHHost    = "::"
	DefaultSSHPort    = "2222"
	DefaultSSHHostKey = "/app/keys/host_key"
)

// FromEnv builds Settings from the environment, falling back to defaults for
// unset variables.
func FromEnv() (Settings, error) {
	s := Settings{
		LogFile:    GetEnv("LOG_FILE", ""),
		SSHHost:    GetEnv("SSH_HOST", DefaultSSHHost),
		SSHPort:    GetEnv("SSH_PORT", DefaultSSHPort),
		SSHHostKey: GetEnv("SSH_HOST_KEY", DefaultSSHHostKey),
	}

	var err error
	if s.Arena.Width, err = GetEnvInt("ARENA_WIDTH", config.ArenaWidth); err != nil {
		return Settings{}, err
	}
	if s.Arena.Height, err = GetEnvInt("ARENA_HEIGHT", config.ArenaHeight); err != nil {
		return Settings{}, err
	}
	if err := ValidateArena(s.Arena); err != nil {
		return Settings{}, err
	}

	level := GetEnv("LOG_LEVEL", "")
	if level == "" {
		level = "info"
	}
	if s.LogLevel, err = log.ParseLevel(level); err != nil {
		return Settings{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	if s.Audio, err = GetEnvBool("AUDIO", true); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// ValidateArena reports ErrInvalidArena unless both sides are positive.
func ValidateArena(a object.Arena) error {
	if !a.Valid() {
		return fmt.Errorf("%w: %dx%d", ErrInvalidArena, a.Width, a.Height)
	}
	return nil
}
