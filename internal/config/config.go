// Package config handles the configuration directory, environment overrides
// and the debug logger.
package config

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	// AppName is the application directory name.
	AppName = "todo"

	// OAuthClientFile is the OAuth client credentials filename.
	OAuthClientFile = "oauth_client.json"

	// TokenFile is the stored OAuth token filename.
	TokenFile = "token.json"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// GoogleList is the Google Tasks list publish targets when --list is not given.
	// Empty means the default list.
	GoogleList string

	log *log.Logger
}

// env is the environment overlay read by cleanenv.
type env struct {
	Dir        string `env:"TODO_CONFIG_DIR"`
	Debug      bool   `env:"TODO_DEBUG" env-default:"false"`
	Quiet      bool   `env:"TODO_QUIET" env-default:"false"`
	GoogleList string `env:"TODO_GOOGLE_LIST"`
}

// New creates a Config from the environment and the given config directory.
// A non-empty configDir wins over TODO_CONFIG_DIR; if both are empty,
// XDG_CONFIG_HOME/todo or $HOME/.config/todo is used.
func New(configDir string) (*Config, error) {
	var e env
	if err := cleanenv.ReadEnv(&e); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}

	dir := configDir
	if dir == "" {
		dir = e.Dir
	}
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{
		Dir:        dir,
		Debug:      e.Debug,
		Quiet:      e.Quiet,
		GoogleList: e.GoogleList,
	}, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// SetLogOutput routes debug lines to w. Nothing is written unless Debug is set.
func (c *Config) SetLogOutput(w io.Writer) {
	c.log = log.New(w, "debug: ", 0)
}

// Debugf writes a debug line when debug logging is enabled.
func (c *Config) Debugf(format string, args ...any) {
	if !c.Debug || c.log == nil {
		return
	}
	c.log.Printf(format, args...)
}

// OAuthClientPath returns the path to the OAuth client credentials file.
func (c *Config) OAuthClientPath() string {
	return filepath.Join(c.Dir, OAuthClientFile)
}

// TokenPath returns the path to the stored OAuth token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasOAuthClient checks if the OAuth client credentials file exists.
func (c *Config) HasOAuthClient() bool {
	_, err := os.Stat(c.OAuthClientPath())
	return err == nil
}

// HasToken checks if the token file exists.
func (c *Config) HasToken() bool {
	_, err := os.Stat(c.TokenPath())
	return err == nil
}

// RemoveToken deletes the token file.
func (c *Config) RemoveToken() error {
	return os.Remove(c.TokenPath())
}
