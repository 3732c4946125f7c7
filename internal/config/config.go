// Package config loads hexkit settings from a TOML file and HEXKIT_*
// environment variables. Environment values win over the file, and the
// file wins over Default.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/joshuapare/hexkit/hexfile/dirty"
	"github.com/joshuapare/hexkit/internal/format"
	"github.com/joshuapare/hexkit/internal/logger"
	"github.com/joshuapare/hexkit/internal/writer"
	"github.com/joshuapare/hexkit/pkg/hexedit"
)

// Config is the full set of user settings.
type Config struct {
	Editor  EditorConfig  `toml:"editor"`
	Storage StorageConfig `toml:"storage"`
	Logging LoggingConfig `toml:"logging"`
}

// EditorConfig controls the grid and structural edits.
type EditorConfig struct {
	Width         int    `toml:"width"`          // bytes per row
	Charset       string `toml:"charset"`        // ascii, latin1, cp437, cp1252
	MaxStructural int64  `toml:"max_structural"` // 0 = unlimited
	Fill          int    `toml:"fill"`           // value of inserted bytes, 0-255
}

// StorageConfig controls durability.
type StorageConfig struct {
	FlushMode        string `toml:"flush_mode"` // auto, data, full
	SyncBeforeRename bool   `toml:"sync_before_rename"`
	Backup           bool   `toml:"backup"`
	PreFault         bool   `toml:"prefault"`
}

// LoggingConfig mirrors logger.Options.
type LoggingConfig struct {
	Enabled bool   `toml:"enabled"`
	Level   string `toml:"level"`
	Dir     string `toml:"dir"`
}

// ParseError reports a malformed config file.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing config %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Editor: EditorConfig{
			Width:         format.DefaultWidth,
			Charset:       format.CharsetASCII.String(),
			MaxStructural: 1024,
		},
		Storage: StorageConfig{
			FlushMode:        dirty.FlushAuto.String(),
			SyncBeforeRename: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns ~/.config/hexkit/config.toml (or the platform
// equivalent). It returns "" when no config directory is known.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "hexkit", "config.toml")
}

// Load builds a Config from Default, the TOML file at path, and the
// environment, then validates it. A missing file is not an error and an
// empty path skips the file entirely.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := Parse(path, data, &cfg); err != nil {
				return cfg, err
			}
			logger.Debug("config loaded", "path", path)
		case os.IsNotExist(err):
			// File doesn't exist, not an error
		default:
			return cfg, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	if err := ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

// Parse decodes TOML data over cfg. Keys absent from data keep their
// current values.
func Parse(source string, data []byte, cfg *Config) error {
	if err := toml.Unmarshal(data, cfg); err != nil {
		return &ParseError{Path: source, Message: err.Error(), Err: err}
	}
	return nil
}

// Marshal renders cfg as TOML.
func Marshal(cfg Config) ([]byte, error) {
	return toml.Marshal(cfg)
}

// Save validates cfg and writes it to dst as TOML.
func Save(dst writer.Sink, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	data, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return dst.WriteAll(data)
}

// Validate rejects values the editor cannot use.
func (c Config) Validate() error {
	if c.Editor.Width < 1 || c.Editor.Width > 256 {
		return fmt.Errorf("%w: editor.width %d (want 1-256)", ErrInvalid, c.Editor.Width)
	}
	if _, err := format.ParseCharset(c.Editor.Charset); err != nil {
		return fmt.Errorf("%w: editor.charset: %v", ErrInvalid, err)
	}
	if c.Editor.MaxStructural < 0 {
		return fmt.Errorf("%w: editor.max_structural %d", ErrInvalid, c.Editor.MaxStructural)
	}
	if c.Editor.Fill < 0 || c.Editor.Fill > 0xFF {
		return fmt.Errorf("%w: editor.fill %d (want 0-255)", ErrInvalid, c.Editor.Fill)
	}
	if _, err := ParseFlushMode(c.Storage.FlushMode); err != nil {
		return fmt.Errorf("%w: storage.flush_mode: %v", ErrInvalid, err)
	}
	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level: %v", ErrInvalid, err)
	}
	return nil
}

// ParseFlushMode maps "auto", "data", or "full" onto a dirty.FlushMode.
func ParseFlushMode(name string) (dirty.FlushMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return dirty.FlushAuto, nil
	case "data", "data-only":
		return dirty.FlushDataOnly, nil
	case "full":
		return dirty.FlushFull, nil
	default:
		return dirty.FlushAuto, fmt.Errorf("unknown flush mode %q", name)
	}
}

// Charset returns the parsed editor charset. Call after Validate.
func (c Config) Charset() format.Charset {
	cs, _ := format.ParseCharset(c.Editor.Charset)
	return cs
}

// SessionOptions maps the config onto hexedit.Options.
func (c Config) SessionOptions() (hexedit.Options, error) {
	mode, err := ParseFlushMode(c.Storage.FlushMode)
	if err != nil {
		return hexedit.Options{}, err
	}
	return hexedit.Options{
		FlushMode:        mode,
		SyncBeforeRename: c.Storage.SyncBeforeRename,
		CreateBackup:     c.Storage.Backup,
		Fill:             byte(c.Editor.Fill),
		MaxStructural:    c.Editor.MaxStructural,
		PreFault:         c.Storage.PreFault,
	}, nil
}

// LoggerOptions maps the config onto logger.Options.
func (c Config) LoggerOptions() (logger.Options, error) {
	level, err := logger.ParseLevel(c.Logging.Level)
	if err != nil {
		return logger.Options{}, err
	}
	return logger.Options{
		Enabled: c.Logging.Enabled,
		LogDir:  c.Logging.Dir,
		Level:   level,
	}, nil
}
