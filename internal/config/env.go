package config

import (
	"fmt"
	"strconv"
	"strings"
)

// EnvPrefix starts every recognised environment variable.
const EnvPrefix = "HEXKIT_"

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

type envSetter func(c *Config, v string) error

// envMapping maps env var -> config field.
var envMapping = map[string]envSetter{
	"HEXKIT_EDITOR_WIDTH":               intSetter(func(c *Config, n int64) { c.Editor.Width = int(n) }),
	"HEXKIT_EDITOR_CHARSET":             stringSetter(func(c *Config, s string) { c.Editor.Charset = s }),
	"HEXKIT_EDITOR_MAX_STRUCTURAL":      intSetter(func(c *Config, n int64) { c.Editor.MaxStructural = n }),
	"HEXKIT_EDITOR_FILL":                intSetter(func(c *Config, n int64) { c.Editor.Fill = int(n) }),
	"HEXKIT_STORAGE_FLUSH_MODE":         stringSetter(func(c *Config, s string) { c.Storage.FlushMode = s }),
	"HEXKIT_STORAGE_SYNC_BEFORE_RENAME": boolSetter(func(c *Config, b bool) { c.Storage.SyncBeforeRename = b }),
	"HEXKIT_STORAGE_BACKUP":             boolSetter(func(c *Config, b bool) { c.Storage.Backup = b }),
	"HEXKIT_STORAGE_PREFAULT":           boolSetter(func(c *Config, b bool) { c.Storage.PreFault = b }),
	"HEXKIT_LOGGING_ENABLED":            boolSetter(func(c *Config, b bool) { c.Logging.Enabled = b }),
	"HEXKIT_LOGGING_LEVEL":              stringSetter(func(c *Config, s string) { c.Logging.Level = s }),
	"HEXKIT_LOGGING_DIR":                stringSetter(func(c *Config, s string) { c.Logging.Dir = s }),
}

// EnvVars returns the recognised variable names.
func EnvVars() []string {
	names := make([]string, 0, len(envMapping))
	for name := range envMapping {
		names = append(names, name)
	}
	return names
}

// ApplyEnv overrides cfg with every mapped variable lookup finds. Empty
// values are treated as set.
func ApplyEnv(cfg *Config, lookup LookupFunc) error {
	for name, set := range envMapping {
		v, ok := lookup(name)
		if !ok {
			continue
		}
		if err := set(cfg, v); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func stringSetter(f func(*Config, string)) envSetter {
	return func(c *Config, v string) error {
		f(c, v)
		return nil
	}
}

func intSetter(f func(*Config, int64)) envSetter {
	return func(c *Config, v string) error {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 0, 64)
		if err != nil {
			return fmt.Errorf("%w: %q is not an integer", ErrInvalid, v)
		}
		f(c, n)
		return nil
	}
}

func boolSetter(f func(*Config, bool)) envSetter {
	return func(c *Config, v string) error {
		b, err := parseBool(v)
		if err != nil {
			return err
		}
		f(c, b)
		return nil
	}
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0", "":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q is not a boolean", ErrInvalid, s)
	}
}
