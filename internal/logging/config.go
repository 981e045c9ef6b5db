package logging

import (
	"os"
	"path/filepath"

	"github.com/cyberarsenal/cyberarsenal/internal/config"
)

const filePrefix = "cyberarsenal_"

// Config holds logging configuration.
type Config struct {
	Enabled  bool
	Level    string
	MaxFiles int // log files kept in the log directory
	Command  string
	PID      int
}

// DefaultConfig returns logging disabled at info level.
func DefaultConfig() Config {
	return Config{
		Level:    "info",
		MaxFiles: 10,
		Command:  filepath.Base(os.Args[0]),
		PID:      os.Getpid(),
	}
}

// FromGlobalConfig reads the logging_* keys. debug=true forces debug level.
func FromGlobalConfig() Config {
	cfg := DefaultConfig()
	cfg.Enabled = config.GetBool("logging_enabled", false)
	cfg.Level = config.Get("logging_level", "info")
	cfg.MaxFiles = config.GetInt("logging_max_files", 10)
	if config.GetBool("debug", false) {
		cfg.Level = "debug"
	}
	return cfg
}

// LogDir returns {state_dir}/logs when it is writable and
// {TMPDIR}/cyberarsenal/logs otherwise.
func LogDir() (string, error) {
	if stateDir := config.Get("state_dir", ""); stateDir != "" {
		dir := filepath.Join(stateDir, "logs")
		if err := os.MkdirAll(dir, 0o700); err == nil && writable(dir) {
			return dir, nil
		}
	}
	dir := filepath.Join(os.TempDir(), "cyberarsenal", "logs")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return dir, nil
}

func writable(dir string) bool {
	f, err := os.CreateTemp(dir, ".write_test")
	if err != nil {
		return false
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return true
}
