// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package corelog

import (
	"fmt"
	"io"
	"os"
	"path"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	Disabled zerolog.Logger

	DefaultLevel   = zerolog.InfoLevel
	DefaultLogFile = "treehash.log"
)

func init() {
	Disabled = zerolog.Nop()
}

// Config for logging
type Config struct {
	// Disable console logging
	DisableConsoleLog bool `yaml:"disable_console_log" long:"nostdout" description:"Disable console logging"`
	// LogsAsJson makes the log framework log JSON
	LogsAsJson bool `yaml:"logs_as_json" long:"logjson" description:"Write console logs as JSON"`
	// FileLoggingEnabled makes the framework log to a file
	// the fields below can be skipped if this value is false!
	FileLoggingEnabled bool `yaml:"file_logging_enabled" long:"logfile" description:"Also write logs to a rolling file"`
	// Directory to log to to when filelogging is enabled
	Directory string `yaml:"directory" long:"logdir" description:"Directory to log output"`
	// Filename is the name of the logfile which will be placed inside the directory
	Filename string `yaml:"filename" long:"logfilename" description:"Name of the rolling log file"`
	// MaxSize the max size in MB of the logfile before it's rolled
	MaxSize int `yaml:"max_size" long:"logmaxsize" description:"Max size in MB of a log file before it is rolled"`
	// MaxBackups the max number of rolled files to keep
	MaxBackups int `yaml:"max_backups" long:"logmaxbackups" description:"Max number of rolled files to keep"`
	// MaxAge the max age in days to keep a logfile
	MaxAge int `yaml:"max_age" long:"logmaxage" description:"Max age in days to keep a log file"`

	// output overrides the console destination; tests point it at a buffer.
	output io.Writer
}

func (Config) Default() Config {
	return Config{
		DisableConsoleLog:  false,
		LogsAsJson:         false,
		FileLoggingEnabled: false,
		Directory:          "logs",
		Filename:           DefaultLogFile,
		MaxSize:            150,
		MaxBackups:         3,
		MaxAge:             28,
	}
}

// WithOutput returns a copy of the config that writes console output to w
// instead of os.Stderr/os.Stdout.
func (config Config) WithOutput(w io.Writer) Config {
	config.output = w
	return config
}

// ParseLevel converts a level name such as "debug" into a zerolog level.
// An empty name yields DefaultLevel.
func ParseLevel(name string) (zerolog.Level, error) {
	if name == "" {
		return DefaultLevel, nil
	}
	return zerolog.ParseLevel(strings.ToLower(name))
}

// New builds a logger for the given unit.  Console output is human readable
// unless LogsAsJson is set; file output is always JSON.
func New(unit string, logLevel zerolog.Level, config Config) zerolog.Logger {
	var writers []io.Writer
	if !config.DisableConsoleLog && !config.LogsAsJson {
		dst := config.output
		if dst == nil {
			dst = os.Stderr
		}
		out := zerolog.ConsoleWriter{Out: dst, NoColor: config.output != nil}
		out.TimeFormat = time.RFC3339
		out.FormatLevel = func(i interface{}) string {
			return strings.ToUpper(fmt.Sprintf("| %-6s| %s |", i, unit))
		}
		out.FormatMessage = func(i interface{}) string {
			return fmt.Sprintf("%-6s  ", i)
		}
		writers = append(writers, out)
	}
	if !config.DisableConsoleLog && config.LogsAsJson {
		dst := config.output
		if dst == nil {
			dst = os.Stdout
		}
		writers = append(writers, dst)
	}
	if config.FileLoggingEnabled {
		if file := newRollingFile(config); file != nil {
			writers = append(writers, file)
		}
	}
	if len(writers) == 0 {
		return Disabled
	}

	mw := io.MultiWriter(writers...)

	logger := zerolog.New(mw).
		Level(logLevel).
		With().
		Str("app", "treehash").
		Str("unit", unit).
		Timestamp().
		Logger()

	logger.Trace().
		Bool("fileLogging", config.FileLoggingEnabled).
		Bool("jsonLogOutput", config.LogsAsJson).
		Str("logDirectory", config.Directory).
		Str("fileName", config.Filename).
		Int("maxSizeMB", config.MaxSize).
		Int("maxBackups", config.MaxBackups).
		Int("maxAgeInDays", config.MaxAge).
		Msg("logging configured")

	return logger
}

func newRollingFile(config Config) io.Writer {
	if err := os.MkdirAll(config.Directory, 0744); err != nil {
		fmt.Fprintf(os.Stderr, "can't create log directory %s: %v\n", config.Directory, err)
		return nil
	}

	return &lumberjack.Logger{
		Filename:   path.Join(config.Directory, config.Filename),
		MaxBackups: config.MaxBackups, // files
		MaxSize:    config.MaxSize,    // megabytes
		MaxAge:     config.MaxAge,     // days
	}
}
