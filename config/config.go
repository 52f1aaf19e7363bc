// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"gitlab.com/jaxnet/treehash/corelog"
	"gitlab.com/jaxnet/treehash/database/rootcache"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigFilename = "treehash.yaml"
	defaultDataDirname    = ".treehash"
	defaultLogDirname     = "logs"
	defaultLogLevel       = "info"
	defaultDBType         = "memory"

	// Sizes of the random vector hashed by treebench, and how many times.
	defaultBenchValues = 8192
	defaultBenchLoops  = 5000
)

// Config is the configuration shared by the treehash binaries.
type Config struct {
	ConfigFile string `yaml:"-" short:"C" long:"config" description:"Path to configuration file"`
	DataDir    string `yaml:"data_dir" short:"b" long:"datadir" description:"Directory to store the root cache"`
	DBType     string `yaml:"db_type" long:"dbtype" description:"Root cache backend {badger, leveldb, memory}"`
	LogLevel   string `yaml:"log_level" short:"d" long:"loglevel" description:"Logging level for all units {trace, debug, info, warn, error} -- You may also specify <unit>=<level>,<unit2>=<level>,... to set the log level for individual units"`

	Logging corelog.Config `yaml:"logging" group:"Logging Options"`
	Bench   BenchConfig    `yaml:"bench" group:"Benchmark Options"`
}

// BenchConfig drives cmd/treebench.
type BenchConfig struct {
	Values  int    `yaml:"values" long:"values" description:"Number of 32-byte values in the benchmarked vector"`
	Loops   int    `yaml:"loops" long:"loops" description:"Number of times the vector root is computed"`
	CSVFile string `yaml:"csv" long:"csv" description:"Write per-loop timings to this csv file"`
}

// Default returns a config with sane settings for every option.
func Default() Config {
	dataDir := defaultDataDir()
	logging := corelog.Config{}.Default()
	logging.Directory = ""

	return Config{
		ConfigFile: filepath.Join(dataDir, defaultConfigFilename),
		DataDir:    dataDir,
		DBType:     defaultDBType,
		LogLevel:   defaultLogLevel,
		Logging:    logging,
		Bench: BenchConfig{
			Values: defaultBenchValues,
			Loops:  defaultBenchLoops,
		},
	}
}

func defaultDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return defaultDataDirname
	}
	return filepath.Join(homeDir, defaultDataDirname)
}

// CleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func CleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			path = strings.Replace(path, "~", homeDir, 1)
		}
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but they variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}

// LoadFile decodes the yaml file at path over cfg.  Options missing from the
// file keep their current values.
func LoadFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "can not open config file")
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(cfg); err != nil {
		return errors.Wrapf(err, "can not decode config file %s", path)
	}
	return nil
}

// LoadConfig initializes and parses the config using a config file and command
// line options.
//
// The configuration proceeds as follows:
// 	1) Start with a default config with sane settings
// 	2) Pre-parse the command line to check for an alternative config file
// 	3) Load configuration file overwriting defaults with any specified options
// 	4) Parse CLI options and overwrite/add any specified options
//
// A missing config file is only an error when it was named explicitly.
// The remaining positional arguments are returned.
func LoadConfig(args []string) (*Config, []string, error) {
	cfg := Default()
	defaultConfigFile := cfg.ConfigFile

	// Pre-parse the command line options to see if an alternative config
	// file or data directory was specified.  Any errors aside from the
	// help message error can be ignored here since they will be caught by
	// the final parse below.
	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.HelpFlag|flags.IgnoreUnknown)
	if _, err := preParser.ParseArgs(args); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			return nil, nil, err
		}
	}

	configFile := preCfg.ConfigFile
	if configFile == defaultConfigFile && preCfg.DataDir != cfg.DataDir {
		configFile = filepath.Join(preCfg.DataDir, defaultConfigFilename)
	}
	configFile = CleanAndExpandPath(configFile)

	if _, err := os.Stat(configFile); err == nil {
		if err := LoadFile(configFile, &cfg); err != nil {
			return nil, nil, err
		}
	} else if !os.IsNotExist(err) || preCfg.ConfigFile != defaultConfigFile {
		return nil, nil, errors.Wrapf(err, "can not read config file %s", configFile)
	}

	// Parse command line options again to ensure they take precedence.
	parser := flags.NewParser(&cfg, flags.HelpFlag|flags.PassDoubleDash)
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}

	cfg.ConfigFile = configFile
	cfg.Normalize()

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	return &cfg, remainingArgs, nil
}

// Normalize expands the paths of the config.  An empty log directory is
// placed inside the data directory.
func (cfg *Config) Normalize() {
	cfg.DataDir = CleanAndExpandPath(cfg.DataDir)
	if cfg.Logging.Directory == "" {
		cfg.Logging.Directory = filepath.Join(cfg.DataDir, defaultLogDirname)
	}
	cfg.Logging.Directory = CleanAndExpandPath(cfg.Logging.Directory)
}

// Validate checks option values that can not be expressed in flag tags.
func (cfg *Config) Validate() error {
	if _, err := parseLevels(cfg.LogLevel); err != nil {
		return err
	}

	if !validDBType(cfg.DBType) {
		return errors.Errorf("the specified database type [%v] is invalid -- "+
			"supported types %v", cfg.DBType, rootcache.SupportedDrivers())
	}

	if cfg.Bench.Values <= 0 {
		return errors.Errorf("bench values must be positive, got %d", cfg.Bench.Values)
	}
	if cfg.Bench.Loops <= 0 {
		return errors.Errorf("bench loops must be positive, got %d", cfg.Bench.Loops)
	}
	return nil
}

// CachePath is the on-disk location of the root cache for DBType.
func (cfg *Config) CachePath() string {
	return filepath.Join(cfg.DataDir, "rootcache_"+cfg.DBType)
}

// OpenCache opens the root cache described by the config.
func (cfg *Config) OpenCache() (*rootcache.Cache, error) {
	store, err := rootcache.Open(cfg.DBType, cfg.CachePath())
	if err != nil {
		return nil, err
	}
	return rootcache.NewCache(store), nil
}

// validDBType returns whether or not dbType is a supported database type.
func validDBType(dbType string) bool {
	for _, knownType := range rootcache.SupportedDrivers() {
		if dbType == knownType {
			return true
		}
	}
	return false
}
