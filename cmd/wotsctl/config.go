package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
	"github.com/ltcsuite/ltcd/ltcutil"
	"github.com/ltcsuite/winternitz/wots"
)

const (
	defaultConfigFilename  = "wotsctl.conf"
	defaultKeystoreDir     = "keystore"
	defaultLogDirname      = "logs"
	defaultLogFilename     = "wotsctl.log"
	defaultLogLevel        = "info"
	defaultHash            = "keccak256"
	defaultSigCacheMaxSize = 100
)

var (
	defaultHomeDir    = ltcutil.AppDataDir("wotsctl", false)
	defaultConfigFile = filepath.Join(defaultHomeDir, defaultConfigFilename)
	defaultDataDir    = defaultHomeDir
	defaultLogDir     = filepath.Join(defaultHomeDir, defaultLogDirname)
)

// config defines the configuration options for wotsctl.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ConfigFile string `short:"C" long:"configfile" description:"Path to configuration file"`
	DataDir    string `short:"b" long:"datadir" description:"Directory to store the keystore"`
	LogDir     string `long:"logdir" description:"Directory to log output"`
	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems"`
	Hash       string `long:"hash" description:"Hash function keys are built on {keccak256, sha256, blake3}"`
	HexMessage bool   `long:"hexmsg" description:"Messages are given as hex instead of text"`

	SigCacheMaxSize uint32 `long:"sigcachemaxsize" description:"The maximum number of entries in the signature verification cache"`

	hasher wots.Hasher
}

func defaultConfig() *config {
	return &config{
		ConfigFile: defaultConfigFile,
		DataDir:    defaultDataDir,
		LogDir:     defaultLogDir,
		DebugLevel: defaultLogLevel,
		Hash:       defaultHash,

		SigCacheMaxSize: defaultSigCacheMaxSize,
	}
}

// loadConfig fills the parser's config from, in increasing order of
// precedence, the defaults, the config file and the command line, and then
// runs the selected command.  The config file location is taken from a first pass
// over the command line so it can itself be overridden there.
func loadConfig(parser *flags.Parser, args []string) error {
	preCfg := defaultConfig()
	preParser := flags.NewParser(preCfg, flags.IgnoreUnknown)
	if _, err := preParser.ParseArgs(args); err != nil {
		return err
	}

	if _, err := os.Stat(preCfg.ConfigFile); err == nil {
		err := flags.NewIniParser(parser).ParseFile(preCfg.ConfigFile)
		if err != nil {
			return fmt.Errorf("error parsing config file: %w", err)
		}
	} else if preCfg.ConfigFile != defaultConfigFile {
		return fmt.Errorf("config file %s: %w", preCfg.ConfigFile, err)
	}

	_, err := parser.ParseArgs(args)
	return err
}

// validate resolves derived settings once all sources have been parsed.
func (cfg *config) validate() error {
	h, err := wots.HasherByName(cfg.Hash)
	if err != nil {
		return err
	}
	cfg.hasher = h

	cfg.DataDir = cleanAndExpandPath(cfg.DataDir)
	cfg.LogDir = cleanAndExpandPath(cfg.LogDir)

	if !validLogLevels(cfg.DebugLevel) {
		return fmt.Errorf("invalid debug level %q", cfg.DebugLevel)
	}
	return nil
}

func (cfg *config) keystorePath() string {
	return filepath.Join(cfg.DataDir, defaultKeystoreDir)
}

func (cfg *config) message(s string) ([]byte, error) {
	if !cfg.HexMessage {
		return []byte(s), nil
	}
	return hex.DecodeString(s)
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return filepath.Clean(os.ExpandEnv(path))
}
