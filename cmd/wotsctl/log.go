package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/btcsuite/btclog"
	"github.com/jrick/logrotate/rotator"
	"github.com/ltcsuite/winternitz/hdwots"
	"github.com/ltcsuite/winternitz/keystore"
	"github.com/ltcsuite/winternitz/sigcache"
	"github.com/ltcsuite/winternitz/wots"
)

// logWriter implements an io.Writer that outputs to both standard error
// and the write-end pipe of an initialized log rotator.  Standard output is
// left to command results.
type logWriter struct{}

func (logWriter) Write(p []byte) (n int, err error) {
	os.Stderr.Write(p)
	if logRotator != nil {
		logRotator.Write(p)
	}
	return len(p), nil
}

// Loggers per subsystem.  A single backend logger is created and all
// subsystem loggers created from it will write to the backend.  When adding
// new subsystems, add the subsystem logger variable here and to the
// subsystemLoggers map.
//
// Loggers can not be used before the log rotator has been initialized with
// a log file.  This must be performed early during application startup by
// calling initLogRotator.
var (
	// backendLog is the logging backend used to create all subsystem
	// loggers.
	backendLog = btclog.NewBackend(logWriter{})

	// logRotator is one of the logging outputs.  It should be closed on
	// application shutdown.
	logRotator *rotator.Rotator

	ctlLog  = backendLog.Logger("CTL")
	hdwtLog = backendLog.Logger("HDWT")
	kstrLog = backendLog.Logger("KSTR")
	scchLog = backendLog.Logger("SCCH")
	wotsLog = backendLog.Logger("WOTS")
)

// Initialize package-global logger variables.
func init() {
	hdwots.UseLogger(hdwtLog)
	keystore.UseLogger(kstrLog)
	sigcache.UseLogger(scchLog)
	wots.UseLogger(wotsLog)
}

// subsystemLoggers maps each subsystem identifier to its associated logger.
var subsystemLoggers = map[string]btclog.Logger{
	"CTL":  ctlLog,
	"HDWT": hdwtLog,
	"KSTR": kstrLog,
	"SCCH": scchLog,
	"WOTS": wotsLog,
}

// initLogRotator initializes the logging rotater to write logs to logFile
// and create roll files in the same directory.
func initLogRotator(logFile string) error {
	logDir, _ := filepath.Split(logFile)
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		return fmt.Errorf("failed to create file rotator: %w", err)
	}

	logRotator = r
	return nil
}

func closeLogRotator() {
	if logRotator != nil {
		logRotator.Close()
		logRotator = nil
	}
}

// setLogLevel sets the logging level for provided subsystem.  Invalid
// subsystems are ignored.
func setLogLevel(subsystemID string, logLevel string) {
	logger, ok := subsystemLoggers[subsystemID]
	if !ok {
		return
	}

	level, _ := btclog.LevelFromString(logLevel)
	logger.SetLevel(level)
}

// supportedSubsystems returns a sorted slice of the supported subsystems for
// logging purposes.
func supportedSubsystems() []string {
	subsystems := make([]string, 0, len(subsystemLoggers))
	for subsysID := range subsystemLoggers {
		subsystems = append(subsystems, subsysID)
	}
	sort.Strings(subsystems)
	return subsystems
}

func validLogLevel(logLevel string) bool {
	_, ok := btclog.LevelFromString(logLevel)
	return ok
}

// validLogLevels checks a debug level specification of either a single
// level or comma separated <subsystem>=<level> pairs.
func validLogLevels(debugLevel string) bool {
	if !strings.Contains(debugLevel, "=") {
		return validLogLevel(debugLevel)
	}
	for _, pair := range strings.Split(debugLevel, ",") {
		fields := strings.Split(pair, "=")
		if len(fields) != 2 || !validLogLevel(fields[1]) {
			return false
		}
		if _, ok := subsystemLoggers[fields[0]]; !ok {
			return false
		}
	}
	return true
}

// setLogLevels applies a debug level specification accepted by
// validLogLevels.
func setLogLevels(debugLevel string) {
	if !strings.Contains(debugLevel, "=") {
		for _, subsystemID := range supportedSubsystems() {
			setLogLevel(subsystemID, debugLevel)
		}
		return
	}
	for _, pair := range strings.Split(debugLevel, ",") {
		fields := strings.Split(pair, "=")
		setLogLevel(fields[0], fields[1])
	}
}
