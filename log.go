// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2025 The Embercoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/btcsuite/btclog"
	"github.com/jrick/logrotate/rotator"

	"github.com/embercoin/go-embercoin/blockchain"
	"github.com/embercoin/go-embercoin/mempool"
	"github.com/embercoin/go-embercoin/mining"
	"github.com/embercoin/go-embercoin/txscript"
)

// logWriter implements an io.Writer that outputs to standard output and
// the write-end of an initialized log rotator.
type logWriter struct{}

func (logWriter) Write(p []byte) (n int, err error) {
	os.Stdout.Write(p)
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
// Loggers always write to standard output.  Output is also written to a log
// file once initLogRotator has been called, which only happens when a log
// file is configured.
var (
	// backendLog is the logging backend used to create all subsystem
	// loggers.  It writes through logWriter, which skips the log rotator
	// while it is unset.
	backendLog = btclog.NewBackend(logWriter{})

	// logRotator is one of the logging outputs.  It should be closed on
	// application shutdown.
	logRotator *rotator.Rotator

	embrLog = backendLog.Logger("EMBR")
	chanLog = backendLog.Logger("CHAN")
	txmpLog = backendLog.Logger("TXMP")
	minrLog = backendLog.Logger("MINR")
	scrpLog = backendLog.Logger("SCRP")
)

// Initialize package-global logger variables.
func init() {
	blockchain.UseLogger(chanLog)
	mempool.UseLogger(txmpLog)
	mining.UseLogger(minrLog)
	txscript.UseLogger(scrpLog)
}

// subsystemLoggers maps each subsystem identifier to its associated logger.
var subsystemLoggers = map[string]btclog.Logger{
	"EMBR": embrLog,
	"CHAN": chanLog,
	"TXMP": txmpLog,
	"MINR": minrLog,
	"SCRP": scrpLog,
}

// initLogRotator initializes the logging rotater to write logs to logFile
// and create roll files in the same directory.  It must be called before
// the package-global log rotater variables are used.
func initLogRotator(logFile string) error {
	logDir, _ := filepath.Split(logFile)
	if logDir != "" {
		if err := os.MkdirAll(logDir, 0700); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		return fmt.Errorf("failed to create file rotator: %w", err)
	}

	logRotator = r
	return nil
}

// setLogLevels sets the log level for all subsystem loggers to the passed
// level.  It returns an error if the level is invalid.
func setLogLevels(logLevel string) error {
	level, ok := btclog.LevelFromString(logLevel)
	if !ok {
		return fmt.Errorf("invalid log level %q", logLevel)
	}
	for _, logger := range subsystemLoggers {
		logger.SetLevel(level)
	}
	return nil
}
