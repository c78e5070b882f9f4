// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2025 The Embercoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"os/signal"
	"syscall"
)

// interruptListener returns a channel that is closed when either SIGINT
// (Ctrl+C) or SIGTERM is received.
func interruptListener() <-chan struct{} {
	c := make(chan struct{})
	go func() {
		interruptChannel := make(chan os.Signal, 1)
		signal.Notify(interruptChannel, os.Interrupt, syscall.SIGTERM)

		sig := <-interruptChannel
		embrLog.Infof("Received signal (%s).  Shutting down...", sig)
		close(c)

		// Keep draining so repeated signals don't kill the process
		// before the shutdown path finishes.
		for {
			sig := <-interruptChannel
			embrLog.Infof("Received signal (%s).  Already "+
				"shutting down...", sig)
		}
	}()

	return c
}

// interruptRequested returns true when the channel returned by
// interruptListener was closed.  It simplifies early shutdown slightly
// since the caller is not required to set up a select statement.
func interruptRequested(interrupted <-chan struct{}) bool {
	select {
	case <-interrupted:
		return true
	default:
	}

	return false
}
