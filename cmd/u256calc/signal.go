// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2015-2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"
	"os/signal"
)

// interruptSignals defines the signals that stop a long running self test.
// This may be modified during init depending on the platform.
var interruptSignals = []os.Signal{os.Interrupt}

// interruptListener listens for OS signals such as SIGINT (Ctrl+C) and returns
// a context that is canceled when one is received.  Subsequent signals are
// reported so the user knows the process is stopping and is not hung.
func interruptListener() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		interruptChannel := make(chan os.Signal, 1)
		signal.Notify(interruptChannel, interruptSignals...)

		sig := <-interruptChannel
		log.Infof("Received signal (%s).  Stopping...", sig)
		cancel()

		for sig := range interruptChannel {
			log.Infof("Received signal (%s).  Already stopping...", sig)
		}
	}()

	return ctx
}

// interruptRequested returns true when the passed context was canceled.
func interruptRequested(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
	}

	return false
}
