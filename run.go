// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: seb3773

package splash

import (
	"os"
	"os/signal"
)

// Run is the all-in-one entry point for boot integrations: it applies the
// kill switch against cmdline before touching the surface, then constructs a
// player and plays the store to completion. A kill-switch exit returns nil,
// matching the convention that a deliberately disabled splash is a success.
func Run(cmdline string, cfg PlayerConfig) error {
	logger := cfg.Logger
	if logger == nil {
		logger = &NoOpLogger{}
	}

	if DisabledByCmdline(cmdline) {
		logger.Info("splash disabled on the kernel command line")
		return nil
	}

	player, err := NewPlayer(cfg)
	if err != nil {
		return err
	}
	return player.Run()
}

// CancelOnSignals cancels the token when any of the given signals arrives.
// The handler only sets the atomic flag; the player notices it at its next
// poll point, so no display work ever happens in signal context.
func CancelOnSignals(token *CancelToken, signals ...os.Signal) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, signals...)
	go func() {
		<-ch
		token.Cancel()
	}()
}
