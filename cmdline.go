// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: seb3773

package splash

import (
	"os"
	"strings"
)

// Kernel command line tokens that suppress the splash entirely.
const (
	cmdlineNoSplash = "nosplash"
	cmdlineDisable  = "xbootsplash=0"
)

// DisabledByCmdline reports whether the boot command line asks for the
// splash to be skipped. Matching is on whole whitespace-separated tokens,
// so "nosplashx" or "xbootsplash=01" do not disable.
func DisabledByCmdline(cmdline string) bool {
	for _, token := range strings.Fields(cmdline) {
		if token == cmdlineNoSplash || token == cmdlineDisable {
			return true
		}
	}
	return false
}

// DisabledByBootCmdline checks the running kernel's command line. An
// unreadable /proc/cmdline counts as not disabled, since failing open would
// hide the splash on perfectly healthy systems.
func DisabledByBootCmdline() bool {
	data, err := os.ReadFile("/proc/cmdline")
	if err != nil {
		return false
	}
	return DisabledByCmdline(string(data))
}
