// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command named by args and blocks until it returns.
	Run(ctx context.Context, args []string) error
}

// Prompter reads interactive input.
type Prompter interface {
	// ReadPassword reads a line without echoing it.
	ReadPassword(prompt string) (string, error)
	// ReadLine reads one visible line.
	ReadLine(prompt string) (string, error)
}
