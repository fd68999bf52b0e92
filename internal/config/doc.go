// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the wallet client and the ledger simulator.
//
// Configuration is assembled from multiple sources. For every field the
// first source that sets a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON or YAML config file (path from CONFIG or -config)
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig], [GetClientConfig] and
// [GetServerConfig].
package config
