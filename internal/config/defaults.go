// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults applied when no source sets a value.
const (
	DefaultLockTTL           = 30 * time.Minute
	DefaultCallTimeout       = 15 * time.Second
	DefaultRequestTimeout    = 20 * time.Second
	DefaultTokenDuration     = 5 * time.Minute
	DefaultLockWatchInterval = 5 * time.Second
	DefaultDecimals          = 8
	DefaultBackend           = BackendSQLite
	DefaultCodec             = "json"
	DefaultDSN               = "peridot-vault.db"
	DefaultTokenIssuer       = "peridot-vault"
)

// Storage backends accepted by Storage.Backend.
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendFile     = "file"
	BackendMemory   = "memory"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LockTTL: DefaultLockTTL,
		},
		Storage: Storage{
			Backend:  DefaultBackend,
			DSN:      DefaultDSN,
			Codec:    DefaultCodec,
			FilePath: "peridot-vault.json",
		},
		Adapter: Adapter{
			RequestTimeout: DefaultRequestTimeout,
			TokenIssuer:    DefaultTokenIssuer,
			TokenDuration:  DefaultTokenDuration,
		},
		Ledger: Ledger{
			CallTimeout: DefaultCallTimeout,
			Decimals:    DefaultDecimals,
		},
		Workers: Workers{
			LockWatchInterval: DefaultLockWatchInterval,
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			GRPCAddress:    "localhost:9090",
			RequestTimeout: DefaultRequestTimeout,
			TokenIssuer:    DefaultTokenIssuer,
		},
		Simulator: Simulator{
			Fee:      10_000,
			Decimals: DefaultDecimals,
			Symbol:   "PER",
			Name:     "Peridot Token",
		},
	}
}
