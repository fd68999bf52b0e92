// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from environment
// variables, command-line flags, and an optional config file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the session-lock secret, the lock TTL and the request
	// integrity key.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the key-value backend that holds the
	// wallet record and the session lock.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter configures the outbound ledger gateway and purchase clients.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Ledger holds allowance-negotiation and payment settings.
	Ledger Ledger `envPrefix:"LEDGER_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// Server holds listen addresses and auth settings of the ledger simulator.
	Server Server `envPrefix:"SERVER_"`

	// Simulator seeds the in-memory ledger.
	Simulator Simulator `envPrefix:"SIMULATOR_"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG"`
}

// App holds application-level security settings.
type App struct {
	// LockSecret is the process secret from which the session key that wraps
	// the unlock password is derived. Required by the client.
	// Env: APP_LOCK_SECRET
	LockSecret string `env:"LOCK_SECRET"`

	// LockTTL is how long an unlock session stays open (default 30m).
	// Env: APP_LOCK_TTL
	LockTTL time.Duration `env:"LOCK_TTL"`

	// HashKey is the HMAC key for the HashSHA256 request header.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is reported by the simulator's /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage configures the key-value backend.
type Storage struct {
	// Backend is one of "sqlite" (default), "postgres", "redis", "file" or
	// "memory".
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	// DSN is the sqlite file path or the postgres connection string.
	// Env: STORAGE_DSN
	DSN string `env:"DSN"`

	// RedisURL is a redis:// URL used by the redis backend.
	// Env: STORAGE_REDIS_URL
	RedisURL string `env:"REDIS_URL"`

	// FilePath is the JSON document used by the file backend.
	// Env: STORAGE_FILE_PATH
	FilePath string `env:"FILE_PATH"`

	// Codec is the record serialisation: "json" (default) or "cbor".
	// Env: STORAGE_CODEC
	Codec string `env:"CODEC"`

	// KeyPrefix namespaces keys in shared backends (redis).
	// Env: STORAGE_KEY_PREFIX
	KeyPrefix string `env:"KEY_PREFIX"`
}

// Adapter configures outbound HTTP clients.
type Adapter struct {
	// Address is the ledger gateway base URL, e.g. "http://localhost:8080".
	// Env: ADAPTER_ADDRESS
	Address string `env:"ADDRESS"`

	// PurchaseAddress is the spender's purchase endpoint base URL.
	// Env: ADAPTER_PURCHASE_ADDRESS
	PurchaseAddress string `env:"PURCHASE_ADDRESS"`

	// RequestTimeout bounds a single HTTP round trip.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// TokenKey signs the gateway bearer JWT (HS256).
	// Env: ADAPTER_TOKEN_KEY
	TokenKey string `env:"TOKEN_KEY"`

	// TokenIssuer is the "iss" claim of the gateway bearer JWT.
	// Env: ADAPTER_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of an issued bearer JWT.
	// Env: ADAPTER_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Ledger holds negotiation and payment settings.
type Ledger struct {
	// CallTimeout bounds each individual ledger call made during allowance
	// negotiation (default 15s).
	// Env: LEDGER_CALL_TIMEOUT
	CallTimeout time.Duration `env:"CALL_TIMEOUT"`

	// FeeFailOpen treats a failed fee lookup as a zero fee instead of
	// aborting the payment.
	// Env: LEDGER_FEE_FAIL_OPEN
	FeeFailOpen bool `env:"FEE_FAIL_OPEN"`

	// Spender is the default spender principal used by `pay`.
	// Env: LEDGER_SPENDER
	Spender string `env:"SPENDER"`

	// Decimals is used when metadata does not report icrc1:decimals
	// (default 8).
	// Env: LEDGER_DECIMALS
	Decimals uint8 `env:"DECIMALS"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// LockWatchInterval is the tick of the auto-lock watcher (default 5s).
	// Env: WORKERS_LOCK_WATCH_INTERVAL
	LockWatchInterval time.Duration `env:"LOCK_WATCH_INTERVAL"`
}

// Server holds the simulator's inbound transport settings.
type Server struct {
	// HTTPAddress is the host:port of the gateway HTTP listener.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the host:port of the gRPC health listener.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// TokenKey verifies bearer JWTs. Empty disables authentication.
	// Env: SERVER_TOKEN_KEY
	TokenKey string `env:"TOKEN_KEY"`

	// TokenIssuer is the required "iss" claim.
	// Env: SERVER_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`
}

// Simulator seeds the in-memory ledger.
type Simulator struct {
	// Fee is the transfer and approve fee in subunits.
	// Env: SIMULATOR_FEE
	Fee uint64 `env:"FEE"`

	// Decimals is reported as icrc1:decimals.
	// Env: SIMULATOR_DECIMALS
	Decimals uint8 `env:"DECIMALS"`

	// Symbol is reported as icrc1:symbol.
	// Env: SIMULATOR_SYMBOL
	Symbol string `env:"SYMBOL"`

	// Name is reported as icrc1:name.
	// Env: SIMULATOR_NAME
	Name string `env:"NAME"`

	// Mint lists "principal=amount" pairs credited at startup.
	// Env: SIMULATOR_MINT (comma separated)
	Mint []string `env:"MINT" envSeparator:","`

	// Spender is the principal the simulator's purchase endpoint acts as.
	// Env: SIMULATOR_SPENDER
	Spender string `env:"SPENDER"`

	// Treasury receives purchase proceeds.
	// Env: SIMULATOR_TREASURY
	Treasury string `env:"TREASURY"`
}

// GetStructuredConfig loads, merges, defaults and validates the
// configuration. flags is the snapshot function returned by
// [RegisterFlags]; it may be nil when no flags are bound.
func GetStructuredConfig(flags func() *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(flags).
		withFile().
		withDefaults().
		build()
}
