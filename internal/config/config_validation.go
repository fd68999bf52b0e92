// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks the values every consumer depends on. Fields left empty
// are accepted here; the client and server views enforce what they need.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Backend {
	case "", BackendSQLite, BackendPostgres, BackendRedis, BackendFile, BackendMemory:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, cfg.Storage.Backend)
	}

	switch cfg.Storage.Codec {
	case "", "json", "cbor":
	default:
		return fmt.Errorf("%w: unknown codec %q", ErrInvalidStorageConfigs, cfg.Storage.Codec)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.App.LockSecret == "" || cfg.App.LockTTL <= 0 {
		return ErrInvalidAppConfigs
	}

	switch cfg.Storage.Backend {
	case BackendSQLite, BackendPostgres:
		if cfg.Storage.DSN == "" {
			return fmt.Errorf("%w: dsn is required for %s", ErrInvalidStorageConfigs, cfg.Storage.Backend)
		}
	case BackendRedis:
		if cfg.Storage.RedisURL == "" {
			return fmt.Errorf("%w: redis url is required", ErrInvalidStorageConfigs)
		}
	case BackendFile:
		if cfg.Storage.FilePath == "" {
			return fmt.Errorf("%w: file path is required", ErrInvalidStorageConfigs)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, cfg.Storage.Backend)
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	for _, raw := range []string{cfg.Adapter.Address, cfg.Adapter.PurchaseAddress} {
		if raw == "" {
			continue
		}
		if u, err := url.Parse(raw); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: bad url %q", ErrInvalidAdapterConfigs, raw)
		}
	}

	if cfg.Ledger.CallTimeout <= 0 {
		return ErrInvalidLedgerConfigs
	}

	if cfg.Workers.LockWatchInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
