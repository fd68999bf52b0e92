// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validClientConfig() *ClientConfig {
	cfg := NewClientConfig(defaultConfig())
	cfg.App.LockSecret = "secret"
	return cfg
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{name: "defaults plus secret are valid", mutate: func(c *ClientConfig) {}},
		{name: "missing lock secret", mutate: func(c *ClientConfig) { c.App.LockSecret = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "sqlite without dsn", mutate: func(c *ClientConfig) { c.Storage.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "redis without url", mutate: func(c *ClientConfig) { c.Storage.Backend = BackendRedis }, wantErr: ErrInvalidStorageConfigs},
		{name: "memory needs nothing", mutate: func(c *ClientConfig) { c.Storage.Backend = BackendMemory; c.Storage.DSN = "" }},
		{name: "bad gateway url", mutate: func(c *ClientConfig) { c.Adapter.Address = "localhost:8080" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "good gateway url", mutate: func(c *ClientConfig) { c.Adapter.Address = "http://localhost:8080" }},
		{name: "zero call timeout", mutate: func(c *ClientConfig) { c.Ledger.CallTimeout = 0 }, wantErr: ErrInvalidLedgerConfigs},
		{name: "zero watch interval", mutate: func(c *ClientConfig) { c.Workers.LockWatchInterval = 0 }, wantErr: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestServerConfig_Validate(t *testing.T) {
	cfg := &ServerConfig{Server: defaultConfig().Server}
	assert.NoError(t, cfg.validate())

	cfg.Server.HTTPAddress = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)
}
