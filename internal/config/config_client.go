// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// LockSecret derives the session key wrapping the unlock password.
	LockSecret string
	// LockTTL is the default unlock session lifetime.
	LockTTL time.Duration
	// HashKey is the HMAC key used for payload integrity checks.
	HashKey string
}

// ClientConfig is the configuration view used by the wallet client.
type ClientConfig struct {
	App     ClientApp
	Storage Storage
	Adapter Adapter
	Ledger  Ledger
	Workers Workers
}

// GetClientConfig builds and validates the client view of the merged
// structured configuration.
func GetClientConfig(flags func() *StructuredConfig) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps the fields relevant to the client runtime.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			LockSecret: cfg.App.LockSecret,
			LockTTL:    cfg.App.LockTTL,
			HashKey:    cfg.App.HashKey,
		},
		Storage: cfg.Storage,
		Adapter: cfg.Adapter,
		Ledger:  cfg.Ledger,
		Workers: cfg.Workers,
	}
}

// ServerConfig is the configuration view used by the ledger simulator.
type ServerConfig struct {
	Server    Server
	Simulator Simulator
	HashKey   string
	Version   string
}

// GetServerConfig builds and validates the simulator view of the merged
// structured configuration.
func GetServerConfig(flags func() *StructuredConfig) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		Server:    cfg.Server,
		Simulator: cfg.Simulator,
		HashKey:   cfg.App.HashKey,
		Version:   cfg.App.Version,
	}

	return serverCfg, serverCfg.validate()
}
