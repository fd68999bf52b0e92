// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig mirrors [StructuredConfig] for JSON and YAML config
// files. Durations are written as strings ("30s", "15m").
type StructuredFileConfig struct {
	App struct {
		LockSecret string   `json:"lock_secret" yaml:"lock_secret"`
		LockTTL    Duration `json:"lock_ttl" yaml:"lock_ttl"`
		HashKey    string   `json:"hash_key" yaml:"hash_key"`
		Version    string   `json:"version" yaml:"version"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Storage struct {
		Backend   string `json:"backend" yaml:"backend"`
		DSN       string `json:"dsn" yaml:"dsn"`
		RedisURL  string `json:"redis_url" yaml:"redis_url"`
		FilePath  string `json:"file_path" yaml:"file_path"`
		Codec     string `json:"codec" yaml:"codec"`
		KeyPrefix string `json:"key_prefix" yaml:"key_prefix"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Adapter struct {
		Address         string   `json:"address" yaml:"address"`
		PurchaseAddress string   `json:"purchase_address" yaml:"purchase_address"`
		RequestTimeout  Duration `json:"request_timeout" yaml:"request_timeout"`
		TokenKey        string   `json:"token_key" yaml:"token_key"`
		TokenIssuer     string   `json:"token_issuer" yaml:"token_issuer"`
		TokenDuration   Duration `json:"token_duration" yaml:"token_duration"`
	} `json:"adapter,omitempty" yaml:"adapter,omitempty"`

	Ledger struct {
		CallTimeout Duration `json:"call_timeout" yaml:"call_timeout"`
		FeeFailOpen bool     `json:"fee_fail_open" yaml:"fee_fail_open"`
		Spender     string   `json:"spender" yaml:"spender"`
		Decimals    uint8    `json:"decimals" yaml:"decimals"`
	} `json:"ledger,omitempty" yaml:"ledger,omitempty"`

	Workers struct {
		LockWatchInterval Duration `json:"lock_watch_interval" yaml:"lock_watch_interval"`
	} `json:"workers,omitempty" yaml:"workers,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		GRPCAddress    string   `json:"grpc_address" yaml:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		TokenKey       string   `json:"token_key" yaml:"token_key"`
		TokenIssuer    string   `json:"token_issuer" yaml:"token_issuer"`
	} `json:"server,omitempty" yaml:"server,omitempty"`

	Simulator struct {
		Fee      uint64   `json:"fee" yaml:"fee"`
		Decimals uint8    `json:"decimals" yaml:"decimals"`
		Symbol   string   `json:"symbol" yaml:"symbol"`
		Name     string   `json:"name" yaml:"name"`
		Mint     []string `json:"mint" yaml:"mint"`
		Spender  string   `json:"spender" yaml:"spender"`
		Treasury string   `json:"treasury" yaml:"treasury"`
	} `json:"simulator,omitempty" yaml:"simulator,omitempty"`
}

// parseFile reads a JSON or YAML config file; the format is chosen by the
// file extension (.yaml / .yml, everything else is JSON).
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return fileCfg.toStructured(), nil
}

func (f *StructuredFileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LockSecret: f.App.LockSecret,
			LockTTL:    time.Duration(f.App.LockTTL),
			HashKey:    f.App.HashKey,
			Version:    f.App.Version,
		},
		Storage: Storage{
			Backend:   f.Storage.Backend,
			DSN:       f.Storage.DSN,
			RedisURL:  f.Storage.RedisURL,
			FilePath:  f.Storage.FilePath,
			Codec:     f.Storage.Codec,
			KeyPrefix: f.Storage.KeyPrefix,
		},
		Adapter: Adapter{
			Address:         f.Adapter.Address,
			PurchaseAddress: f.Adapter.PurchaseAddress,
			RequestTimeout:  time.Duration(f.Adapter.RequestTimeout),
			TokenKey:        f.Adapter.TokenKey,
			TokenIssuer:     f.Adapter.TokenIssuer,
			TokenDuration:   time.Duration(f.Adapter.TokenDuration),
		},
		Ledger: Ledger{
			CallTimeout: time.Duration(f.Ledger.CallTimeout),
			FeeFailOpen: f.Ledger.FeeFailOpen,
			Spender:     f.Ledger.Spender,
			Decimals:    f.Ledger.Decimals,
		},
		Workers: Workers{
			LockWatchInterval: time.Duration(f.Workers.LockWatchInterval),
		},
		Server: Server{
			HTTPAddress:    f.Server.HTTPAddress,
			GRPCAddress:    f.Server.GRPCAddress,
			RequestTimeout: time.Duration(f.Server.RequestTimeout),
			TokenKey:       f.Server.TokenKey,
			TokenIssuer:    f.Server.TokenIssuer,
		},
		Simulator: Simulator{
			Fee:      f.Simulator.Fee,
			Decimals: f.Simulator.Decimals,
			Symbol:   f.Simulator.Symbol,
			Name:     f.Simulator.Name,
			Mint:     f.Simulator.Mint,
			Spender:  f.Simulator.Spender,
			Treasury: f.Simulator.Treasury,
		},
	}
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" in both JSON and YAML. Plain numbers are nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	if n, err := time.ParseDuration(s); err == nil {
		*d = Duration(n)
		return nil
	}

	var ns int64
	if err := node.Decode(&ns); err != nil {
		return fmt.Errorf("invalid duration %q", s)
	}
	*d = Duration(time.Duration(ns))
	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}
