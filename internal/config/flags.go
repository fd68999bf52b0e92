// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// RegisterFlags binds all configuration flags to fs and returns a function
// that snapshots the parsed values into a [StructuredConfig]. The snapshot
// must be taken after fs has been parsed (directly or through cobra).
//
// Flags:
//
//	-c/-config json or yaml config file path
//	-a simulator HTTP address in format [host]:[port]
//	-grpc-address simulator gRPC address in format [host]:[port]
//	-lock-ttl unlock session lifetime (e.g. "30m")
//	-hash-key request integrity HMAC key
//	-storage storage backend (sqlite, postgres, redis, file, memory)
//	-d sqlite path or postgres DSN
//	-redis-url redis URL
//	-storage-file file backend path
//	-codec record codec (json, cbor)
//	-gateway ledger gateway base URL
//	-purchase-address purchase endpoint base URL
//	-request-timeout HTTP request timeout (e.g. "20s")
//	-call-timeout per ledger call timeout during negotiation (e.g. "15s")
//	-fee-fail-open treat a failed fee lookup as zero fee
//	-spender default spender principal
//	-lock-watch-interval auto-lock watcher tick
//	-token-key gateway JWT signing key
//	-token-issuer gateway JWT issuer
func RegisterFlags(fs *flag.FlagSet) func() *StructuredConfig {
	var serverAddress, grpcServerAddress NetAddress
	var configPath string
	var lockTTL time.Duration
	var hashKey string
	var backend, dsn, redisURL, storageFile, codec string
	var gateway, purchaseAddress string
	var requestTimeout, callTimeout time.Duration
	var feeFailOpen bool
	var spender string
	var lockWatchInterval time.Duration
	var tokenKey, tokenIssuer string

	fs.Var(&serverAddress, "a", "Simulator net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Simulator grpc address host:port")
	fs.StringVar(&configPath, "c", "", "Config file path (json or yaml)")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")
	fs.DurationVar(&lockTTL, "lock-ttl", 0, "Unlock session lifetime (e.g., 30m)")
	fs.StringVar(&hashKey, "hash-key", "", "Request integrity hash key")
	fs.StringVar(&backend, "storage", "", "Storage backend: sqlite, postgres, redis, file, memory")
	fs.StringVar(&dsn, "d", "", "SQLite path or Postgres DSN")
	fs.StringVar(&redisURL, "redis-url", "", "Redis URL")
	fs.StringVar(&storageFile, "storage-file", "", "File backend path")
	fs.StringVar(&codec, "codec", "", "Record codec: json, cbor")
	fs.StringVar(&gateway, "gateway", "", "Ledger gateway base URL")
	fs.StringVar(&purchaseAddress, "purchase-address", "", "Purchase endpoint base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 20s)")
	fs.DurationVar(&callTimeout, "call-timeout", 0, "Ledger call timeout during negotiation (e.g., 15s)")
	fs.BoolVar(&feeFailOpen, "fee-fail-open", false, "Treat a failed fee lookup as zero fee")
	fs.StringVar(&spender, "spender", "", "Default spender principal")
	fs.DurationVar(&lockWatchInterval, "lock-watch-interval", 0, "Auto-lock watcher interval")
	fs.StringVar(&tokenKey, "token-key", "", "Gateway token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Gateway token issuer")

	return func() *StructuredConfig {
		return &StructuredConfig{
			App: App{
				LockTTL: lockTTL,
				HashKey: hashKey,
			},
			Storage: Storage{
				Backend:  backend,
				DSN:      dsn,
				RedisURL: redisURL,
				FilePath: storageFile,
				Codec:    codec,
			},
			Adapter: Adapter{
				Address:         gateway,
				PurchaseAddress: purchaseAddress,
				RequestTimeout:  requestTimeout,
				TokenKey:        tokenKey,
				TokenIssuer:     tokenIssuer,
			},
			Ledger: Ledger{
				CallTimeout: callTimeout,
				FeeFailOpen: feeFailOpen,
				Spender:     spender,
			},
			Workers: Workers{
				LockWatchInterval: lockWatchInterval,
			},
			Server: Server{
				HTTPAddress:    serverAddress.String(),
				GRPCAddress:    grpcServerAddress.String(),
				RequestTimeout: requestTimeout,
				TokenKey:       tokenKey,
				TokenIssuer:    tokenIssuer,
			},
			FilePath: configPath,
		}
	}
}

// String returns a canonical host:port string for a NetAddress, or "" when
// unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in 1..65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
