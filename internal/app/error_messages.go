// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer message strings used by the
// wallet CLI, the TUI and the ledger simulator's HTTP handlers.
//
// All Msg* constants are human-readable texts shown to users or written into
// HTTP response bodies. Keeping them in one place keeps the wording consistent
// between the client and the simulator.
package app

const (
	// MsgInvalidDataProvided is returned when a request body cannot be
	// decoded or fails basic validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer JWT is expired or
	// cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgMissingToken is returned when an authenticated route is called
	// without a bearer token.
	MsgMissingToken = "missing bearer token"

	// MsgInvalidHash is returned when the HashSHA256 header does not match
	// the request body.
	MsgInvalidHash = "request hash mismatch"

	// MsgInvalidSignature is returned when a mutating request is unsigned or
	// the sender signature does not verify.
	MsgInvalidSignature = "invalid sender signature"

	// MsgPrincipalMismatch is returned when the signing key does not belong
	// to the principal named in the bearer token.
	MsgPrincipalMismatch = "signer does not match token principal"

	// MsgMethodNotAllowed is returned for requests with an unsupported HTTP
	// method.
	MsgMethodNotAllowed = "method not allowed"

	// MsgPurchaseFailed is returned by the purchase endpoint when the
	// transfer_from was rejected.
	MsgPurchaseFailed = "purchase failed"

	// MsgIncorrectPassword covers both a wrong password and a corrupted
	// ciphertext. The two are never distinguished.
	MsgIncorrectPassword = "incorrect password"

	// MsgPasswordRequired is shown when the wallet is locked and no password
	// was supplied.
	MsgPasswordRequired = "wallet is locked: password required"

	// MsgInvalidSeed is shown for mnemonics that fail BIP-39 validation.
	MsgInvalidSeed = "invalid seed phrase"

	// MsgWalletNotFound is shown when no wallet has been created or imported.
	MsgWalletNotFound = "no wallet found: create or import one first"

	// MsgInvalidPrincipal is shown for malformed principal text.
	MsgInvalidPrincipal = "invalid principal"

	// MsgInvalidAmount is shown for amounts that cannot be converted to
	// subunits.
	MsgInvalidAmount = "invalid amount"

	// MsgNegotiationInProgress is shown when another payment to the same
	// spender is still running.
	MsgNegotiationInProgress = "a payment to this spender is already in progress"

	// MsgOutcomeUncertain is shown when an approve may have landed; the user
	// should check the allowance before retrying.
	MsgOutcomeUncertain = "the ledger did not confirm the approval; check your allowance before retrying"

	// MsgApproveFailed is shown when the ledger rejected the allowance change.
	MsgApproveFailed = "the ledger rejected the allowance change"

	// MsgInsufficientFunds is shown when the balance does not cover amount
	// plus fee.
	MsgInsufficientFunds = "insufficient funds"

	// MsgFeeUnavailable is shown when the ledger fee could not be read.
	MsgFeeUnavailable = "could not read the ledger fee"

	// MsgLedgerUnreachable is shown for transport failures and timeouts.
	MsgLedgerUnreachable = "ledger is unreachable, try again later"

	// MsgNotConfigured is shown when the ledger or spender address is
	// missing from the configuration.
	MsgNotConfigured = "ledger or spender address is not configured"
)

// Ledger rejection reasons, appended to MsgApproveFailed and similar texts.
const (
	MsgLedgerBadFee                 = "the ledger fee changed, try again"
	MsgLedgerAllowanceChanged       = "the allowance changed concurrently, try again"
	MsgLedgerInsufficientAllowance  = "the allowance does not cover the amount"
	MsgLedgerTooOld                 = "the request expired before reaching the ledger, try again"
	MsgLedgerCreatedInFuture        = "the local clock is ahead of the ledger"
	MsgLedgerExpired                = "the allowance has expired"
	MsgLedgerDuplicate              = "the ledger already processed this request"
	MsgLedgerTemporarilyUnavailable = "the ledger is temporarily unavailable, try again later"
)
