// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"time"

	"github.com/peridotvault/peridot-desktop-sub002/models"
)

// NavigateTo switches the active page. Payload, when set, is delivered to
// the new page right after its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

type noticeMsg struct {
	text string
}

// autoLockMsg is produced when the lock watcher reports that the session
// expired.
type autoLockMsg struct{}

type statusLoadedMsg struct {
	status models.WalletStatus
	err    error
}

type balanceLoadedMsg struct {
	amount models.TokenAmount
	err    error
}

type unlockResultMsg struct {
	lock models.SessionLock
	err  error
}

type lockedMsg struct {
	err error
}

type copiedMsg struct {
	what string
	err  error
}

type tickMsg struct {
	id  int
	now time.Time
}

type clearNoticeMsg struct{}
