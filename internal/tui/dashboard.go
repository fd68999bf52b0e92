// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/peridotvault/peridot-desktop-sub002/internal/service"
	"github.com/peridotvault/peridot-desktop-sub002/models"
)

const noticeTimeout = 2 * time.Second

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// DashboardModel shows the wallet identity, the session countdown and the
// balance, and offers lock and copy actions.
type DashboardModel struct {
	ctx    context.Context
	vault  service.WalletVault
	tokens service.TokenService
	now    func() time.Time

	status  models.WalletStatus
	balance string
	notice  string
	errMsg  string
	tickID  int
}

// NewDashboardModel creates the dashboard. tokens may be nil, in which case
// no balance is shown.
func NewDashboardModel(ctx context.Context, vault service.WalletVault, tokens service.TokenService) *DashboardModel {
	return &DashboardModel{ctx: ctx, vault: vault, tokens: tokens, now: time.Now}
}

func (m *DashboardModel) Init() tea.Cmd {
	m.tickID++
	m.notice = ""
	m.errMsg = ""
	return tea.Batch(m.cmdLoadStatus(), m.cmdLoadBalance(), m.tick())
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statusLoadedMsg:
		if msg.err != nil {
			m.errMsg = service.UserMessage(msg.err)
			return m, nil
		}
		m.status = msg.status
		if !m.status.Unlocked {
			return m, func() tea.Msg {
				return NavigateTo{Page: pageUnlock, Payload: noticeMsg{text: msgSessionExpired}}
			}
		}
		return m, nil
	case balanceLoadedMsg:
		if msg.err != nil {
			m.balance = "unavailable: " + service.UserMessage(msg.err)
			return m, nil
		}
		m.balance = msg.amount.String()
		return m, nil
	case tickMsg:
		if msg.id != m.tickID {
			return m, nil
		}
		if m.status.Unlocked && !msg.now.Before(m.status.ExpiresAt) {
			// the store deletes the expired lock on this read
			return m, tea.Batch(m.cmdLoadStatus(), m.tick())
		}
		return m, m.tick()
	case lockedMsg:
		if msg.err != nil {
			m.errMsg = service.UserMessage(msg.err)
			return m, nil
		}
		return m, func() tea.Msg {
			return NavigateTo{Page: pageUnlock, Payload: noticeMsg{text: "wallet locked"}}
		}
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "copy failed: " + msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.notice = msg.what + " copied to clipboard"
		return m, tea.Tick(noticeTimeout, func(time.Time) tea.Msg { return clearNoticeMsg{} })
	case clearNoticeMsg:
		m.notice = ""
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.lock):
			return m, m.cmdLock()
		case key.Matches(msg, keys.copy):
			return m, cmdCopy("account id", m.status.Identity.AccountID)
		case key.Matches(msg, keys.copyOwner):
			return m, cmdCopy("principal", m.status.Identity.PrincipalID)
		case key.Matches(msg, keys.refresh):
			return m, tea.Batch(m.cmdLoadStatus(), m.cmdLoadBalance())
		}
	}

	return m, nil
}

func (m *DashboardModel) View() string {
	var b strings.Builder

	b.WriteString(field("Principal", m.status.Identity.PrincipalID))
	b.WriteString(field("Account ID", m.status.Identity.AccountID))

	if m.status.Unlocked {
		remaining := m.status.ExpiresAt.Sub(m.now())
		b.WriteString(field("Session", unlockedStyle.Render("unlocked")+" (locks in "+formatRemaining(remaining)+")"))
	} else {
		b.WriteString(field("Session", lockedStyle.Render("locked")))
	}

	if m.tokens != nil {
		balance := m.balance
		if balance == "" {
			balance = "loading..."
		}
		b.WriteString(field("Balance", balance))
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("PERIDOT VAULT", strings.TrimRight(b.String(), "\n"),
		"c: copy account id │ p: copy principal │ l: lock │ r: refresh │ v: version │ q: quit")
}

func (m *DashboardModel) tick() tea.Cmd {
	id := m.tickID
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg{id: id, now: t} })
}

func (m *DashboardModel) cmdLoadStatus() tea.Cmd {
	return func() tea.Msg {
		status, err := m.vault.Status(m.ctx)
		return statusLoadedMsg{status: status, err: err}
	}
}

func (m *DashboardModel) cmdLoadBalance() tea.Cmd {
	if m.tokens == nil {
		return nil
	}
	return func() tea.Msg {
		amount, err := m.tokens.Balance(m.ctx)
		return balanceLoadedMsg{amount: amount, err: err}
	}
}

func (m *DashboardModel) cmdLock() tea.Cmd {
	return func() tea.Msg {
		return lockedMsg{err: m.vault.Lock(m.ctx)}
	}
}

func cmdCopy(what, value string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{what: what, err: writeClipboard(value)}
	}
}
