// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/peridotvault/peridot-desktop-sub002/internal/app"
	"github.com/peridotvault/peridot-desktop-sub002/internal/service"
)

// UnlockModel asks for the wallet password and opens a session with the
// configured lifetime. On success it navigates to the dashboard.
type UnlockModel struct {
	ctx   context.Context
	vault service.WalletVault

	input      textinput.Model
	submitting bool
	notice     string
	errMsg     string
}

// NewUnlockModel creates the unlock page with a masked password input.
func NewUnlockModel(ctx context.Context, vault service.WalletVault) *UnlockModel {
	input := textinput.New()
	input.Placeholder = "password"
	input.CharLimit = 256
	input.Width = 40
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	return &UnlockModel{ctx: ctx, vault: vault, input: input}
}

func (m *UnlockModel) Init() tea.Cmd {
	m.input.Focus()
	return textinput.Blink
}

func (m *UnlockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case noticeMsg:
		m.notice = msg.text
		m.errMsg = ""
		m.input.Reset()
		return m, nil
	case unlockResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = service.UserMessage(msg.err)
			return m, nil
		}
		m.input.Reset()
		m.notice = ""
		m.errMsg = ""
		return m, func() tea.Msg { return NavigateTo{Page: pageDashboard} }
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.input.Reset()
			m.errMsg = ""
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}
			password := m.input.Value()
			if password == "" {
				m.errMsg = app.MsgPasswordRequired
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdUnlock(password)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *UnlockModel) View() string {
	var b strings.Builder

	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n\n")
	}

	b.WriteString("Password  [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Unlocking...]\n")
	} else {
		b.WriteString("\n[Unlock]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("UNLOCK WALLET", strings.TrimRight(b.String(), "\n"), "enter: unlock │ esc: clear")
}

func (m *UnlockModel) cmdUnlock(password string) tea.Cmd {
	return func() tea.Msg {
		lock, err := m.vault.Unlock(m.ctx, password, 0)
		return unlockResultMsg{lock: lock, err: err}
	}
}
