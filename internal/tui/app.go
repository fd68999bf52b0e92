// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/peridotvault/peridot-desktop-sub002/models"
)

const (
	pageUnlock    = "unlock"
	pageDashboard = "dashboard"
)

const msgSessionExpired = "session expired, wallet locked"

// RootModel is the TUI router:
// it keeps the active page, handles the global ctrl+c quit and NavigateTo
// messages, turns auto-lock notifications into a jump to the unlock page and
// delegates everything else to the active page.
type RootModel struct {
	pages   map[string]tea.Model
	current string

	locks     <-chan struct{}
	buildInfo models.AppBuildInfo

	showBuildInfo bool
}

// NewRootModel registers pages and opens startPage. locks may be nil.
func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo, locks <-chan struct{}) RootModel {
	return RootModel{
		pages:     pages,
		current:   startPage,
		locks:     locks,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	var pageInit tea.Cmd
	if page, ok := r.pages[r.current]; ok {
		pageInit = page.Init()
	}
	return tea.Batch(pageInit, waitForAutoLock(r.locks))
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "ctrl+c" {
			return r, tea.Quit
		}
		if r.showBuildInfo {
			if key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.version) {
				r.showBuildInfo = false
			}
			return r, nil
		}
		if r.current == pageDashboard && key.Matches(keyMsg, keys.version) {
			r.showBuildInfo = true
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case autoLockMsg:
		next, cmd := r.navigate(NavigateTo{Page: pageUnlock, Payload: noticeMsg{text: msgSessionExpired}})
		return next, tea.Batch(cmd, waitForAutoLock(r.locks))
	case NavigateTo:
		return r.navigate(msg)
	}

	page, ok := r.pages[r.current]
	if !ok {
		return r, nil
	}
	updated, cmd := page.Update(msg)
	r.pages[r.current] = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	page, ok := r.pages[r.current]
	if !ok {
		return renderPage("PERIDOT VAULT", "", "")
	}
	return page.View()
}

func (r RootModel) navigate(nav NavigateTo) (RootModel, tea.Cmd) {
	next, ok := r.pages[nav.Page]
	if !ok {
		return r, nil
	}

	r.showBuildInfo = false
	r.current = nav.Page

	cmds := []tea.Cmd{next.Init()}
	if nav.Payload != nil {
		payload := nav.Payload
		cmds = append(cmds, func() tea.Msg { return payload })
	}
	return r, tea.Batch(cmds...)
}

// waitForAutoLock blocks on locks and reports one auto-lock. The root
// re-arms it after every delivery.
func waitForAutoLock(locks <-chan struct{}) tea.Cmd {
	if locks == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-locks; !ok {
			return nil
		}
		return autoLockMsg{}
	}
}
