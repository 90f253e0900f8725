// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/goatgarage/go-vehicle-logbook/internal/capture"
)

// SessionFactory builds a fresh capture session per scan interaction.
type SessionFactory func() (*capture.Session, error)

// ScannerModel drives one capture session: live scanning, capture,
// confirm/reject, retry. A confirmed plate is delivered back to the
// page that opened the scan: the entry form gets it as the plate field
// (its typed draft intact), the dashboard gets it as the search filter.
// Everything else ends with the session closed and nothing delivered.
type ScannerModel struct {
	sessions   SessionFactory
	session    *capture.Session
	returnPage string
	draft      OpenForm

	held    string
	status  string
	lastErr error
}

func NewScannerModel(sessions SessionFactory) *ScannerModel {
	return &ScannerModel{sessions: sessions, returnPage: "dashboard"}
}

func (m *ScannerModel) Init() tea.Cmd {
	return nil
}

func scanTick() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(time.Time) tea.Msg { return scanTickMsg{} })
}

func (m *ScannerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case StartScan:
		return m.start(msg)
	case scanTickMsg:
		if m.session == nil {
			return m, nil
		}
		return m, scanTick()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *ScannerModel) start(msg StartScan) (tea.Model, tea.Cmd) {
	m.closeSession()
	m.returnPage = msg.ReturnPage
	m.draft = msg.Draft
	m.held = ""
	m.status = ""
	m.lastErr = nil

	session, err := m.sessions()
	if err != nil {
		m.lastErr = err
		return m, nil
	}
	if err = session.Start(context.Background()); err != nil {
		// Camera permission or a dead frame source: the scan cannot
		// proceed at all, only leaving the scanner helps.
		m.lastErr = err
		session.Close()
		return m, nil
	}

	m.session = session
	return m, scanTick()
}

func (m *ScannerModel) closeSession() {
	if m.session != nil {
		m.session.Close()
		m.session = nil
	}
}

func (m *ScannerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.esc) {
		m.closeSession()
		page := m.returnPage
		return m, func() tea.Msg { return NavigateTo{Page: page} }
	}

	if m.session == nil {
		return m, nil
	}

	switch m.session.Phase() {
	case capture.PhaseScanning:
		if key.Matches(msg, keys.capture) {
			text, err := m.session.Capture()
			switch {
			case errors.Is(err, capture.ErrNoTextRecognized):
				m.status = "no plate recognized yet"
			case err != nil:
				m.lastErr = err
			default:
				m.held = text
				m.status = ""
			}
		}
	case capture.PhaseAwaitingConfirmation:
		switch {
		case key.Matches(msg, keys.yes):
			text, err := m.session.Confirm()
			if err != nil {
				m.lastErr = err
				return m, nil
			}
			m.closeSession()
			if m.returnPage == "dashboard" {
				return m, func() tea.Msg {
					return NavigateTo{Page: "dashboard", Payload: FilterPlate{Plate: text}}
				}
			}
			prefill := m.draft
			prefill.Plate = text
			return m, func() tea.Msg {
				return NavigateTo{Page: "form", Payload: prefill}
			}
		case key.Matches(msg, keys.no):
			if err := m.session.Reject(); err != nil {
				m.lastErr = err
			}
			m.held = ""
		}
	case capture.PhaseRejected:
		if key.Matches(msg, keys.retry) {
			if err := m.session.Retry(); err != nil {
				m.lastErr = err
			}
			m.status = ""
		}
	}
	return m, nil
}

func (m *ScannerModel) View() string {
	var b strings.Builder

	if m.lastErr != nil {
		message := m.lastErr.Error()
		if errors.Is(m.lastErr, capture.ErrCameraUnavailable) {
			message = "Camera unavailable. Check that the frame source exists and is readable."
		}
		b.WriteString(errorStyle.Render("Error: "+message) + "\n")
		return renderPage("SCAN PLATE", b.String(), "esc: back")
	}
	if m.session == nil {
		return renderPage("SCAN PLATE", "No scan in progress.", "esc: back")
	}

	phase := m.session.Phase()
	b.WriteString("Status: " + phase.String() + "\n\n")

	switch phase {
	case capture.PhaseScanning:
		b.WriteString("Point the camera at the plate and press space to capture.\n")
	case capture.PhaseAwaitingConfirmation:
		b.WriteString("Recognized plate: " + titleStyle.Render(m.held) + "\n")
		b.WriteString("Use this plate?\n")
	case capture.PhaseRejected:
		b.WriteString("Nothing recognized on the captured frame.\n")
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	hotKeys := "space: capture │ esc: back"
	switch phase {
	case capture.PhaseAwaitingConfirmation:
		hotKeys = "y: use plate │ n: keep scanning │ esc: back"
	case capture.PhaseRejected:
		hotKeys = "r: try again │ esc: back"
	}

	return renderPage("SCAN PLATE", strings.TrimRight(b.String(), "\n"), hotKeys)
}
