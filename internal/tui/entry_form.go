package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/goatgarage/go-vehicle-logbook/internal/service"
	"github.com/goatgarage/go-vehicle-logbook/models"
)

const (
	formFocusPlate = iota
	formFocusType
	formFocusCategory
	formFocusNote
	formFocusCount
)

// EntryFormModel records a new maintenance entry. The plate can be
// typed, pre-filled by the detail page, or delivered by a confirmed
// scan.
type EntryFormModel struct {
	svc service.RecordService

	plate    textinput.Model
	category textinput.Model
	note     textarea.Model
	vtype    models.VehicleType
	focus    int

	saving  bool
	lastErr error
}

func NewEntryFormModel(svc service.RecordService) *EntryFormModel {
	plate := textinput.New()
	plate.Placeholder = "B 1234 AB"
	plate.Width = 20

	category := textinput.New()
	category.Placeholder = "Oil change"
	category.Width = 30

	note := textarea.New()
	note.Placeholder = "notes"
	note.SetWidth(50)
	note.SetHeight(4)

	return &EntryFormModel{svc: svc, plate: plate, category: category, note: note}
}

func (m *EntryFormModel) Init() tea.Cmd {
	return nil
}

func (m *EntryFormModel) reset(prefill OpenForm) {
	m.plate.SetValue(prefill.Plate)
	m.vtype = prefill.Type
	m.category.SetValue(prefill.Category)
	m.note.SetValue(prefill.Note)
	m.focus = formFocusPlate
	m.saving = false
	m.lastErr = nil
	m.applyFocus()
}

func (m *EntryFormModel) applyFocus() {
	m.plate.Blur()
	m.category.Blur()
	m.note.Blur()

	switch m.focus {
	case formFocusPlate:
		m.plate.Focus()
	case formFocusCategory:
		m.category.Focus()
	case formFocusNote:
		m.note.Focus()
	}
}

func (m *EntryFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case OpenForm:
		m.reset(msg)
		return m, nil
	case entrySavedMsg:
		m.saving = false
		if msg.err != nil {
			m.lastErr = msg.err
			return m, nil
		}
		id := msg.vehicleID
		return m, func() tea.Msg {
			return NavigateTo{Page: "detail", Payload: OpenDetail{VehicleID: id}}
		}
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *EntryFormModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.saving {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Page: "dashboard"} }
	case key.Matches(msg, keys.tab):
		m.focus = (m.focus + 1) % formFocusCount
		m.applyFocus()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.focus = (m.focus + formFocusCount - 1) % formFocusCount
		m.applyFocus()
		return m, nil
	case msg.String() == "ctrl+s":
		// Scan-to-fill: a confirmed scan reopens this form with the
		// recognized plate and the rest of the draft untouched.
		draft := OpenForm{
			Plate:    m.plate.Value(),
			Type:     m.vtype,
			Category: m.category.Value(),
			Note:     m.note.Value(),
		}
		return m, func() tea.Msg {
			return NavigateTo{Page: "scanner", Payload: StartScan{ReturnPage: "form", Draft: draft}}
		}
	case msg.String() == "ctrl+d":
		return m.save()
	case key.Matches(msg, keys.enter) && m.focus != formFocusNote:
		return m.save()
	}

	if m.focus == formFocusType {
		if msg.String() == " " || key.Matches(msg, keys.up) || key.Matches(msg, keys.down) {
			m.vtype = nextType(m.vtype)
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case formFocusPlate:
		m.plate, cmd = m.plate.Update(msg)
	case formFocusCategory:
		m.category, cmd = m.category.Update(msg)
	case formFocusNote:
		m.note, cmd = m.note.Update(msg)
	}
	return m, cmd
}

func (m *EntryFormModel) save() (tea.Model, tea.Cmd) {
	plate := m.plate.Value()
	vtype := m.vtype
	entry := models.NewEntry(strings.TrimSpace(m.category.Value()), m.note.Value(), time.Now())

	m.saving = true
	return m, func() tea.Msg {
		vehicle, err := m.svc.UpsertEntry(context.Background(), plate, vtype, entry)
		if err != nil {
			return entrySavedMsg{err: err}
		}
		return entrySavedMsg{vehicleID: vehicle.ID}
	}
}

func (m *EntryFormModel) View() string {
	focusMark := func(f int) string {
		if m.focus == f {
			return ">"
		}
		return " "
	}

	var b strings.Builder
	b.WriteString(focusMark(formFocusPlate) + " Plate:    " + m.plate.View() + "\n")
	b.WriteString(focusMark(formFocusType) + " Type:     " + typeLabel(m.vtype) + "\n")
	b.WriteString(focusMark(formFocusCategory) + " Category: " + m.category.View() + "\n")
	b.WriteString(focusMark(formFocusNote) + " Note:\n" + m.note.View() + "\n")

	if m.saving {
		b.WriteString("\nSaving...\n")
	}
	if m.lastErr != nil {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.lastErr.Error()) + "\n")
	}

	return renderPage("NEW ENTRY",
		strings.TrimRight(b.String(), "\n"),
		"enter/ctrl+d: save │ tab: next field │ ctrl+s: scan plate │ esc: cancel")
}
