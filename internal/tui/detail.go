// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/goatgarage/go-vehicle-logbook/internal/filter"
	"github.com/goatgarage/go-vehicle-logbook/internal/service"
	"github.com/goatgarage/go-vehicle-logbook/models"
)

const dateLayout = "2006-01-02"

type confirmTarget int

const (
	confirmNone confirmTarget = iota
	confirmEntry
	confirmLastEntry
	confirmVehicle
)

// DetailModel shows one vehicle: its entries grouped by day, searchable
// by category/note text and restrictable to a date range.
type DetailModel struct {
	svc service.RecordService
	loc *time.Location

	vehicleID string
	idx       int

	searching bool
	search    textinput.Model

	dateRange    filter.DateRange
	rangeEditing bool
	rangeInputs  []textinput.Model
	rangeFocus   int

	editing    bool
	plateInput textinput.Model
	editType   models.VehicleType

	confirming confirmTarget
	confirm    confirmModel

	status  string
	lastErr error
}

func NewDetailModel(svc service.RecordService, loc *time.Location) *DetailModel {
	search := textinput.New()
	search.Placeholder = "category or note"
	search.Width = 30

	rangeInputs := make([]textinput.Model, 2)
	for i := range rangeInputs {
		rangeInputs[i] = textinput.New()
		rangeInputs[i].Placeholder = dateLayout
		rangeInputs[i].Width = 12
	}

	plateInput := textinput.New()
	plateInput.Width = 20

	return &DetailModel{
		svc:         svc,
		loc:         loc,
		search:      search,
		rangeInputs: rangeInputs,
		plateInput:  plateInput,
	}
}

func (m *DetailModel) Init() tea.Cmd {
	return nil
}

func (m *DetailModel) reset(vehicleID string) {
	m.vehicleID = vehicleID
	m.idx = 0
	m.searching = false
	m.search.SetValue("")
	m.dateRange = filter.DateRange{}
	m.rangeEditing = false
	m.editing = false
	m.confirming = confirmNone
	m.status = ""
	m.lastErr = nil
}

func (m *DetailModel) vehicle() (*models.Vehicle, bool) {
	return m.svc.VehicleByID(m.vehicleID)
}

// visible applies search and date-range filters, then groups by day.
func (m *DetailModel) visible() ([]filter.EntryGroup, []*models.Entry) {
	vehicle, ok := m.vehicle()
	if !ok {
		return nil, nil
	}

	entries := filter.EntriesMatching(vehicle.Entries, m.search.Value())
	entries = filter.EntriesInRange(entries, m.dateRange)

	groups := filter.GroupEntriesByDay(entries, m.loc)
	var flat []*models.Entry
	for _, g := range groups {
		flat = append(flat, g.Entries...)
	}
	return groups, flat
}

func (m *DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case OpenDetail:
		m.reset(msg.VehicleID)
		return m, nil
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *DetailModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.confirming != confirmNone:
		return m.handleConfirmKey(msg)
	case m.searching:
		return m.handleSearchKey(msg)
	case m.rangeEditing:
		return m.handleRangeKey(msg)
	case m.editing:
		return m.handleEditKey(msg)
	}

	_, flat := m.visible()
	if m.idx >= len(flat) {
		m.idx = max(len(flat)-1, 0)
	}

	switch {
	case key.Matches(msg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Page: "dashboard"} }
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(flat)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.search):
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(msg, keys.rangeTog):
		if m.dateRange.Active {
			m.dateRange = filter.DateRange{}
			m.idx = 0
			return m, nil
		}
		m.rangeEditing = true
		m.rangeFocus = 0
		return m, m.rangeInputs[0].Focus()
	case key.Matches(msg, keys.edit):
		if vehicle, ok := m.vehicle(); ok {
			m.editing = true
			m.plateInput.SetValue(vehicle.Plate)
			m.editType = vehicle.Type
			return m, m.plateInput.Focus()
		}
	case key.Matches(msg, keys.newEntry):
		if vehicle, ok := m.vehicle(); ok {
			plate, vtype := vehicle.Plate, vehicle.Type
			return m, func() tea.Msg {
				return NavigateTo{Page: "form", Payload: OpenForm{Plate: plate, Type: vtype}}
			}
		}
	case key.Matches(msg, keys.delete):
		if m.idx < len(flat) {
			entry := flat[m.idx]
			vehicle, _ := m.vehicle()
			if len(vehicle.Entries) == 1 {
				m.confirming = confirmLastEntry
				m.confirm = confirmModel{message: fmt.Sprintf(
					"Delete the last entry of %s?\nThe vehicle itself will be removed with it.", vehicle.Plate)}
			} else {
				m.confirming = confirmEntry
				m.confirm = confirmModel{message: fmt.Sprintf("Delete entry %q?", entry.Category)}
			}
		}
	case key.Matches(msg, keys.deleteVeh):
		if vehicle, ok := m.vehicle(); ok {
			m.confirming = confirmVehicle
			m.confirm = confirmModel{message: fmt.Sprintf(
				"Delete vehicle %s and all %d entries?", vehicle.Plate, len(vehicle.Entries))}
		}
	}
	return m, nil
}

func (m *DetailModel) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		target := m.confirming
		m.confirming = confirmNone
		return m.applyDelete(target)
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.confirming = confirmNone
	}
	return m, nil
}

func (m *DetailModel) applyDelete(target confirmTarget) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	switch target {
	case confirmEntry, confirmLastEntry:
		_, flat := m.visible()
		if m.idx >= len(flat) {
			return m, nil
		}
		vehicleRemoved, err := m.svc.DeleteEntry(ctx, m.vehicleID, flat[m.idx].ID)
		if err != nil {
			m.lastErr = err
			return m, nil
		}
		if vehicleRemoved {
			return m, func() tea.Msg { return NavigateTo{Page: "dashboard"} }
		}
		m.status = "entry deleted"
		m.idx = 0
	case confirmVehicle:
		if err := m.svc.DeleteVehicle(ctx, m.vehicleID); err != nil {
			m.lastErr = err
			return m, nil
		}
		return m, func() tea.Msg { return NavigateTo{Page: "dashboard"} }
	}
	return m, nil
}

func (m *DetailModel) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.searching = false
		m.search.SetValue("")
		m.search.Blur()
	case key.Matches(msg, keys.enter):
		m.searching = false
		m.search.Blur()
	default:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.idx = 0
		return m, cmd
	}
	return m, nil
}

func (m *DetailModel) handleRangeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.rangeEditing = false
		m.blurRangeInputs()
	case key.Matches(msg, keys.tab), key.Matches(msg, keys.backtab):
		m.blurRangeInputs()
		m.rangeFocus = (m.rangeFocus + 1) % len(m.rangeInputs)
		return m, m.rangeInputs[m.rangeFocus].Focus()
	case key.Matches(msg, keys.enter):
		r, err := parseDateRange(m.rangeInputs[0].Value(), m.rangeInputs[1].Value(), m.loc)
		if err != nil {
			m.lastErr = err
			return m, nil
		}
		m.dateRange = r
		m.rangeEditing = false
		m.blurRangeInputs()
		m.lastErr = nil
		m.idx = 0
	default:
		var cmd tea.Cmd
		m.rangeInputs[m.rangeFocus], cmd = m.rangeInputs[m.rangeFocus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *DetailModel) blurRangeInputs() {
	for i := range m.rangeInputs {
		m.rangeInputs[i].Blur()
	}
}

func (m *DetailModel) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.editing = false
		m.plateInput.Blur()
		m.lastErr = nil
	case key.Matches(msg, keys.tab):
		m.editType = nextType(m.editType)
	case key.Matches(msg, keys.enter):
		err := m.svc.UpdateVehicle(context.Background(), m.vehicleID, m.plateInput.Value(), m.editType)
		switch {
		case errors.Is(err, service.ErrPlateTaken):
			m.lastErr = fmt.Errorf("plate %q already belongs to another vehicle", m.plateInput.Value())
		case err != nil:
			m.lastErr = err
		default:
			m.editing = false
			m.plateInput.Blur()
			m.lastErr = nil
			m.status = "vehicle updated"
		}
	default:
		var cmd tea.Cmd
		m.plateInput, cmd = m.plateInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// parseDateRange turns two yyyy-mm-dd strings into an inclusive range
// covering whole days. An empty start or end leaves that side open.
func parseDateRange(start, end string, loc *time.Location) (filter.DateRange, error) {
	r := filter.DateRange{Active: true}

	if s := strings.TrimSpace(start); s != "" {
		t, err := time.ParseInLocation(dateLayout, s, loc)
		if err != nil {
			return filter.DateRange{}, fmt.Errorf("bad start date %q", s)
		}
		r.Start = t
	}
	if s := strings.TrimSpace(end); s != "" {
		t, err := time.ParseInLocation(dateLayout, s, loc)
		if err != nil {
			return filter.DateRange{}, fmt.Errorf("bad end date %q", s)
		}
		r.End = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	} else {
		r.End = time.Date(9999, 12, 31, 23, 59, 59, 0, loc)
	}

	return r, nil
}

func nextType(t models.VehicleType) models.VehicleType {
	switch t.Kind {
	case models.KindCar:
		return models.TypeBike
	case models.KindBike:
		return models.VehicleType{}
	default:
		return models.TypeCar
	}
}

func (m *DetailModel) View() string {
	vehicle, ok := m.vehicle()
	if !ok {
		return renderPage("VEHICLE", "vehicle no longer exists", "esc: back")
	}

	if m.confirming != confirmNone {
		return m.confirm.View()
	}

	groups, flat := m.visible()
	now := time.Now().In(m.loc)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n\n", vehicle.Plate, typeLabel(vehicle.Type)))

	if m.editing {
		b.WriteString("New plate: " + m.plateInput.View() + "\n")
		b.WriteString("Type:      " + typeLabel(m.editType) + "  (tab to change)\n\n")
	}
	if m.searching || m.search.Value() != "" {
		b.WriteString("Search: " + m.search.View() + "\n\n")
	}
	if m.rangeEditing {
		b.WriteString("From: " + m.rangeInputs[0].View() + "  To: " + m.rangeInputs[1].View() + "\n\n")
	} else if m.dateRange.Active {
		b.WriteString(fmt.Sprintf("Range: %s .. %s\n\n",
			m.dateRange.Start.Format(dateLayout), m.dateRange.End.Format(dateLayout)))
	}

	if len(flat) == 0 {
		b.WriteString("No entries match.\n")
	}

	row := 0
	for _, g := range groups {
		b.WriteString(groupStyle.Render(dayLabel(g.Day, now)))
		b.WriteString("\n")
		for _, e := range g.Entries {
			cursor := "  "
			if row == m.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%s  %-16s %s\n",
				cursor, e.CreatedAt.In(m.loc).Format("15:04"),
				fitText(e.Category, 16), fitText(valueOrDash(e.Note), 40)))
			row++
		}
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(m.status + "\n")
	}
	if m.lastErr != nil {
		b.WriteString(errorStyle.Render("Error: "+m.lastErr.Error()) + "\n")
	}

	hotKeys := "n: new entry │ /: search │ r: date range │ e: edit │ d: delete entry │ D: delete vehicle │ esc: back"
	if m.editing {
		hotKeys = "enter: save │ tab: type │ esc: cancel"
	} else if m.rangeEditing {
		hotKeys = "enter: apply │ tab: switch field │ esc: cancel"
	}

	return renderPage("VEHICLE", strings.TrimRight(b.String(), "\n"), hotKeys)
}
