// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/goatgarage/go-vehicle-logbook/internal/filter"
	"github.com/goatgarage/go-vehicle-logbook/internal/service"
	"github.com/goatgarage/go-vehicle-logbook/models"
)

// typeFilters is the cycle order of the dashboard's type filter; the
// zero value is the "all types" wildcard.
var typeFilters = []models.VehicleType{{}, models.TypeCar, models.TypeBike}

// DashboardModel is the landing page: all vehicles grouped by the day
// of their most recent entry, filterable by plate substring and type.
type DashboardModel struct {
	svc service.RecordService
	loc *time.Location

	idx       int
	searching bool
	search    textinput.Model
	typeIdx   int
	status    string
}

func NewDashboardModel(svc service.RecordService, loc *time.Location) *DashboardModel {
	search := textinput.New()
	search.Placeholder = "plate"
	search.Width = 30

	return &DashboardModel{svc: svc, loc: loc, search: search}
}

func (m *DashboardModel) Init() tea.Cmd {
	return nil
}

// visible applies the current filter chain and returns the day groups
// plus the flat cursor order.
func (m *DashboardModel) visible() ([]filter.VehicleGroup, []*models.Vehicle) {
	vehicles := m.svc.Vehicles()
	vehicles = filter.VehiclesMatching(vehicles, m.search.Value())
	vehicles = filter.VehiclesOfType(vehicles, typeFilters[m.typeIdx])

	groups := filter.GroupVehiclesByDay(vehicles, m.loc)
	var flat []*models.Vehicle
	for _, g := range groups {
		flat = append(flat, g.Vehicles...)
	}
	return groups, flat
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FilterPlate:
		m.search.SetValue(msg.Plate)
		m.search.Blur()
		m.searching = false
		m.idx = 0
		return m, nil
	case copiedMsg:
		m.status = "plate copied to clipboard"
		return m, tea.Tick(2*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *DashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
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

	_, flat := m.visible()
	if m.idx >= len(flat) {
		m.idx = max(len(flat)-1, 0)
	}

	switch {
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
	case key.Matches(msg, keys.typeFilter):
		m.typeIdx = (m.typeIdx + 1) % len(typeFilters)
		m.idx = 0
	case key.Matches(msg, keys.newEntry):
		return m, func() tea.Msg { return NavigateTo{Page: "form", Payload: OpenForm{}} }
	case key.Matches(msg, keys.scan):
		return m, func() tea.Msg {
			return NavigateTo{Page: "scanner", Payload: StartScan{ReturnPage: "dashboard"}}
		}
	case key.Matches(msg, keys.enter):
		if m.idx < len(flat) {
			id := flat[m.idx].ID
			return m, func() tea.Msg {
				return NavigateTo{Page: "detail", Payload: OpenDetail{VehicleID: id}}
			}
		}
	case key.Matches(msg, keys.copy):
		if m.idx < len(flat) {
			plate := flat[m.idx].Plate
			return m, func() tea.Msg {
				if err := clipboard.WriteAll(plate); err != nil {
					return clearStatusMsg{}
				}
				return copiedMsg{}
			}
		}
	}
	return m, nil
}

func (m *DashboardModel) View() string {
	groups, flat := m.visible()
	now := time.Now().In(m.loc)

	var b strings.Builder

	if m.searching || m.search.Value() != "" {
		b.WriteString("Search: " + m.search.View() + "\n\n")
	}
	if t := typeFilters[m.typeIdx]; !t.IsZero() {
		b.WriteString("Type: " + t.String() + "\n\n")
	}

	if len(flat) == 0 {
		b.WriteString("No vehicles yet. Press n to add the first entry.\n")
	}

	row := 0
	for _, g := range groups {
		b.WriteString(groupStyle.Render(dayLabel(g.Day, now)))
		b.WriteString("\n")
		for _, v := range g.Vehicles {
			cursor := "  "
			if row == m.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%-14s %-8s %d entries\n",
				cursor, fitText(v.Plate, 14), typeLabel(v.Type), len(v.Entries)))
			row++
		}
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(m.status + "\n")
	}

	return renderPage("VEHICLE LOGBOOK",
		strings.TrimRight(b.String(), "\n"),
		"enter: open │ n: new entry │ s: scan │ /: search │ t: type │ c: copy plate │ v: about │ q: quit")
}

func typeLabel(t models.VehicleType) string {
	if t.IsZero() {
		return "[?]"
	}
	return "[" + t.String() + "]"
}
