package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goatgarage/go-vehicle-logbook/internal/capture"
	"github.com/goatgarage/go-vehicle-logbook/internal/logger"
	"github.com/goatgarage/go-vehicle-logbook/models"
)

// fakeRecordSvc is an in-memory RecordService for page tests.
type fakeRecordSvc struct {
	vehicles []*models.Vehicle
	upserts  int
}

func (f *fakeRecordSvc) FindVehicle(plate string) (*models.Vehicle, bool) {
	normalized := models.NormalizePlate(plate)
	for _, v := range f.vehicles {
		if v.Plate == normalized {
			return v, true
		}
	}
	return nil, false
}

func (f *fakeRecordSvc) VehicleByID(id string) (*models.Vehicle, bool) {
	for _, v := range f.vehicles {
		if v.ID == id {
			return v, true
		}
	}
	return nil, false
}

func (f *fakeRecordSvc) UpsertEntry(_ context.Context, plate string, vtype models.VehicleType, entry *models.Entry) (*models.Vehicle, error) {
	f.upserts++
	if v, ok := f.FindVehicle(plate); ok {
		v.Entries = append(v.Entries, entry)
		return v, nil
	}
	v := models.NewVehicle(models.NormalizePlate(plate), vtype)
	v.Entries = append(v.Entries, entry)
	f.vehicles = append(f.vehicles, v)
	return v, nil
}

func (f *fakeRecordSvc) DeleteEntry(_ context.Context, vehicleID, entryID string) (bool, error) {
	v, _ := f.VehicleByID(vehicleID)
	v.RemoveEntry(entryID)
	return len(v.Entries) == 0, nil
}

func (f *fakeRecordSvc) DeleteVehicle(_ context.Context, _ string) error { return nil }

func (f *fakeRecordSvc) UpdateVehicle(_ context.Context, _ string, _ string, _ models.VehicleType) error {
	return nil
}

func (f *fakeRecordSvc) Vehicles() []*models.Vehicle { return f.vehicles }

func seededSvc() *fakeRecordSvc {
	car := models.NewVehicle("B 1234 AB", models.TypeCar)
	car.Entries = append(car.Entries, models.NewEntry("Oil", "5w30", time.Now()))

	bike := models.NewVehicle("D 77 XY", models.TypeBike)
	bike.Entries = append(bike.Entries, models.NewEntry("Chain", "", time.Now().AddDate(0, 0, -3)))

	return &fakeRecordSvc{vehicles: []*models.Vehicle{car, bike}}
}

func TestRootModel_NavigateSwitchesPage(t *testing.T) {
	svc := seededSvc()
	pages := map[string]tea.Model{
		"dashboard": NewDashboardModel(svc, time.UTC),
		"detail":    NewDetailModel(svc, time.UTC),
	}
	root := NewRootModel(pages, "dashboard", models.BuildInfo{})

	updated, cmd := root.Update(NavigateTo{Page: "detail", Payload: OpenDetail{VehicleID: svc.vehicles[0].ID}})
	r := updated.(RootModel)
	require.NotNil(t, cmd)

	// The payload command reopens the detail page for the vehicle.
	updated, _ = r.Update(cmd())
	r = updated.(RootModel)
	assert.Contains(t, r.View(), "B 1234 AB")
}

func TestRootModel_UnknownPageIgnored(t *testing.T) {
	root := NewRootModel(map[string]tea.Model{"dashboard": NewDashboardModel(seededSvc(), time.UTC)}, "dashboard", models.BuildInfo{})

	updated, cmd := root.Update(NavigateTo{Page: "nope"})
	assert.Nil(t, cmd)
	assert.Contains(t, updated.View(), "VEHICLE LOGBOOK")
}

func TestDashboard_ShowsAllVehicles(t *testing.T) {
	m := NewDashboardModel(seededSvc(), time.UTC)

	view := m.View()
	assert.Contains(t, view, "B 1234 AB")
	assert.Contains(t, view, "D 77 XY")
	assert.Contains(t, view, "Today")
}

func TestDashboard_TypeFilterCyclesThrough(t *testing.T) {
	m := NewDashboardModel(seededSvc(), time.UTC)

	// First press filters to cars only.
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	view := updated.View()
	assert.Contains(t, view, "B 1234 AB")
	assert.NotContains(t, view, "D 77 XY")

	// Second press filters to bikes.
	updated, _ = updated.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	view = updated.View()
	assert.NotContains(t, view, "B 1234 AB")
	assert.Contains(t, view, "D 77 XY")

	// Third press is back to the wildcard.
	updated, _ = updated.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	view = updated.View()
	assert.Contains(t, view, "B 1234 AB")
	assert.Contains(t, view, "D 77 XY")
}

func TestDashboard_SearchFiltersByPlate(t *testing.T) {
	m := NewDashboardModel(seededSvc(), time.UTC)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	for _, r := range "77" {
		updated, _ = updated.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	view := updated.View()
	assert.Contains(t, view, "D 77 XY")
	assert.NotContains(t, view, "B 1234 AB")
}

func TestEntryForm_SaveOpensDetail(t *testing.T) {
	svc := seededSvc()
	m := NewEntryFormModel(svc)
	m.reset(OpenForm{Plate: "B 1234 AB", Type: models.TypeCar})

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	saved, ok := cmd().(entrySavedMsg)
	require.True(t, ok)
	require.NoError(t, saved.err)
	assert.Equal(t, 1, svc.upserts)

	_, cmd = updated.Update(saved)
	require.NotNil(t, cmd)
	nav, ok := cmd().(NavigateTo)
	require.True(t, ok)
	assert.Equal(t, "detail", nav.Page)
}

func TestDetail_LastEntryDeleteHasStrongerConfirmation(t *testing.T) {
	svc := seededSvc()
	m := NewDetailModel(svc, time.UTC)
	m.reset(svc.vehicles[1].ID) // the bike has a single entry

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	view := updated.View()
	assert.Contains(t, view, "last entry")
	assert.Contains(t, view, "removed with it")
}

// oneFrameProducer publishes a single frame whose bytes the stub
// recognizer below echoes back as the plate text.
type oneFrameProducer struct {
	data []byte
}

func (p *oneFrameProducer) Start(_ context.Context, publish func(*capture.Frame)) error {
	publish(&capture.Frame{Data: p.data, Seq: 1, Timestamp: time.Now()})
	return nil
}

func (p *oneFrameProducer) Stop() {}

func scanSessionFactory(plate string) SessionFactory {
	recognizer := capture.RecognizerFunc(func(_ context.Context, f *capture.Frame) ([]capture.Candidate, error) {
		return []capture.Candidate{{Text: string(f.Data), Confidence: 99}}, nil
	})
	return func() (*capture.Session, error) {
		producer := &oneFrameProducer{data: []byte(plate)}
		return capture.NewSession(producer, capture.NewStage(recognizer, 0), logger.Nop()), nil
	}
}

// captureUntilHeld presses capture until the pump has recognized the
// frame and the session holds a plate for confirmation.
func captureUntilHeld(t *testing.T, m *ScannerModel) {
	t.Helper()
	require.NotNil(t, m.session)
	deadline := time.Now().Add(time.Second)
	for m.session.Phase() != capture.PhaseAwaitingConfirmation {
		if time.Now().After(deadline) {
			t.Fatal("capture never reached confirmation")
		}
		time.Sleep(2 * time.Millisecond)
		_, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	}
}

func TestScanner_ConfirmFromDashboardFiltersSearch(t *testing.T) {
	scanner := NewScannerModel(scanSessionFactory("B 1234 AB"))
	_, _ = scanner.Update(StartScan{ReturnPage: "dashboard"})
	captureUntilHeld(t, scanner)

	_, cmd := scanner.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	require.NotNil(t, cmd)
	nav, ok := cmd().(NavigateTo)
	require.True(t, ok)
	assert.Equal(t, "dashboard", nav.Page)
	assert.Nil(t, scanner.session)

	// The confirmed plate lands in the dashboard search filter.
	dash := NewDashboardModel(seededSvc(), time.UTC)
	updated, _ := dash.Update(nav.Payload)
	view := updated.View()
	assert.Contains(t, view, "B 1234 AB")
	assert.NotContains(t, view, "D 77 XY")
}

func TestScanner_ConfirmPreservesFormDraft(t *testing.T) {
	form := NewEntryFormModel(seededSvc())
	form.reset(OpenForm{})
	form.category.SetValue("Brake pads")
	form.note.SetValue("front axle, squealing")

	_, cmd := form.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	nav, ok := cmd().(NavigateTo)
	require.True(t, ok)
	require.Equal(t, "scanner", nav.Page)
	start, ok := nav.Payload.(StartScan)
	require.True(t, ok)
	assert.Equal(t, "form", start.ReturnPage)
	assert.Equal(t, "Brake pads", start.Draft.Category)

	scanner := NewScannerModel(scanSessionFactory("B 9 XX"))
	_, _ = scanner.Update(start)
	captureUntilHeld(t, scanner)

	_, cmd = scanner.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	require.NotNil(t, cmd)
	nav, ok = cmd().(NavigateTo)
	require.True(t, ok)
	require.Equal(t, "form", nav.Page)
	prefill, ok := nav.Payload.(OpenForm)
	require.True(t, ok)
	assert.Equal(t, "B 9 XX", prefill.Plate)
	assert.Equal(t, "Brake pads", prefill.Category)
	assert.Equal(t, "front axle, squealing", prefill.Note)

	updated, _ := form.Update(prefill)
	view := updated.View()
	assert.Contains(t, view, "B 9 XX")
	assert.Contains(t, view, "Brake pads")
}
