package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/goatgarage/go-vehicle-logbook/models"
)

// NavigateTo switches the root router to another page, optionally
// handing it a payload message as its opening argument.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// OpenDetail opens the detail page for one vehicle.
type OpenDetail struct {
	VehicleID string
}

// OpenForm opens the new-entry form, optionally pre-filled. A confirmed
// scan delivers the plate this way, with the draft the user had already
// typed carried along unchanged.
type OpenForm struct {
	Plate    string
	Type     models.VehicleType
	Category string
	Note     string
}

// StartScan opens the scanner page. ReturnPage is where a confirmed or
// abandoned scan navigates back to. When the scan was opened from the
// form, Draft holds the form fields so a confirmed plate does not wipe
// them.
type StartScan struct {
	ReturnPage string
	Draft      OpenForm
}

// FilterPlate pre-fills the dashboard search with a plate delivered by
// a confirmed scan.
type FilterPlate struct {
	Plate string
}

type entrySavedMsg struct {
	vehicleID string
	err       error
}

type copiedMsg struct{}

type clearStatusMsg struct{}

type scanTickMsg struct{}
