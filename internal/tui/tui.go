package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/goatgarage/go-vehicle-logbook/internal/logger"
	"github.com/goatgarage/go-vehicle-logbook/internal/service"
	"github.com/goatgarage/go-vehicle-logbook/models"
)

type TUI struct {
	svc      service.RecordService
	sessions SessionFactory
	logger   *logger.Logger

	buildInfo models.BuildInfo
	loc       *time.Location
}

func New(svc service.RecordService, sessions SessionFactory, loc *time.Location, buildInfo models.BuildInfo, log *logger.Logger) *TUI {
	return &TUI{
		svc:       svc,
		sessions:  sessions,
		logger:    log,
		buildInfo: buildInfo,
		loc:       loc,
	}
}

// Run blocks until the user quits the terminal UI.
func (t *TUI) Run(ctx context.Context) error {
	pages := map[string]tea.Model{
		"dashboard": NewDashboardModel(t.svc, t.loc),
		"detail":    NewDetailModel(t.svc, t.loc),
		"form":      NewEntryFormModel(t.svc),
		"scanner":   NewScannerModel(t.sessions),
	}

	root := NewRootModel(pages, "dashboard", t.buildInfo)
	_, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
