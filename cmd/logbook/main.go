package main

import (
	"context"
	"fmt"
	"time"

	"github.com/goatgarage/go-vehicle-logbook/internal/adapter"
	"github.com/goatgarage/go-vehicle-logbook/internal/capture"
	"github.com/goatgarage/go-vehicle-logbook/internal/config"
	"github.com/goatgarage/go-vehicle-logbook/internal/logger"
	"github.com/goatgarage/go-vehicle-logbook/internal/service"
	"github.com/goatgarage/go-vehicle-logbook/internal/store"
	"github.com/goatgarage/go-vehicle-logbook/internal/tui"
	"github.com/goatgarage/go-vehicle-logbook/internal/workers"
	"github.com/goatgarage/go-vehicle-logbook/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("logbook")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("apply migrations")
	}

	repository := store.NewVehicleRepository(db, log)

	recordSvc, err := service.NewRecordService(ctx, repository, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create record service")
	}

	recognizer := adapter.NewALPRRecognizer(adapter.ALPRClientConfig{
		Endpoint: cfg.Recognizer.Endpoint,
		Timeout:  cfg.Recognizer.Timeout,
	})
	stage := capture.NewStage(recognizer, cfg.Recognizer.MinConfidence)

	// One fresh session per scan interaction.
	sessions := func() (*capture.Session, error) {
		producer := capture.NewDirProducer(cfg.Capture.FramesDir, cfg.Capture.FPS, log)
		return capture.NewSession(producer, stage, log), nil
	}

	background := workers.New(workers.NewDBPingWorker(db, log, time.Minute))
	background.Run(ctx)

	buildInfo := models.NewBuildInfo(buildVersion, buildDate, buildCommit)
	ui := tui.New(recordSvc, sessions, cfg.Location(), buildInfo, log)

	if err = ui.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("terminal ui error")
	}

	cancel()
	background.Wait()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
