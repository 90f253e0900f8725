// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"time"

	"github.com/goatgarage/go-vehicle-logbook/internal/logger"
)

// Pinger is the slice of the database handle the health worker needs.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// DBPingWorker periodically pings the database so a storage outage
// shows up in the log while the application keeps serving from memory,
// instead of surfacing only on the next failed write.
type DBPingWorker struct {
	db       Pinger
	logger   *logger.Logger
	interval time.Duration
}

func NewDBPingWorker(db Pinger, log *logger.Logger, interval time.Duration) *DBPingWorker {
	if interval <= 0 {
		interval = time.Minute
	}
	return &DBPingWorker{db: db, logger: log, interval: interval}
}

func (w *DBPingWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.db.PingContext(ctx); err != nil && ctx.Err() == nil {
				w.logger.Warn().Err(err).Msg("database unreachable")
			}
		}
	}
}
