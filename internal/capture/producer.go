// SPDX-License-Identifier: Apache-2.0

package capture

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/goatgarage/go-vehicle-logbook/internal/logger"
)

// FrameProducer is the camera side of the pipeline. Start must either
// begin delivering frames through publish or fail fast; a start failure
// is how "camera unavailable" surfaces. Stop halts delivery and waits
// for the producer goroutine to exit.
type FrameProducer interface {
	Start(ctx context.Context, publish func(*Frame)) error
	Stop()
}

// DirProducer replays the image files of a directory at a fixed rate,
// looping forever. It stands in for a live camera in demos and local
// runs: the directory is the scene, the FPS is the shutter.
type DirProducer struct {
	dir    string
	fps    int
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewDirProducer(dir string, fps int, log *logger.Logger) *DirProducer {
	if fps <= 0 {
		fps = 10
	}
	return &DirProducer{dir: dir, fps: fps, logger: log}
}

// Start lists the directory up front so a missing or empty frame source
// fails here, before any goroutine runs. Delivery then happens from a
// single goroutine until Stop or ctx cancellation.
func (p *DirProducer) Start(ctx context.Context, publish func(*Frame)) error {
	paths, err := p.listFrames()
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return fmt.Errorf("producer already started")
	}

	ctx, p.cancel = context.WithCancel(ctx)

	p.wg.Add(1)
	go p.run(ctx, paths, publish)

	p.logger.Debug().
		Str("dir", p.dir).
		Int("frames", len(paths)).
		Int("fps", p.fps).
		Msg("directory frame producer started")
	return nil
}

// Stop halts delivery and blocks until the producer goroutine exits.
// Idempotent.
func (p *DirProducer) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	p.wg.Wait()
}

func (p *DirProducer) run(ctx context.Context, paths []string, publish func(*Frame)) {
	defer p.wg.Done()

	ticker := time.NewTicker(time.Second / time.Duration(p.fps))
	defer ticker.Stop()

	var seq uint64
	for i := 0; ; i = (i + 1) % len(paths) {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		data, err := os.ReadFile(paths[i])
		if err != nil {
			p.logger.Warn().Err(err).Str("path", paths[i]).Msg("skipping unreadable frame file")
			continue
		}

		seq++
		publish(&Frame{
			Data:      data,
			Seq:       seq,
			Timestamp: time.Now(),
		})
	}
}

func (p *DirProducer) listFrames() ([]string, error) {
	entries, err := os.ReadDir(p.dir)
	if err != nil {
		return nil, fmt.Errorf("reading frames directory %s: %w", p.dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".jpg", ".jpeg", ".png":
			paths = append(paths, filepath.Join(p.dir, e.Name()))
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoFrames, p.dir)
	}

	sort.Strings(paths)
	return paths, nil
}
