// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/secure-notes/internal/logger"
	"github.com/MKhiriev/secure-notes/internal/service"
)

const defaultInterval = 5 * time.Minute

// periodicJob calls run on a ticker.
type periodicJob struct {
	name     string
	interval time.Duration
	run      func(ctx context.Context) (int64, error)
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func newPeriodicJob(name string, interval time.Duration, run func(ctx context.Context) (int64, error), logger *logger.Logger) *periodicJob {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &periodicJob{name: name, interval: interval, run: run, logger: logger}
}

// NewSessionSweeper deactivates expired sessions every interval.
func NewSessionSweeper(sessions service.SessionService, interval time.Duration, logger *logger.Logger) Worker {
	return newPeriodicJob("session_sweeper", interval, sessions.SweepExpired, logger)
}

// NewPaymentExpirer cancels PENDING payments older than the pending TTL
// every interval.
func NewPaymentExpirer(subscriptions service.SubscriptionService, interval time.Duration, logger *logger.Logger) Worker {
	return newPeriodicJob("payment_expirer", interval, func(ctx context.Context) (int64, error) {
		n, err := subscriptions.ExpirePending(ctx)
		return int64(n), err
	}, logger)
}

func (j *periodicJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(j.logger.WithContext(ctx))
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	j.logger.Info().Str("worker", j.name).Dur("interval", j.interval).Msg("worker started")

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(jobCtx)
			}
		}
	}()
}

func (j *periodicJob) tick(ctx context.Context) {
	n, err := j.run(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		j.logger.Err(err).Str("worker", j.name).Msg("worker run failed")
		return
	}
	if n > 0 {
		j.logger.Info().Str("worker", j.name).Int64("affected", n).Msg("worker run finished")
	}
}

func (j *periodicJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
