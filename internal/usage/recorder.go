// Package usage tallies minutes spent on the site by bumping the stored
// counter on a timer.
package usage

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/alfredjeanlab/touchgrass/internal/events"
	"github.com/alfredjeanlab/touchgrass/internal/model"
	"github.com/alfredjeanlab/touchgrass/internal/store"
)

// DefaultInterval is one usage minute.
const DefaultInterval = time.Minute

// Updater is the read-modify-write side of store.ConfigStore.
type Updater interface {
	Update(ctx context.Context, m store.Mutator) (model.Storage, error)
}

// Recorder adds one minute of usage per tick.
//
// Ticks go through Updater.Update, so a tick that interleaves with a settings
// save in another context can lose either write.
type Recorder struct {
	store     Updater
	publisher events.Publisher
	interval  time.Duration
	source    string
	logger    *slog.Logger
	now       func() time.Time

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRecorder creates a recorder. A non-positive interval means DefaultInterval
// and a nil publisher disables events.
func NewRecorder(u Updater, pub events.Publisher, interval time.Duration, source string, logger *slog.Logger) *Recorder {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if pub == nil {
		pub = &events.NoopPublisher{}
	}
	return &Recorder{
		store:     u,
		publisher: pub,
		interval:  interval,
		source:    source,
		logger:    logger,
		now:       time.Now,
	}
}

// Start begins recording. The first minute is counted immediately.
func (r *Recorder) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.run(ctx)
	}()
}

// Stop cancels the recorder and waits for an in-flight tick to finish.
func (r *Recorder) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
	r.wg.Wait()
}

func (r *Recorder) run(ctx context.Context) {
	r.tick(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.tick(ctx)
		}
	}
}

// tick records one minute. Failures are logged and the next tick tries again.
func (r *Recorder) tick(ctx context.Context) {
	if _, err := r.Tick(ctx); err != nil && ctx.Err() == nil {
		r.logger.Error("recording usage failed", "source", r.source, "err", err, "hint", store.UserMessage(err))
	}
}

// Tick adds one minute and announces the new total.
func (r *Recorder) Tick(ctx context.Context) (model.Storage, error) {
	st, err := r.store.Update(ctx, store.Increment(1))
	if err != nil {
		return model.Storage{}, err
	}
	r.logger.Debug("usage recorded", "source", r.source, "total_usage", st.TotalUsage)

	ev := events.UsageTicked{Source: r.source, TotalUsage: st.TotalUsage, At: r.now().UTC()}
	if err := r.publisher.Publish(ctx, events.TopicUsageTicked, ev); err != nil {
		r.logger.Warn("publishing usage event failed", "source", r.source, "err", err)
	}
	return st, nil
}
