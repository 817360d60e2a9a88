package feed

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"token-radar/src/helpers"
	"token-radar/src/logger"
	"token-radar/src/models"
)

// -----------------------------------------------------------------------------
// MockFeedSource
// -----------------------------------------------------------------------------

// MockFeedSource simulates a live token feed. It builds a synthetic universe
// once, then perturbs prices and volumes on a fixed ticker and pushes the
// whole list plus a fresh observation map downstream every tick.
type MockFeedSource struct {
	Config *models.MConfig
	Logger *logger.Logger

	rng *rand.Rand

	// records is owned by the tick goroutine once Start has been called;
	// the mutex only covers the Start/Stop/FetchInitialData handoff.
	records []models.MTokenRecord
	seq     int64

	// pendingErr is consumed by the next tick: instead of a data update the
	// loop pushes an errored one, driving downstream into its error state.
	pendingErr string

	cancelFunc context.CancelFunc
	ctx        context.Context
	outputChan chan<- *models.MFeedUpdate
	isRunning  atomic.Bool
	mu         sync.Mutex
}

// -----------------------------------------------------------------------------

func NewMockFeedSource(cfg *models.MConfig) *MockFeedSource {
	seed := cfg.Feed.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &MockFeedSource{
		Config: cfg,
		Logger: logger.NewLogger(cfg.LogLevel, "MockFeedSource"),
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// -----------------------------------------------------------------------------

func (s *MockFeedSource) Name() string {
	return "mock-feed"
}

// -----------------------------------------------------------------------------

// IsRealTime returns true: the source pushes on its own clock rather than
// being polled.
func (s *MockFeedSource) IsRealTime() bool {
	return true
}

// -----------------------------------------------------------------------------

// FetchInitialData builds the starting universe. The configured initial-load
// delay is observed first, so callers see the same loading window a real
// first fetch would produce.
func (s *MockFeedSource) FetchInitialData() ([]models.MTokenRecord, error) {
	time.Sleep(time.Duration(s.Config.Feed.InitialLoadDelayMs) * time.Millisecond)

	if s.Config.Feed.FailOnLoad {
		return nil, helpers.NewFeedError("token feed unavailable", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = Universe(s.Config.Feed.UniverseSize, s.rng, time.Now())

	out := make([]models.MTokenRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

// -----------------------------------------------------------------------------

// Tick applies one simulated update to a record list. It is pure with respect
// to its input: the returned list is a new slice and the input is untouched.
// For every record the pre-tick price is recorded in the observation map
// BEFORE the new price is committed, so trends are always classified against
// the price that was current when the tick began.
func Tick(
	records []models.MTokenRecord,
	priceJitter, volumeJitter float64,
	rng *rand.Rand,
) ([]models.MTokenRecord, map[string]models.MPriceObservation) {

	updated := make([]models.MTokenRecord, len(records))
	observations := make(map[string]models.MPriceObservation, len(records))

	for i, rec := range records {
		previousPrice := rec.Price

		// Bounded multiplicative perturbation: price in [1-j, 1+j].
		newPrice := previousPrice * (1 + (rng.Float64()*2-1)*priceJitter)

		observations[rec.ID] = models.MPriceObservation{
			PreviousPrice: previousPrice,
			Trend:         models.ClassifyTrend(previousPrice, newPrice),
		}

		rec.Price = newPrice
		rec.Volume24h = rec.Volume24h * (1 + (rng.Float64()*2-1)*volumeJitter)
		updated[i] = rec
	}

	return updated, observations
}

// -----------------------------------------------------------------------------

// FailNext makes the next tick push an errored update instead of data.
// One-shot: the tick after it resumes normal updates.
func (s *MockFeedSource) FailNext(msg string) {
	s.mu.Lock()
	s.pendingErr = msg
	s.mu.Unlock()
}

// takePendingErr returns and clears the injected error, if any.
func (s *MockFeedSource) takePendingErr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg := s.pendingErr
	s.pendingErr = ""
	return msg
}

// -----------------------------------------------------------------------------

// Start begins the tick loop
func (s *MockFeedSource) Start(parentCtx context.Context, outputChan chan<- *models.MFeedUpdate, wg *sync.WaitGroup) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning.Load() {
		return fmt.Errorf("source %s is already running", s.Name())
	}
	if s.records == nil {
		return fmt.Errorf("source %s has no data: call FetchInitialData first", s.Name())
	}

	// Derive a context so we can stop just this source via Stop()
	ctx, cancel := context.WithCancel(parentCtx)
	s.cancelFunc = cancel
	s.ctx = ctx
	s.outputChan = outputChan
	s.isRunning.Store(true)

	wg.Add(1)
	go s.runLoop(ctx, outputChan, wg)
	s.Logger.Info("Started MockFeedSource: %d records, tick every %dms",
		len(s.records), s.Config.Feed.TickIntervalMs)
	return nil
}

// -----------------------------------------------------------------------------

// Stop signals the run loop to exit
func (s *MockFeedSource) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning.Load() {
		return fmt.Errorf("source %s is not running", s.Name())
	}

	if s.cancelFunc != nil {
		s.cancelFunc()
	}
	s.isRunning.Store(false)
	s.Logger.Info("Stopped MockFeedSource")
	return nil
}

// -----------------------------------------------------------------------------

// runLoop drives the ticker. The records slice is owned by this goroutine
// for the lifetime of the loop: each tick reads the current list, derives
// observations from pre-tick prices, commits the new list and pushes both
// downstream as a wholesale replacement.
func (s *MockFeedSource) runLoop(ctx context.Context, outputChan chan<- *models.MFeedUpdate, wg *sync.WaitGroup) {
	defer wg.Done()

	ticker := time.NewTicker(time.Duration(s.Config.Feed.TickIntervalMs) * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if msg := s.takePendingErr(); msg != "" {
				s.seq++
				update := &models.MFeedUpdate{
					Sequence:  s.seq,
					Err:       msg,
					Timestamp: time.Now().UnixMilli(),
				}
				select {
				case outputChan <- update:
				case <-ctx.Done():
					return
				}
				continue
			}

			if len(s.records) == 0 {
				// Nothing to mutate; an empty universe never refills.
				s.Logger.Warning("Record list is empty, stopping tick loop")
				return
			}

			updated, observations := Tick(
				s.records,
				s.Config.Feed.PriceJitter,
				s.Config.Feed.VolumeJitter,
				s.rng,
			)
			s.records = updated
			s.seq++

			update := &models.MFeedUpdate{
				Sequence:     s.seq,
				Records:      updated,
				Observations: observations,
				Timestamp:    time.Now().UnixMilli(),
			}

			select {
			case outputChan <- update:
			case <-ctx.Done():
				return
			}
		}
	}
}
