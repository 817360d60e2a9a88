package interfaces

import (
	"context"
	"sync"

	"token-radar/src/models"
)

// -----------------------------------------------------------------------------
// IFeedSource interface for producing token table data.
// -----------------------------------------------------------------------------

type IFeedSource interface {

	// Name returns the unique identifier of the source
	Name() string

	// -----------------------------------------------------------------------------

	// FetchInitialData builds the starting record list. It observes the
	// configured initial-load delay, so the caller sits in a loading state
	// until it returns.
	FetchInitialData() ([]models.MTokenRecord, error)

	// -----------------------------------------------------------------------------

	// IsRealTime returns true if the source pushes updates on its own clock
	IsRealTime() bool

	// -----------------------------------------------------------------------------

	// Start begins the tick loop
	// ctx: controls the lifecycle (cancellation stops the source)
	// outputChan: channel to push updates to
	// wg: WaitGroup to signal when the source has fully stopped
	Start(ctx context.Context, outputChan chan<- *models.MFeedUpdate, wg *sync.WaitGroup) error

	// -----------------------------------------------------------------------------

	// Stop terminates the tick loop (manual stop; cancelling the context
	// passed to Start is the usual path)
	Stop() error
}
