package interfaces

import "token-radar/src/models"

// -----------------------------------------------------------------------------
// IDataExchanger defining the interface for sharing data with connected
// clients (Server/Push).
// -----------------------------------------------------------------------------

type IDataExchanger interface {
	// Broadcast pushes a feed update to all connected listeners.
	Broadcast(update *models.MFeedUpdate)

	// -----------------------------------------------------------------------------
	// SetInitialState seeds the server state without broadcasting.
	SetInitialState(update *models.MFeedUpdate)

	// -----------------------------------------------------------------------------
	// Start the server
	Start() error

	// -----------------------------------------------------------------------------
	// Stop the server gracefully
	Stop() error
}
