package utils

import (
	"sync"

	"token-radar/src/models"
)

// -----------------------------------------------------------------------------
// PriceHistory keeps a bounded per-token ring buffer of recent ticks.
// It backs the detail modal's price history; nothing here is persisted.
// -----------------------------------------------------------------------------

type PriceHistory struct {
	streams   map[string]*RingBuffer
	maxPoints int
	mu        sync.RWMutex
}

// -----------------------------------------------------------------------------

func NewPriceHistory(maxPoints int) *PriceHistory {
	if maxPoints <= 0 {
		maxPoints = DefaultHistoryPoints
	}
	return &PriceHistory{
		streams:   make(map[string]*RingBuffer),
		maxPoints: maxPoints,
	}
}

// -----------------------------------------------------------------------------

// Record appends one tick for every record in the update.
func (ph *PriceHistory) Record(update *models.MFeedUpdate) {
	if update == nil {
		return
	}

	ph.mu.Lock()
	defer ph.mu.Unlock()

	for _, rec := range update.Records {
		buf, ok := ph.streams[rec.ID]
		if !ok {
			buf = NewRingBuffer(ph.maxPoints)
			ph.streams[rec.ID] = buf
		}
		buf.Append(models.MHistoryPoint{
			Timestamp: update.Timestamp,
			Price:     rec.Price,
			Volume:    rec.Volume24h,
		})
	}
}

// -----------------------------------------------------------------------------

// Latest returns up to n recent points for one token, oldest first.
func (ph *PriceHistory) Latest(id string, n int) []models.MHistoryPoint {
	ph.mu.RLock()
	defer ph.mu.RUnlock()

	buf, ok := ph.streams[id]
	if !ok {
		return []models.MHistoryPoint{}
	}
	return buf.GetLatest(n)
}

// -----------------------------------------------------------------------------

// Tracked returns the number of tokens with recorded history.
func (ph *PriceHistory) Tracked() int {
	ph.mu.RLock()
	defer ph.mu.RUnlock()
	return len(ph.streams)
}
