package utils

import (
	"token-radar/src/models"
)

// -----------------------------------------------------------------------------
// RingBuffer is a fixed-size circular buffer of tick history points.
// True ring buffer - no resizing allowed!
// -----------------------------------------------------------------------------

type RingBuffer struct {
	// Data storage as 2D slice (rows x features)
	data     [][models.RB_NUM_FEATURES]float64
	capacity int
	index    int // Next write position
	size     int // Current number of elements
}

// -----------------------------------------------------------------------------

// NewRingBuffer creates a new buffer with fixed capacity
func NewRingBuffer(capacity int) *RingBuffer {
	if capacity <= 0 {
		capacity = DefaultHistoryPoints
	}

	return &RingBuffer{
		data:     make([][models.RB_NUM_FEATURES]float64, capacity),
		capacity: capacity,
		index:    0,
		size:     0,
	}
}

// -----------------------------------------------------------------------------

// Append adds one history point
func (rb *RingBuffer) Append(point models.MHistoryPoint) {
	rb.data[rb.index] = [models.RB_NUM_FEATURES]float64{
		float64(point.Timestamp),
		point.Price,
		point.Volume,
	}

	rb.index = (rb.index + 1) % rb.capacity

	// Update size (never exceeds capacity)
	if rb.size < rb.capacity {
		rb.size++
	}
}

// -----------------------------------------------------------------------------

// GetLatest returns the n most recent points, oldest first
func (rb *RingBuffer) GetLatest(n int) []models.MHistoryPoint {
	if rb.size == 0 || n <= 0 {
		return []models.MHistoryPoint{}
	}

	count := n
	if n > rb.size {
		count = rb.size
	}

	result := make([]models.MHistoryPoint, count)

	// Latest data sits just before the write index
	startIdx := (rb.index - count + rb.capacity) % rb.capacity

	for i := 0; i < count; i++ {
		idx := (startIdx + i) % rb.capacity
		result[i] = pointFromRow(rb.data[idx])
	}

	return result
}

// -----------------------------------------------------------------------------

// GetAll returns all data in insertion order (oldest to newest)
func (rb *RingBuffer) GetAll() []models.MHistoryPoint {
	if rb.size == 0 {
		return []models.MHistoryPoint{}
	}

	result := make([]models.MHistoryPoint, rb.size)

	// Oldest element: at the write index once the buffer has wrapped
	var startIdx int
	if rb.size == rb.capacity {
		startIdx = rb.index
	} else {
		startIdx = 0
	}

	for i := 0; i < rb.size; i++ {
		idx := (startIdx + i) % rb.capacity
		result[i] = pointFromRow(rb.data[idx])
	}

	return result
}

// -----------------------------------------------------------------------------

func pointFromRow(row [models.RB_NUM_FEATURES]float64) models.MHistoryPoint {
	return models.MHistoryPoint{
		Timestamp: int64(row[models.RB_IDX_TIMESTAMP]),
		Price:     row[models.RB_IDX_PRICE],
		Volume:    row[models.RB_IDX_VOLUME],
	}
}

// -----------------------------------------------------------------------------

// Size returns current number of elements
func (rb *RingBuffer) Size() int {
	return rb.size
}

// -----------------------------------------------------------------------------

// Capacity returns buffer capacity (fixed)
func (rb *RingBuffer) Capacity() int {
	return rb.capacity
}

// -----------------------------------------------------------------------------

// IsFull returns whether buffer is full
func (rb *RingBuffer) IsFull() bool {
	return rb.size == rb.capacity
}

// -----------------------------------------------------------------------------

// Clear resets the buffer
func (rb *RingBuffer) Clear() {
	rb.index = 0
	rb.size = 0
}
