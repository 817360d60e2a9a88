package utils

import (
	"testing"

	"token-radar/src/models"
)

func point(ts int64, price float64) models.MHistoryPoint {
	return models.MHistoryPoint{Timestamp: ts, Price: price, Volume: price * 10}
}

// -----------------------------------------------------------------------------

func TestRingBuffer_AppendAndGetAll(t *testing.T) {
	rb := NewRingBuffer(5)

	for i := int64(1); i <= 3; i++ {
		rb.Append(point(i, float64(i)))
	}

	all := rb.GetAll()
	if len(all) != 3 {
		t.Fatalf("expected 3 points, got %d", len(all))
	}
	for i, p := range all {
		if p.Timestamp != int64(i+1) {
			t.Errorf("index %d: timestamp %d, want %d", i, p.Timestamp, i+1)
		}
	}
}

func TestRingBuffer_WrapKeepsNewest(t *testing.T) {
	rb := NewRingBuffer(3)

	for i := int64(1); i <= 5; i++ {
		rb.Append(point(i, float64(i)))
	}

	if !rb.IsFull() {
		t.Error("buffer should be full after wrapping")
	}

	all := rb.GetAll()
	want := []int64{3, 4, 5}
	for i, ts := range want {
		if all[i].Timestamp != ts {
			t.Errorf("index %d: timestamp %d, want %d", i, all[i].Timestamp, ts)
		}
	}
}

func TestRingBuffer_GetLatest(t *testing.T) {
	rb := NewRingBuffer(10)
	for i := int64(1); i <= 6; i++ {
		rb.Append(point(i, float64(i)))
	}

	latest := rb.GetLatest(2)
	if len(latest) != 2 || latest[0].Timestamp != 5 || latest[1].Timestamp != 6 {
		t.Fatalf("GetLatest(2) returned %v", latest)
	}

	// Asking for more than stored returns everything.
	if got := rb.GetLatest(100); len(got) != 6 {
		t.Errorf("GetLatest(100) returned %d points, want 6", len(got))
	}

	if got := rb.GetLatest(0); len(got) != 0 {
		t.Errorf("GetLatest(0) returned %d points, want 0", len(got))
	}
}

// -----------------------------------------------------------------------------

func TestHistoryCapacityFor(t *testing.T) {
	cases := []struct {
		tickMs    int
		retention int
		want      int
	}{
		{1000, 300, 300},
		{500, 300, 600},
		{2000, 300, 150},
		{0, 300, DefaultHistoryPoints},
		{1000, 0, DefaultHistoryPoints},
		{600000, 300, 1}, // never below one point
	}

	for _, tc := range cases {
		if got := HistoryCapacityFor(tc.tickMs, tc.retention); got != tc.want {
			t.Errorf("HistoryCapacityFor(%d, %d) = %d, want %d", tc.tickMs, tc.retention, got, tc.want)
		}
	}
}

// -----------------------------------------------------------------------------

func TestPriceHistory_RecordAndLatest(t *testing.T) {
	ph := NewPriceHistory(4)

	update := &models.MFeedUpdate{
		Records: []models.MTokenRecord{
			{ID: "a", Price: 1, Volume24h: 10},
			{ID: "b", Price: 2, Volume24h: 20},
		},
		Timestamp: 111,
	}
	ph.Record(update)

	if ph.Tracked() != 2 {
		t.Fatalf("expected 2 tracked tokens, got %d", ph.Tracked())
	}

	got := ph.Latest("a", 10)
	if len(got) != 1 || got[0].Price != 1 || got[0].Timestamp != 111 {
		t.Fatalf("unexpected history for a: %v", got)
	}

	if got := ph.Latest("missing", 10); len(got) != 0 {
		t.Errorf("expected no history for unknown id, got %d points", len(got))
	}
}
