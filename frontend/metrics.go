package frontend

import "time"

// Metrics stores basic measurements for a request.
type Metrics struct {
	// BytesOut is the number of body bytes sent in response to the request.
	BytesOut int64

	StartedAt       time.Time
	TimeToFirstByte float64
	TimeToLastByte  float64
}

// Start the timer.
func (metrics *Metrics) Start() {
	metrics.StartedAt = time.Now()
}

// FirstByteSent records the time offset to the first byte.
func (metrics *Metrics) FirstByteSent() {
	metrics.TimeToFirstByte = sinceMillis(metrics.StartedAt)
}

// IsFirstByteSent returns true if the first byte has been sent.
func (metrics *Metrics) IsFirstByteSent() bool {
	return metrics.TimeToFirstByte > 0
}

// LastByteSent records the time offset to the last byte.
func (metrics *Metrics) LastByteSent() {
	metrics.TimeToLastByte = sinceMillis(metrics.StartedAt)
}

// IsLastByteSent returns true if the last byte has been sent.
func (metrics *Metrics) IsLastByteSent() bool {
	return metrics.TimeToLastByte > 0
}

func sinceMillis(t time.Time) float64 {
	return float64(time.Since(t)) / float64(time.Millisecond)
}
