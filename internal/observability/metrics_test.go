package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewMetrics()

	m.RecordRequest("/catways", "GET", 200, 5*time.Millisecond)
	m.RecordRequest("/catways", "GET", 200, 7*time.Millisecond)
	m.RecordRequest("/catways", "GET", 404, time.Millisecond)

	assert.Equal(t, int64(2), m.RequestTotal("/catways", "GET", 200))
	assert.Equal(t, int64(1), m.RequestTotal("/catways", "GET", 404))
	assert.Equal(t, int64(0), m.RequestTotal("/users", "GET", 200))
}

func TestMetrics_NilReceiverIsSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/x", "GET", 200, 0)
	m.RecordError("/x", "GET", 500)
	assert.Equal(t, int64(0), m.RequestTotal("/x", "GET", 200))
}
