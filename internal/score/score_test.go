package score

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/flappy-pebble/internal/config"
)

func TestTrackerLatchOnIncrement(t *testing.T) {
	tr := NewTracker(2, config.LatchOnIncrement)
	tr.Reset()

	tr.Inc()
	tr.Inc()
	assert.False(t, tr.IsNewBest(), "equal to best is not a new best")

	tr.Inc()
	assert.True(t, tr.IsNewBest())
	assert.Equal(t, uint32(2), tr.Best(), "best only moves when the run ends")

	best, ok := tr.Finish()
	assert.True(t, ok)
	assert.Equal(t, uint32(3), best)
	assert.Equal(t, uint32(3), tr.Best())
	assert.True(t, tr.IsNewBest(), "flag stays set until the next reset")

	_, ok = tr.Finish()
	assert.False(t, ok, "finishing twice does not report twice")

	tr.Reset()
	assert.Equal(t, uint32(0), tr.Current())
	assert.False(t, tr.IsNewBest())
	assert.Equal(t, uint32(3), tr.Best())
}

func TestTrackerLatchOnRunEnd(t *testing.T) {
	tr := NewTracker(1, config.LatchOnRunEnd)
	tr.Add(5)
	assert.False(t, tr.IsNewBest(), "run_end mode only decides at the end")

	best, ok := tr.Finish()
	assert.True(t, ok)
	assert.Equal(t, uint32(5), best)
	assert.True(t, tr.IsNewBest())
}

func TestTrackerBestIsMonotonic(t *testing.T) {
	tr := NewTracker(0, "")
	runs := []int{3, 1, 7, 0, 7, 2, 9}
	var prev uint32

	for _, n := range runs {
		tr.Reset()
		tr.Add(n)
		tr.Finish()
		assert.GreaterOrEqual(t, tr.Best(), prev)
		prev = tr.Best()
	}
	assert.Equal(t, uint32(9), tr.Best())
}

func TestCodecRoundTrip(t *testing.T) {
	for _, v := range []uint32{0, 1, 42, 1 << 24, ^uint32(0)} {
		got, err := Decode(Encode(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	assert.Equal(t, []byte{0, 0, 0, 42}, Encode(42))
}

func TestCodecRejectsWrongSize(t *testing.T) {
	for _, data := range [][]byte{nil, {1, 2, 3}, {1, 2, 3, 4, 5}} {
		_, err := Decode(data)
		assert.ErrorIs(t, err, ErrShortRecord)
	}
}

type recordingSaver struct {
	mu      sync.Mutex
	saved   []uint32
	fail    bool
	block   chan struct{}
	started chan struct{}
}

func (r *recordingSaver) SaveBest(v uint32) error {
	if r.started != nil {
		r.started <- struct{}{}
	}
	if r.block != nil {
		<-r.block
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return errors.New("disk full")
	}
	r.saved = append(r.saved, v)
	return nil
}

func (r *recordingSaver) values() []uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]uint32(nil), r.saved...)
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestPersisterWritesAndFlushesOnClose(t *testing.T) {
	s := &recordingSaver{}
	p := NewPersister(s, 0, quietLogger())

	p.Submit(42)
	require.NoError(t, p.Close(context.Background()))

	assert.Equal(t, []uint32{42}, s.values())
}

func TestPersisterDropsValuesNotAboveLastWritten(t *testing.T) {
	s := &recordingSaver{}
	p := NewPersister(s, 10, quietLogger())

	p.Submit(5)
	p.Submit(10)
	require.NoError(t, p.Close(context.Background()))

	assert.Empty(t, s.values())
}

func TestPersisterCoalescesWhileBusy(t *testing.T) {
	s := &recordingSaver{block: make(chan struct{}), started: make(chan struct{}, 4)}
	p := NewPersister(s, 0, quietLogger())

	p.Submit(1)
	<-s.started // writer is now stuck on 1

	// None of these block the caller; only the largest survives.
	p.Submit(3)
	p.Submit(7)
	p.Submit(5)

	close(s.block)
	require.NoError(t, p.Close(context.Background()))

	assert.Equal(t, []uint32{1, 7}, s.values())
}

func TestPersisterFailureIsRetriedOnNextSubmit(t *testing.T) {
	s := &recordingSaver{fail: true}
	p := NewPersister(s, 0, quietLogger())

	p.Submit(4)
	p.Close(context.Background()) //nolint:errcheck
	assert.Empty(t, s.values())

	s.fail = false
	p = NewPersister(s, 0, quietLogger())
	p.Submit(4)
	require.NoError(t, p.Close(context.Background()))
	assert.Equal(t, []uint32{4}, s.values())
}

func TestPersisterCloseHonorsContext(t *testing.T) {
	s := &recordingSaver{block: make(chan struct{})}
	p := NewPersister(s, 0, quietLogger())
	p.Submit(1)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, p.Close(ctx), context.DeadlineExceeded)

	close(s.block)
	p.Submit(2) // after Close: ignored, must not panic
}
