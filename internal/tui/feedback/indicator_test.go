package feedback

import (
	"errors"
	"testing"
	"time"

	"anchovy/internal/clipboard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClipboard struct {
	written []string
	err     error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.written = append(f.written, text)
	return nil
}

func TestIndicator_CopyLifecycle(t *testing.T) {
	cb := &fakeClipboard{}
	ind := New("spectrum", time.Millisecond)

	assert.False(t, ind.Active())

	cmd, err := ind.Copy(cb, "#3B82F6", "blue-500")
	require.NoError(t, err)
	require.NotNil(t, cmd)

	assert.Equal(t, []string{"#3B82F6"}, cb.written)
	assert.True(t, ind.IsCopied("blue-500"))
	assert.False(t, ind.IsCopied("blue-600"))
	assert.Equal(t, Copied, ind.State())

	msg := cmd()
	require.Equal(t, ExpiredMsg{ID: "spectrum", Seq: 1}, msg)
	assert.True(t, ind.Update(msg))
	assert.False(t, ind.Active())
	assert.Equal(t, "", ind.Key())
}

func TestIndicator_CopyFailure(t *testing.T) {
	cb := &fakeClipboard{err: errors.New("denied")}
	ind := New("x", time.Millisecond)

	cmd, err := ind.Copy(cb, "#10B981", "green-500")
	require.Error(t, err)
	require.NotNil(t, cmd)
	assert.True(t, ind.IsFailed("green-500"))
	assert.False(t, ind.IsCopied("green-500"))
	assert.Empty(t, cb.written)

	assert.True(t, ind.Update(cmd()))
	assert.Equal(t, Idle, ind.State())
}

// A timer started by an earlier copy must not clear a later one.
func TestIndicator_StaleTimerDoesNotResetNewerCopy(t *testing.T) {
	cb := clipboard.Func(func(string) error { return nil })
	ind := New("spectrum", time.Millisecond)

	first, err := ind.Copy(cb, "#3B82F6", "blue-500")
	require.NoError(t, err)
	_, err = ind.Copy(cb, "#10B981", "green-500")
	require.NoError(t, err)

	// The first timer was cancelled and produces no message.
	assert.Nil(t, first())

	// Even if its message had been queued already, the sequence does not match.
	assert.False(t, ind.Update(ExpiredMsg{ID: "spectrum", Seq: 1}))
	assert.True(t, ind.IsCopied("green-500"))
}

func TestIndicator_IgnoresOtherIndicators(t *testing.T) {
	ind := New("gradients", time.Millisecond)
	ind.Flash("bio-circuit")

	assert.False(t, ind.Update(ExpiredMsg{ID: "spectrum", Seq: 1}))
	assert.False(t, ind.Update("not an expiry"))
	assert.True(t, ind.IsCopied("bio-circuit"))
}

func TestIndicator_Dispose(t *testing.T) {
	ind := New("spacing", time.Millisecond)
	cmd := ind.Flash("space-4")

	ind.Dispose()
	assert.False(t, ind.Active())
	assert.Nil(t, cmd(), "disposed timer must not fire")
	assert.False(t, ind.Update(ExpiredMsg{ID: "spacing", Seq: 1}))

	// Dispose on an idle indicator is harmless.
	ind.Dispose()
	assert.Equal(t, Idle, ind.State())
}

func TestIndicator_TickWaitsForDelay(t *testing.T) {
	ind := New("tokens", 20*time.Millisecond)
	cmd := ind.Flash("export")

	start := time.Now()
	msg := cmd()
	assert.GreaterOrEqual(t, time.Since(start), 15*time.Millisecond)
	assert.True(t, ind.Update(msg))
}

func TestIndicator_Fail(t *testing.T) {
	ind := New("tokens", time.Millisecond)
	cmd := ind.Fail("export")
	assert.True(t, ind.IsFailed("export"))
	assert.Equal(t, "failed", ind.State().String())
	assert.True(t, ind.Update(cmd()))
	assert.Equal(t, "idle", ind.State().String())
}
