package bytebuf

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/bufkit/growth"
)

var _ io.Writer = (*Buffer)(nil)
var _ io.ByteWriter = (*Buffer)(nil)

func TestNew_LazyMapping(t *testing.T) {
	b, err := New(Options{})
	require.NoError(t, err)
	defer b.Close()

	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 0, b.Cap(), "nothing should be mapped before the first write")
}

func TestNew_InitialCapacityIsPageAligned(t *testing.T) {
	b, err := New(Options{InitialCapacity: 100})
	require.NoError(t, err)
	defer b.Close()

	page := os.Getpagesize()
	assert.Equal(t, page, b.Cap(), "capacity should round up to one page")
	assert.Equal(t, 0, b.Len())
}

func TestWrite_RoundTrip(t *testing.T) {
	b, err := New(Options{})
	require.NoError(t, err)
	defer b.Close()

	payload := []byte("hello, mapped world")
	n, err := b.Write(payload)
	require.NoError(t, err)
	assert.Equal(t, len(payload), n)
	assert.Equal(t, payload, b.Bytes())
}

func TestWrite_GrowPreservesContents(t *testing.T) {
	b, err := New(Options{})
	require.NoError(t, err)
	defer b.Close()

	// Force at least one relocation past the first page.
	chunk := bytes.Repeat([]byte{0xAB}, 1024)
	total := 0
	for total <= os.Getpagesize() {
		_, err := b.Write(chunk)
		require.NoError(t, err)
		total += len(chunk)
	}

	assert.Equal(t, total, b.Len())
	for i, c := range b.Bytes() {
		require.Equal(t, byte(0xAB), c, "byte %d corrupted across relocation", i)
	}
}

func TestWriteByte(t *testing.T) {
	b, err := New(Options{})
	require.NoError(t, err)
	defer b.Close()

	for i := 0; i < 10; i++ {
		require.NoError(t, b.WriteByte(byte('0'+i)))
	}
	assert.Equal(t, []byte("0123456789"), b.Bytes())
}

func TestTruncate(t *testing.T) {
	b, err := New(Options{})
	require.NoError(t, err)
	defer b.Close()

	_, err = b.Write([]byte("0123456789"))
	require.NoError(t, err)

	require.NoError(t, b.Truncate(4))
	assert.Equal(t, []byte("0123"), b.Bytes())

	require.ErrorIs(t, b.Truncate(100), ErrTruncateGrow)
	require.Error(t, b.Truncate(-1))
}

func TestTruncate_ZeroesDiscardedTail(t *testing.T) {
	b, err := New(Options{})
	require.NoError(t, err)
	defer b.Close()

	_, err = b.Write([]byte("secret"))
	require.NoError(t, err)
	require.NoError(t, b.Truncate(0))

	_, err = b.Write([]byte("ab"))
	require.NoError(t, err)
	// The region beyond the new contents must not hold the old bytes.
	assert.Equal(t, []byte("ab"), b.Bytes())
	assert.Equal(t, byte(0), b.data[2], "truncated tail must be zeroed")
}

func TestReset_KeepsCapacity(t *testing.T) {
	b, err := New(Options{InitialCapacity: 1})
	require.NoError(t, err)
	defer b.Close()

	_, err = b.Write([]byte("abc"))
	require.NoError(t, err)
	capBefore := b.Cap()

	b.Reset()
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, capBefore, b.Cap())
}

func TestClose_Idempotent(t *testing.T) {
	b, err := New(Options{InitialCapacity: 1})
	require.NoError(t, err)

	require.NoError(t, b.Close())
	require.NoError(t, b.Close(), "second close must be a no-op")

	_, err = b.Write([]byte("x"))
	require.ErrorIs(t, err, ErrClosed)
	require.ErrorIs(t, b.Grow(1), ErrClosed)
	require.ErrorIs(t, b.Truncate(0), ErrClosed)
}

func TestGrow_NegativeRejected(t *testing.T) {
	b, err := New(Options{})
	require.NoError(t, err)
	defer b.Close()

	require.ErrorIs(t, b.Grow(-1), growth.ErrCapacityOverflow)
}

func TestNew_RejectsBadPolicy(t *testing.T) {
	_, err := New(Options{Policy: growth.Policy{Factor: 1.0, MinCapacity: 1}})
	require.ErrorIs(t, err, growth.ErrBadPolicy)
}

func BenchmarkWrite_1K(b *testing.B) {
	buf, err := New(Options{})
	if err != nil {
		b.Fatal(err)
	}
	defer buf.Close()
	chunk := make([]byte, 1024)

	b.ResetTimer()
	b.ReportAllocs()
	for loopIter := 0; loopIter < b.N; loopIter++ {
		if _, err := buf.Write(chunk); err != nil {
			b.Fatal(err)
		}
		if buf.Len() > 1<<26 {
			buf.Reset()
		}
	}
}
