package whack

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// errorIsAny reports whether err matches any of the given sentinels.
func errorIsAny(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}

func TestDecompress_OptionsRequired(t *testing.T) {
	_, err := Decompress([]byte{0x00}, nil)
	require.ErrorIs(t, err, ErrOptionsRequired)

	_, err = Decompress([]byte{0x00}, &DecompressOptions{OutLen: -1})
	require.ErrorIs(t, err, ErrOptionsRequired)

	_, err = DecompressFromReader(strings.NewReader("\x00"), nil)
	require.ErrorIs(t, err, ErrOptionsRequired)
}

func TestDecompress_EmptyBlock(t *testing.T) {
	out, err := Decompress(nil, DefaultDecompressOptions(0))
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestDecompress_OutLenTooSmall(t *testing.T) {
	data := bytes.Repeat([]byte("AABBCCDDEEFF"), 512)
	cmp, err := Compress(data, nil)
	require.NoError(t, err)

	_, err = Decompress(cmp, DefaultDecompressOptions(len(data)-1))
	require.Error(t, err)
	require.True(t,
		errorIsAny(err, ErrTooMuchOutput, ErrLenOutOfRange),
		"unexpected error for too small OutLen: %v", err)
}

func TestDecompress_TruncatedInputFails(t *testing.T) {
	data := bytes.Repeat(countingBytes(), 2)
	cmp, err := Compress(data, nil)
	require.NoError(t, err)
	require.Greater(t, len(cmp), 4)

	_, err = Decompress(cmp[:len(cmp)-1], DefaultDecompressOptions(len(data)))
	require.Error(t, err, "one missing byte must not decode cleanly")

	// Deeper cuts must never silently reproduce the original.
	maxCut := min(32, len(cmp)-1)
	for cut := 2; cut <= maxCut; cut++ {
		out, decErr := Decompress(cmp[:len(cmp)-cut], DefaultDecompressOptions(len(data)))
		if decErr == nil && bytes.Equal(out, data) {
			t.Fatalf("cut=%d decoded to the original without error", cut)
		}
	}
}

func TestDecompress_ErrorStrings(t *testing.T) {
	assert.Equal(t, "too much output", ErrTooMuchOutput.Error())
	assert.Equal(t, "len out of range", ErrLenOutOfRange.Error())
	assert.Equal(t, "offset out of range", ErrOffsetOutOfRange.Error())
	assert.Equal(t, "compressed data overrun", ErrDataOverrun.Error())
}

func TestDecompressInto_ReusesCallerBuffer(t *testing.T) {
	data := bytes.Repeat([]byte("decode-into"), 256)
	cmp, err := Compress(data, nil)
	require.NoError(t, err)

	dst := make([]byte, len(data))
	out, err := DecompressInto(cmp, dst)
	require.NoError(t, err)

	require.Equal(t, len(data), len(out))
	require.True(t, bytes.Equal(out, data))
	require.Same(t, &out[0], &dst[0], "DecompressInto should return a slice over the provided buffer")
}

func TestDecompressInto_BufferTooSmall(t *testing.T) {
	data := bytes.Repeat([]byte("small-buffer"), 128)
	cmp, err := Compress(data, nil)
	require.NoError(t, err)

	_, err = DecompressInto(cmp, make([]byte, len(data)-1))
	require.Error(t, err)
	require.True(t,
		errorIsAny(err, ErrTooMuchOutput, ErrLenOutOfRange),
		"unexpected error for too small buffer: %v", err)
}

func TestDecompressFromReader_MaxInputSize(t *testing.T) {
	data := bytes.Repeat([]byte("xyzxyzxyz"), 600)
	cmp, err := Compress(data, nil)
	require.NoError(t, err)

	opts := DefaultDecompressOptions(len(data))
	opts.MaxInputSize = len(cmp) - 1
	_, err = DecompressFromReader(bytes.NewReader(cmp), opts)
	require.ErrorIs(t, err, ErrInputTooLarge)
}

func TestCopyBackRef(t *testing.T) {
	t.Run("non-overlapping", func(t *testing.T) {
		dst := []byte("abcdefghXXXXXXXX")
		copyBackRef(dst, 8, 8, 4)
		assert.Equal(t, "abcdefghabcdXXXX", string(dst))
	})

	t.Run("overlapping", func(t *testing.T) {
		dst := []byte{'A', 'B', 'C', 0, 0, 0, 0, 0}
		copyBackRef(dst, 3, 3, 5)
		assert.Equal(t, "ABCABCAB", string(dst))
	})

	t.Run("run-length", func(t *testing.T) {
		dst := make([]byte, 9)
		dst[0] = 0x7A
		copyBackRef(dst, 1, 1, 8)
		assert.Equal(t, bytes.Repeat([]byte{0x7A}, 9), dst)
	})
}
