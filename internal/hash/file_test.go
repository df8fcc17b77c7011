package hash

import (
	"crypto/sha256"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lookbusy1344/hashgo/internal/config"
)

func writeTemp(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.bin")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

// The whole-file and chunked strategies must be indistinguishable from
// the outside, including right at the threshold.
func TestFileSizeBoundaries(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	sizes := []int{0, 1, 100, ChunkSize - 1, ChunkSize, ChunkSize + 1, 3*ChunkSize + 5}

	for _, n := range sizes {
		data := make([]byte, n)
		rng.Read(data)
		path := writeTemp(t, data)

		got, err := File(path, config.AlgoSHA2_256)
		require.NoError(t, err, "size %d", n)

		want := sha256.Sum256(data)
		assert.Equal(t, want[:], got, "size %d", n)
	}
}

func TestFileAllAlgorithms(t *testing.T) {
	data := []byte("some file content worth hashing")
	path := writeTemp(t, data)

	for _, alg := range allAlgorithms {
		got, err := File(path, alg)
		require.NoError(t, err, alg.String())

		h, err := New(alg)
		require.NoError(t, err)
		h.Write(data)
		assert.Equal(t, h.Sum(nil), got, alg.String())
	}
}

func TestFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist")
	_, err := File(path, config.AlgoMD5)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), path, "error must carry the path")
}

func TestFileEncoded(t *testing.T) {
	path := writeTemp(t, []byte("test"))

	got, err := FileEncoded(path, config.AlgoMD5, config.EncHex)
	require.NoError(t, err)
	assert.Equal(t, "098f6bcd4621d373cade4e832627b4f6", got)

	got, err = FileEncoded(path, config.AlgoCRC32, config.EncU32)
	require.NoError(t, err)
	assert.Equal(t, "3632233996", got)
}

func TestFileEncodedEmptyCRC32(t *testing.T) {
	path := writeTemp(t, nil)
	got, err := FileEncoded(path, config.AlgoCRC32, config.EncU32)
	require.NoError(t, err)
	assert.Equal(t, "0000000000", got)
}
