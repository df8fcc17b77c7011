package hash

import (
	"fmt"
	"io"
	"os"

	"github.com/lookbusy1344/hashgo/internal/config"
)

// ChunkSize is both the whole-file threshold and the chunked read size.
// Files at or under it are read in one call; anything larger is streamed
// through a stack buffer of this size.
const ChunkSize = 32 * 1024

// File hashes the file at path with the given algorithm and returns the
// raw digest bytes.
//
// There is no existence pre-check: opening the file is the only reliable
// test, and an open or stat failure comes back wrapped with the path.
// Any read error mid-file aborts the hash; a digest over partial data is
// never returned.
func File(path string, alg config.Algorithm) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	h, err := New(alg)
	if err != nil {
		return nil, err
	}

	if info.Size() <= ChunkSize {
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		h.Write(data)
		return h.Sum(nil), nil
	}

	// Stack-allocated per call, owned by this worker alone.
	var buf [ChunkSize]byte
	for {
		n, err := f.Read(buf[:])
		if n > 0 {
			h.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}
	return h.Sum(nil), nil
}

// FileEncoded hashes the file and renders the digest with the given
// encoding, producing the final report text for one path.
func FileEncoded(path string, alg config.Algorithm, enc config.Encoding) (string, error) {
	sum, err := File(path, alg)
	if err != nil {
		return "", err
	}
	return Encode(sum, enc)
}
