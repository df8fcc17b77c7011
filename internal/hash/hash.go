// Package hash provides the streaming digest abstraction behind hashgo:
// construction of a hash.Hash for every supported algorithm, the CRC32
// checksum adapter, the size-adaptive file hashing strategy, and the
// rendering of digest bytes as text.
package hash

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"

	"github.com/jzelinskie/whirlpool"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"

	"github.com/lookbusy1344/hashgo/internal/config"
)

// New returns a fresh streaming digest for the given algorithm. Every
// returned hash.Hash satisfies the streaming property: writing a buffer
// in arbitrary chunks yields the same sum as a single write.
func New(alg config.Algorithm) (hash.Hash, error) {
	switch alg {
	case config.AlgoCRC32:
		return NewCRC32(), nil
	case config.AlgoMD5:
		return md5.New(), nil
	case config.AlgoSHA1:
		return sha1.New(), nil
	case config.AlgoSHA2_224:
		return sha256.New224(), nil
	case config.AlgoSHA2_256:
		return sha256.New(), nil
	case config.AlgoSHA2_384:
		return sha512.New384(), nil
	case config.AlgoSHA2_512:
		return sha512.New(), nil
	case config.AlgoSHA3_256:
		return sha3.New256(), nil
	case config.AlgoSHA3_384:
		return sha3.New384(), nil
	case config.AlgoSHA3_512:
		return sha3.New512(), nil
	case config.AlgoWhirlpool:
		return whirlpool.New(), nil
	case config.AlgoBlake2s256:
		// keyless blake2 construction cannot fail
		h, err := blake2s.New256(nil)
		if err != nil {
			return nil, fmt.Errorf("blake2s: %w", err)
		}
		return h, nil
	case config.AlgoBlake2b512:
		h, err := blake2b.New512(nil)
		if err != nil {
			return nil, fmt.Errorf("blake2b: %w", err)
		}
		return h, nil
	}
	return nil, fmt.Errorf("unsupported algorithm: %s", alg)
}
