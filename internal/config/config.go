// internal/config/config.go

package config

import (
	"errors"
	"fmt"
	"strings"
)

// Algorithm identifies one of the supported digest families. The set is
// closed: selection happens once per run and never changes mid-run.
type Algorithm int

const (
	AlgoUnknown Algorithm = iota
	AlgoCRC32
	AlgoMD5
	AlgoSHA1
	AlgoSHA2_224
	AlgoSHA2_256
	AlgoSHA2_384
	AlgoSHA2_512
	AlgoSHA3_256
	AlgoSHA3_384
	AlgoSHA3_512
	AlgoWhirlpool
	AlgoBlake2s256
	AlgoBlake2b512
)

// DefaultAlgorithm is used when no algorithm is requested.
const DefaultAlgorithm = AlgoSHA3_256

var algorithmNames = map[Algorithm]string{
	AlgoCRC32:      "CRC32",
	AlgoMD5:        "MD5",
	AlgoSHA1:       "SHA1",
	AlgoSHA2_224:   "SHA2-224",
	AlgoSHA2_256:   "SHA2-256",
	AlgoSHA2_384:   "SHA2-384",
	AlgoSHA2_512:   "SHA2-512",
	AlgoSHA3_256:   "SHA3-256",
	AlgoSHA3_384:   "SHA3-384",
	AlgoSHA3_512:   "SHA3-512",
	AlgoWhirlpool:  "WHIRLPOOL",
	AlgoBlake2s256: "BLAKE2S-256",
	AlgoBlake2b512: "BLAKE2B-512",
}

func (a Algorithm) String() string {
	if s, ok := algorithmNames[a]; ok {
		return s
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// AlgorithmChoices is the user-facing list of accepted names, for error
// messages and help text.
const AlgorithmChoices = "CRC32, MD5, SHA1, SHA2 / SHA2-256, SHA2-224, SHA2-384, SHA2-512, " +
	"SHA3 / SHA3-256, SHA3-384, SHA3-512, WHIRLPOOL, BLAKE2S-256, BLAKE2B-512"

// ParseAlgorithm maps a user-supplied name to an Algorithm. Matching is
// case-insensitive and accepts the common alias spellings (SHA2 for
// SHA2-256, SHA-1 for SHA1, and so on). An empty name selects the
// default.
func ParseAlgorithm(name string) (Algorithm, error) {
	if name == "" {
		return DefaultAlgorithm, nil
	}
	switch strings.ToUpper(name) {
	case "CRC32", "CRC-32":
		return AlgoCRC32, nil
	case "MD5", "MD-5":
		return AlgoMD5, nil
	case "SHA1", "SHA-1":
		return AlgoSHA1, nil
	case "SHA2-224", "SHA2_224":
		return AlgoSHA2_224, nil
	case "SHA2", "SHA2-256", "SHA2_256", "SHA-256", "SHA_256":
		return AlgoSHA2_256, nil
	case "SHA2-384", "SHA2_384":
		return AlgoSHA2_384, nil
	case "SHA2-512", "SHA2_512":
		return AlgoSHA2_512, nil
	case "SHA3", "SHA3-256", "SHA3_256":
		return AlgoSHA3_256, nil
	case "SHA3-384", "SHA3_384":
		return AlgoSHA3_384, nil
	case "SHA3-512", "SHA3_512":
		return AlgoSHA3_512, nil
	case "WHIRLPOOL":
		return AlgoWhirlpool, nil
	case "BLAKE2S-256", "BLAKE2S_256":
		return AlgoBlake2s256, nil
	case "BLAKE2B-512", "BLAKE2B_512":
		return AlgoBlake2b512, nil
	}
	return AlgoUnknown, fmt.Errorf("unknown algorithm %q (choose from: %s)", name, AlgorithmChoices)
}

// Encoding selects the textual rendering of digest bytes.
type Encoding int

const (
	// EncUnspecified means no encoding was requested; Validate resolves
	// it to the algorithm's default before any file is touched.
	EncUnspecified Encoding = iota
	EncHex
	EncBase64
	EncBase32
	EncU32
)

var encodingNames = map[Encoding]string{
	EncUnspecified: "Unspecified",
	EncHex:         "Hex",
	EncBase64:      "Base64",
	EncBase32:      "Base32",
	EncU32:         "U32",
}

func (e Encoding) String() string {
	if s, ok := encodingNames[e]; ok {
		return s
	}
	return fmt.Sprintf("Encoding(%d)", int(e))
}

// EncodingChoices is the user-facing list of accepted encodings.
const EncodingChoices = "Hex, Base64, Base32 (U32 applies to CRC32 only)"

// ParseEncoding maps a user-supplied name to an Encoding,
// case-insensitively. An empty name returns EncUnspecified so the
// algorithm-dependent default can be applied later.
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToUpper(name) {
	case "":
		return EncUnspecified, nil
	case "HEX":
		return EncHex, nil
	case "BASE64":
		return EncBase64, nil
	case "BASE32":
		return EncBase32, nil
	case "U32":
		return EncU32, nil
	}
	return EncUnspecified, fmt.Errorf("unknown encoding %q (choose from: %s)", name, EncodingChoices)
}

// ErrBadPairing reports an algorithm/encoding combination that can never
// produce valid output. It is raised before any file is opened.
var ErrBadPairing = errors.New("invalid algorithm/encoding pairing")

// Settings is the validated, immutable configuration for one run. It is
// built by the CLI layer (flags over config-file defaults) and shared
// read-only by every worker.
type Settings struct {
	Algorithm     Algorithm
	Encoding      Encoding
	SingleThread  bool
	CaseSensitive bool
	ExcludeNames  bool
	NoProgress    bool
	Debug         bool
	Limit         int // 0 means unlimited
	Patterns      []string
}

// Validate resolves the encoding default and enforces the CRC32/U32
// pairing rule. It must succeed before any file is opened; a failure
// here aborts the whole run.
func (s *Settings) Validate() error {
	if _, ok := algorithmNames[s.Algorithm]; !ok {
		return fmt.Errorf("unknown algorithm %d", int(s.Algorithm))
	}
	if s.Encoding == EncUnspecified {
		if s.Algorithm == AlgoCRC32 {
			s.Encoding = EncU32
		} else {
			s.Encoding = EncHex
		}
	}
	if s.Algorithm == AlgoCRC32 && s.Encoding != EncU32 {
		return fmt.Errorf("%w: CRC32 can only be output as U32", ErrBadPairing)
	}
	if s.Algorithm != AlgoCRC32 && s.Encoding == EncU32 {
		return fmt.Errorf("%w: U32 requires CRC32, please choose another encoding", ErrBadPairing)
	}
	if s.Limit < 0 {
		return fmt.Errorf("limit cannot be negative, got %d", s.Limit)
	}
	return nil
}
