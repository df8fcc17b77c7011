package hash

import (
	"encoding/base32"
	"encoding/base64"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/lookbusy1344/hashgo/internal/config"
)

// ErrBadLength reports a U32 encoding request over a digest that is not
// exactly 4 bytes. Configuration validation makes this unreachable; if
// it fires, something upstream is broken.
var ErrBadLength = errors.New("U32 encoding requires a 4 byte digest")

// Encode renders raw digest bytes as text.
//
// Hex is lowercase with no separators. Base64 uses the standard
// alphabet with padding. Base32 uses the RFC 4648 standard alphabet,
// padded with '=' (pinned by tests). U32 reads the digest as a
// big-endian uint32 and renders it as a zero-padded 10 digit decimal.
func Encode(sum []byte, enc config.Encoding) (string, error) {
	switch enc {
	case config.EncHex:
		return hex.EncodeToString(sum), nil
	case config.EncBase64:
		return base64.StdEncoding.EncodeToString(sum), nil
	case config.EncBase32:
		return base32.StdEncoding.EncodeToString(sum), nil
	case config.EncU32:
		if len(sum) != 4 {
			return "", fmt.Errorf("%w, got %d bytes", ErrBadLength, len(sum))
		}
		return fmt.Sprintf("%010d", binary.BigEndian.Uint32(sum)), nil
	}
	return "", fmt.Errorf("unsupported encoding: %s", enc)
}
