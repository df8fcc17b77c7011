package hash

import "hash"

// IEEE 802.3 reflected polynomial, the one every cksum-style tool uses.
const crc32Poly = 0xEDB88320

// crc32Table holds the 256 precomputed remainders. It is filled once at
// package init and only read afterwards, so concurrent workers share it
// without locking.
var crc32Table [256]uint32

func init() {
	for i := range crc32Table {
		crc := uint32(i)
		for j := 0; j < 8; j++ {
			if crc&1 == 1 {
				crc = (crc >> 1) ^ crc32Poly
			} else {
				crc >>= 1
			}
		}
		crc32Table[i] = crc
	}
}

// crc32Digest adapts the CRC32 checksum to the streaming hash.Hash
// contract so the file hashing strategy can treat it like any digest.
// The running state is kept inverted (initialized to all-ones) and only
// complemented at Sum time.
type crc32Digest struct {
	state uint32
}

// NewCRC32 returns a CRC32 checksum as a hash.Hash. The sum is 4 bytes,
// big-endian, so the U32 encoding can read the value back directly.
func NewCRC32() hash.Hash {
	return &crc32Digest{state: 0xFFFFFFFF}
}

func (d *crc32Digest) Write(p []byte) (int, error) {
	s := d.state
	for _, b := range p {
		s = crc32Table[byte(s)^b] ^ (s >> 8)
	}
	d.state = s
	return len(p), nil
}

func (d *crc32Digest) Sum(b []byte) []byte {
	v := d.state ^ 0xFFFFFFFF
	return append(b, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

func (d *crc32Digest) Reset() { d.state = 0xFFFFFFFF }

func (d *crc32Digest) Size() int { return 4 }

func (d *crc32Digest) BlockSize() int { return 1 }
