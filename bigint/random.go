package bigint

import (
	"crypto/cipher"
	"crypto/rand"
	"io"
	"math/big"
	"sync"

	sha256simd "github.com/minio/sha256-simd"
	"github.com/pkg/errors"
	"golang.org/x/crypto/chacha20"
)

// ErrInvalidBound is returned when Uniform is asked for a non-positive bound.
var ErrInvalidBound = errors.New("bigint: bound must be positive")

// Source draws uniformly distributed integers.
type Source interface {
	// Uniform returns a value in [0, bound) with every value equally likely.
	Uniform(bound *big.Int) (*big.Int, error)
}

// ReaderSource turns a byte stream into uniform integers by rejection
// sampling. Reads are serialized so concurrent callers never observe the same
// bytes.
type ReaderSource struct {
	mu sync.Mutex
	r  io.Reader
}

// NewReaderSource returns a Source drawing from r.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{r: r}
}

// CryptoSource returns a Source backed by the operating system CSPRNG.
func CryptoSource() *ReaderSource {
	return NewReaderSource(rand.Reader)
}

// NewSeededSource returns a deterministic Source whose stream is the ChaCha20
// keystream keyed by SHA-256(seed). Equal seeds give equal sequences, which is
// useful for tests and reproducible runs. It must not be used for real keys.
func NewSeededSource(seed []byte) (*ReaderSource, error) {
	key := sha256simd.Sum256(seed)
	nonce := make([]byte, chacha20.NonceSize)
	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce)
	if err != nil {
		return nil, errors.Wrap(err, "bigint: initializing seeded source")
	}
	return NewReaderSource(cipher.StreamReader{S: c, R: zeroReader{}}), nil
}

// Uniform draws ceil(bitlen/8) bytes, clears the bits above the bound's bit
// length and retries until the candidate is below bound. Each try succeeds
// with probability above one half.
func (s *ReaderSource) Uniform(bound *big.Int) (*big.Int, error) {
	if bound == nil || bound.Sign() <= 0 {
		return nil, ErrInvalidBound
	}

	bitLen := bound.BitLen()
	buf := make([]byte, (bitLen+7)/8)
	excess := uint(len(buf)*8 - bitLen)
	v := new(big.Int)

	s.mu.Lock()
	defer s.mu.Unlock()
	for {
		if _, err := io.ReadFull(s.r, buf); err != nil {
			return nil, errors.Wrap(err, "bigint: reading randomness")
		}
		buf[0] &= byte(0xff >> excess)
		v.SetBytes(buf)
		if v.Cmp(bound) < 0 {
			return v, nil
		}
	}
}

type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}
