// Package secp256k1 generates key pairs on the secp256k1 curve used by
// Bitcoin and Ethereum.
//
// A private key is a uniformly random scalar in [1, n-1] and its public key
// is the point k·G. The arithmetic lives in the field, scalar and group
// packages; this package ties it to a source of randomness:
//
//	priv, err := secp256k1.GeneratePrivateKey()
//	if err != nil {
//		return err
//	}
//	pub := priv.PublicKey()
//	fmt.Printf("%x\n", pub.SerializeCompressed())
//
// Scalar multiplication is not constant time, so key generation can leak
// timing information about the secret to a local observer.
package secp256k1

import (
	"math/big"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/rafaelescrich/secp256k1-keygen/bigint"
	"github.com/rafaelescrich/secp256k1-keygen/curve"
	"github.com/rafaelescrich/secp256k1-keygen/group"
	"github.com/rafaelescrich/secp256k1-keygen/scalar"
)

// DefaultMaxAttempts bounds the number of consecutive zero draws tolerated
// by GeneratePrivateKey. With a working source a single redraw is already
// astronomically unlikely.
const DefaultMaxAttempts = 128

// KeyGenerator produces key pairs from a random source.
type KeyGenerator struct {
	curve       *group.Curve
	source      bigint.Source
	logger      *zap.Logger
	maxAttempts int
	ctx         *Context
}

// Option configures a KeyGenerator.
type Option func(*KeyGenerator)

// WithCurve selects the curve keys are generated on. The default is
// secp256k1.
func WithCurve(c *group.Curve) Option {
	return func(g *KeyGenerator) {
		g.curve = c
	}
}

// WithRandomSource replaces the operating system CSPRNG.
func WithRandomSource(s bigint.Source) Option {
	return func(g *KeyGenerator) {
		g.source = s
	}
}

// WithLogger sets the logger used to report redraws.
func WithLogger(l *zap.Logger) Option {
	return func(g *KeyGenerator) {
		g.logger = l
	}
}

// WithMaxAttempts sets the number of draws before GeneratePrivateKey gives
// up. Values below one select DefaultMaxAttempts.
func WithMaxAttempts(n int) Option {
	return func(g *KeyGenerator) {
		g.maxAttempts = n
	}
}

// WithContext derives public keys through the precomputed table of ctx. It
// is ignored when ctx belongs to another curve.
func WithContext(ctx *Context) Option {
	return func(g *KeyGenerator) {
		g.ctx = ctx
	}
}

// NewKeyGenerator returns a generator for secp256k1 keys backed by
// crypto/rand unless configured otherwise.
func NewKeyGenerator(opts ...Option) *KeyGenerator {
	g := &KeyGenerator{}
	for _, opt := range opts {
		opt(g)
	}
	if g.curve == nil {
		g.curve = group.Secp256k1()
	}
	if g.source == nil {
		g.source = bigint.CryptoSource()
	}
	if g.logger == nil {
		g.logger = zap.NewNop()
	}
	if g.maxAttempts < 1 {
		g.maxAttempts = DefaultMaxAttempts
	}
	if g.ctx != nil && g.ctx.curve != g.curve {
		g.logger.Warn("ignoring precomputed context for a different curve",
			zap.String("context", g.ctx.curve.Params().Name()),
			zap.String("curve", g.curve.Params().Name()))
		g.ctx = nil
	}
	return g
}

// Curve returns the curve g generates keys on.
func (g *KeyGenerator) Curve() *group.Curve {
	return g.curve
}

// GeneratePrivateKey draws a scalar uniformly from [0, n). A zero draw is
// discarded and redrawn; after the configured number of consecutive zero
// draws ErrDegenerateKey is returned.
func (g *KeyGenerator) GeneratePrivateKey() (*PrivateKey, error) {
	order := g.curve.Order().Modulus()

	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		k, err := g.source.Uniform(order)
		if err != nil {
			return nil, errors.Wrap(err, "secp256k1: drawing private key")
		}
		if k.Sign() != 0 {
			return &PrivateKey{curve: g.curve, key: g.curve.NewScalar(k)}, nil
		}
		g.logger.Debug("Discarding zero private key draw", zap.Int("attempt", attempt))
	}

	g.logger.Warn("Random source produced only zero private keys", zap.Int("attempts", g.maxAttempts))
	return nil, errors.Wrapf(ErrDegenerateKey, "%d consecutive zero draws", g.maxAttempts)
}

// GeneratePublicKey returns the public key k·G of priv. It panics if the
// result is not a point of the curve, which would mean the arithmetic is
// broken.
func (g *KeyGenerator) GeneratePublicKey(priv *PrivateKey) *PublicKey {
	var point *group.Point
	if g.ctx != nil {
		point = g.ctx.ScalarBaseMult(priv.key)
	} else {
		point = g.curve.ScalarBaseMult(priv.key)
	}
	if point.IsInfinity() || !g.curve.Contains(point) {
		panic(errors.Wrapf(group.ErrCurveViolation, "derived public key %s", point))
	}
	return &PublicKey{curve: g.curve, point: point}
}

// KeyPair is a private key together with its public key.
type KeyPair struct {
	Private *PrivateKey
	Public  *PublicKey
}

// GenerateKeyPair generates a private key and derives its public key.
func (g *KeyGenerator) GenerateKeyPair() (*KeyPair, error) {
	priv, err := g.GeneratePrivateKey()
	if err != nil {
		return nil, err
	}
	return &KeyPair{Private: priv, Public: g.GeneratePublicKey(priv)}, nil
}

var defaultGenerator = sync.OnceValue(func() *KeyGenerator {
	return NewKeyGenerator()
})

// GeneratePrivateKey generates a secp256k1 private key from crypto/rand.
func GeneratePrivateKey() (*PrivateKey, error) {
	return defaultGenerator().GeneratePrivateKey()
}

// GeneratePublicKey derives the secp256k1 public key of priv.
func GeneratePublicKey(priv *PrivateKey) *PublicKey {
	return defaultGenerator().GeneratePublicKey(priv)
}

// GenerateKeyPair generates a secp256k1 key pair from crypto/rand.
func GenerateKeyPair() (*KeyPair, error) {
	return defaultGenerator().GenerateKeyPair()
}

// IsOnCurve reports whether (x, y) satisfies the secp256k1 equation.
func IsOnCurve(x, y *big.Int) bool {
	return group.Secp256k1().IsOnCurve(x, y)
}

// P returns the secp256k1 field prime.
func P() *big.Int { return curve.Secp256k1().P() }

// A returns the secp256k1 coefficient a = 0.
func A() *big.Int { return curve.Secp256k1().A() }

// B returns the secp256k1 coefficient b = 7.
func B() *big.Int { return curve.Secp256k1().B() }

// Gx returns the x coordinate of the secp256k1 generator.
func Gx() *big.Int { return curve.Secp256k1().Gx() }

// Gy returns the y coordinate of the secp256k1 generator.
func Gy() *big.Int { return curve.Secp256k1().Gy() }

// N returns the order of the secp256k1 generator.
func N() *big.Int { return curve.Secp256k1().N() }

// scalarFromBytes decodes a private key scalar for c.
func scalarFromBytes(c *group.Curve, b []byte) (*scalar.Scalar, error) {
	k, err := scalar.FromBytesWithOrder(c.Order(), b)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidPrivateKey, err.Error())
	}
	if k.IsZero() {
		return nil, ErrDegenerateKey
	}
	return k, nil
}
