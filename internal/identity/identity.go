package identity

import (
	"math/rand"
	"strconv"
	"time"
)

const (
	DefaultPrefix = "A#"

	hotelCodeMin = 10000000
	hotelCodeMax = 99999999

	offerIDLayout = "20060102150405"
)

type OptionFunc func(g *Generator)

// WithClock replaces the wall clock. Can be mocked for testing.
func WithClock(now func() time.Time) OptionFunc {
	return func(g *Generator) {
		g.now = now
	}
}

// WithIntn replaces the random source. intn must return a value in [0, n).
func WithIntn(intn func(n int) int) OptionFunc {
	return func(g *Generator) {
		g.intn = intn
	}
}

func WithPrefix(prefix string) OptionFunc {
	return func(g *Generator) {
		g.prefix = prefix
	}
}

// Generator draws the synthetic identifiers of an offer.
// Offer ids have second precision, two offers built within the same second share an id.
type Generator struct {
	now    func() time.Time
	intn   func(n int) int
	prefix string
}

func (g *Generator) OfferID() string {
	return g.prefix + g.now().Format(offerIDLayout)
}

// HotelCode returns an 8-digit code drawn uniformly from [10000000, 99999999].
func (g *Generator) HotelCode() string {
	return strconv.Itoa(hotelCodeMin + g.intn(hotelCodeMax-hotelCodeMin+1))
}

func New(opts ...OptionFunc) *Generator {
	g := &Generator{
		now:    time.Now,
		intn:   rand.Intn,
		prefix: DefaultPrefix,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}
