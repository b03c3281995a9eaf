package salt

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// DefaultGenericLength is the length of a generic salt when none is given.
const DefaultGenericLength = 16

// Options carries the optional parameters of [Forge].  A zero field means
// "not given" and selects the scheme default.
//
// Which fields apply depends on the scheme:
//
//   - Generic:  Length (default 16), Shuffle, Alphabet (default [Alphanumeric])
//   - StdDES:   none
//   - ExtDES:   Rounds (default 5000) or RoundsToken, never both
//   - MD5:      none
//   - Blowfish: Cost (default 8, must be in [4, 31])
//   - SHA256 / SHA512: Rounds (omitted by default, clamped to [1000, 999999999])
//
// Fields that do not apply to the requested scheme are ignored.
type Options struct {
	// Length is the number of characters of a generic salt.
	Length int
	// Shuffle permutes the generic pool before sampling.
	Shuffle bool
	// Alphabet is the generic character pool.
	Alphabet string

	// Cost is the Blowfish log2 work factor.
	Cost int

	// Rounds is the extended DES or SHA-crypt rounds count.
	Rounds int
	// RoundsToken is a pre-encoded 4-character extended DES rounds value.
	RoundsToken string
}

// Generator produces salts for every [Scheme].
//
// A Generator is safe for concurrent use when its random source is.
type Generator struct {
	rnd *Randomizer
}

// NewGenerator returns a Generator drawing randomness from r.  A nil r
// selects crypto/rand.Reader.
func NewGenerator(r io.Reader) *Generator {
	return &Generator{rnd: NewRandomizer(r)}
}

var defaultGenerator = NewGenerator(nil)

// Forge generates a salt for scheme using the package default generator,
// which reads from crypto/rand.
//
//	s, err := salt.Forge(salt.Blowfish, salt.Options{Cost: 10})
//	// "$2a$10$" + 22 chars + "$"
func Forge(scheme Scheme, opts Options) (string, error) {
	return defaultGenerator.Forge(scheme, opts)
}

// Forge generates a salt for scheme.  See [Options] for the parameters each
// scheme honours.
//
// Positive SHA-crypt rounds outside [1000, 999999999] are clamped to the
// nearest bound; negative rounds and a Blowfish cost outside [4, 31] are an
// [ErrInvalidParameter].  Callers that want strict SHA rounds must check the
// range themselves.
func (g *Generator) Forge(scheme Scheme, opts Options) (string, error) {
	switch scheme {
	case Generic:
		if opts.Length < 0 {
			return "", fmt.Errorf("%w: generic length %d must be a positive integer", ErrInvalidParameter, opts.Length)
		}
		length := opts.Length
		if length == 0 {
			length = DefaultGenericLength
		}
		return g.Generic(length, opts.Shuffle, opts.Alphabet)
	case StdDES:
		return g.StdDES()
	case ExtDES:
		switch {
		case opts.RoundsToken != "" && opts.Rounds != 0:
			return "", fmt.Errorf("%w: ext_des takes Rounds or RoundsToken, not both", ErrInvalidParameter)
		case opts.RoundsToken != "":
			return g.ExtDESToken(opts.RoundsToken)
		case opts.Rounds != 0:
			return g.ExtDES(opts.Rounds)
		}
		return g.ExtDES(formats[ExtDES].CostDefault)
	case MD5:
		return g.MD5()
	case Blowfish:
		cost := opts.Cost
		if cost == 0 {
			cost = formats[Blowfish].CostDefault
		}
		return g.Blowfish(cost)
	case SHA256, SHA512:
		if opts.Rounds < 0 {
			return "", fmt.Errorf("%w: %s rounds %d must be a positive integer", ErrInvalidParameter, scheme, opts.Rounds)
		}
		if scheme == SHA256 {
			return g.SHA256(opts.Rounds)
		}
		return g.SHA512(opts.Rounds)
	default:
		return "", fmt.Errorf("%w: cannot forge %s", ErrInvalidScheme, scheme)
	}
}

// Generic returns length characters drawn from alphabet ([Alphanumeric] when
// empty).  length must be positive.
func (g *Generator) Generic(length int, shuffle bool, alphabet string) (string, error) {
	if length < 1 {
		return "", fmt.Errorf("%w: generic length %d must be a positive integer", ErrInvalidParameter, length)
	}
	if alphabet == "" {
		alphabet = Alphanumeric
	}
	return g.rnd.String(length, alphabet, shuffle)
}

// StdDES returns a two-character traditional DES salt.
func (g *Generator) StdDES() (string, error) {
	return g.structured(formats[StdDES], "")
}

// ExtDES returns an extended DES salt encoding rounds, which must be in
// [0, MaxEncodedRounds].
func (g *Generator) ExtDES(rounds int) (string, error) {
	token, err := EncodeRounds(rounds)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}
	return g.structured(formats[ExtDES], token)
}

// ExtDESToken returns an extended DES salt carrying a pre-encoded rounds
// token, which must be four characters from [Alphabet].
func (g *Generator) ExtDESToken(token string) (string, error) {
	if _, err := DecodeRounds(token); err != nil {
		return "", err
	}
	return g.structured(formats[ExtDES], token)
}

// MD5 returns an MD5-crypt salt.
func (g *Generator) MD5() (string, error) {
	return g.structured(formats[MD5], "")
}

// Blowfish returns a Blowfish salt with the given cost, which must be in
// [4, 31].
func (g *Generator) Blowfish(cost int) (string, error) {
	f := formats[Blowfish]
	if cost < f.CostMin || cost > f.CostMax {
		return "", fmt.Errorf("%w: blowfish cost %d must be in [%d, %d]",
			ErrInvalidParameter, cost, f.CostMin, f.CostMax)
	}
	return g.structured(f, fmt.Sprintf("%02d$", cost))
}

// SHA256 returns a SHA-256-crypt salt.  rounds == 0 omits the rounds
// segment; any other value, negative included, is clamped to
// [1000, 999999999].
func (g *Generator) SHA256(rounds int) (string, error) {
	return g.sha(formats[SHA256], rounds)
}

// SHA512 returns a SHA-512-crypt salt.  rounds == 0 omits the rounds
// segment; any other value, negative included, is clamped to
// [1000, 999999999].
func (g *Generator) SHA512(rounds int) (string, error) {
	return g.sha(formats[SHA512], rounds)
}

func (g *Generator) sha(f Format, rounds int) (string, error) {
	if rounds == 0 {
		return g.structured(f, "")
	}
	return g.structured(f, "rounds="+strconv.Itoa(ClampSHARounds(rounds))+"$")
}

// ClampSHARounds limits rounds to the SHA-crypt range [1000, 999999999].
func ClampSHARounds(rounds int) int {
	f := formats[SHA512]
	return min(max(rounds, f.CostMin), f.CostMax)
}

// structured assembles prefix + cost + random body + trailer.
func (g *Generator) structured(f Format, cost string) (string, error) {
	body, err := g.rnd.String(f.BodyLen, f.Alphabet, true)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.Grow(len(f.Prefix) + len(cost) + f.BodyLen + len(f.Trailer))
	b.WriteString(f.Prefix)
	b.WriteString(cost)
	b.WriteString(body)
	b.WriteString(f.Trailer)
	return b.String(), nil
}
