package salt

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strings"
)

// Randomizer draws random characters from a character pool.
//
// The entropy source is injected so tests can supply a deterministic stream.
// Salts are public values and need not be secret, but [NewRandomizer] with a
// nil reader falls back to crypto/rand.Reader all the same.
//
// A Randomizer is safe for concurrent use when its reader is.
type Randomizer struct {
	r io.Reader
}

// NewRandomizer returns a Randomizer reading from r, or from crypto/rand
// when r is nil.
func NewRandomizer(r io.Reader) *Randomizer {
	if r == nil {
		r = rand.Reader
	}
	return &Randomizer{r: r}
}

// String returns n characters sampled uniformly, with replacement, from pool.
// Characters are runes, so a multibyte pool yields valid UTF-8 of n runes.
// When shuffle is true the pool is permuted before sampling.
func (z *Randomizer) String(n int, pool string, shuffle bool) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: length %d must not be negative", ErrInvalidParameter, n)
	}
	if pool == "" {
		return "", fmt.Errorf("%w: character pool must not be empty", ErrInvalidParameter)
	}
	chars := []rune(pool)
	if shuffle {
		if err := z.shuffle(chars); err != nil {
			return "", err
		}
	}
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		j, err := z.intn(len(chars))
		if err != nil {
			return "", err
		}
		b.WriteRune(chars[j])
	}
	return b.String(), nil
}

// shuffle permutes b in place (Fisher-Yates).
func (z *Randomizer) shuffle(b []rune) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := z.intn(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}

func (z *Randomizer) intn(n int) (int, error) {
	v, err := rand.Int(z.r, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("salt: failed to read randomness: %w", err)
	}
	return int(v.Int64()), nil
}
