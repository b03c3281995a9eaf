package salt

import (
	"fmt"
	"strings"
)

// EncodeRounds encodes n as the 4-character rounds token used by extended
// DES salts.
//
// Each character carries 6 bits, least significant group first, over
// [Alphabet] ("." is 0, "z" is 63).  Values needing fewer than four digits are
// right-padded with ".":
//
//	EncodeRounds(0)        // "...."
//	EncodeRounds(725)      // "J9.."
//	EncodeRounds(16777215) // "zzzz"
//
// Returns [ErrOutOfRange] unless 0 <= n <= [MaxEncodedRounds].
func EncodeRounds(n int) (string, error) {
	if n < 0 || n > MaxEncodedRounds {
		return "", fmt.Errorf("%w: %d must be in [0, %d]", ErrOutOfRange, n, MaxEncodedRounds)
	}
	var b [4]byte
	for i := range b {
		b[i] = Alphabet[n&0x3f]
		n >>= 6
	}
	return string(b[:]), nil
}

// DecodeRounds is the inverse of [EncodeRounds].  The token must be exactly
// four characters from [Alphabet]; anything else is [ErrInvalidParameter].
func DecodeRounds(token string) (int, error) {
	if len(token) != 4 {
		return 0, fmt.Errorf("%w: rounds token %q must be 4 characters", ErrInvalidParameter, token)
	}
	n := 0
	for i := len(token) - 1; i >= 0; i-- {
		d := strings.IndexByte(Alphabet, token[i])
		if d < 0 {
			return 0, fmt.Errorf("%w: rounds token %q has %q outside the alphabet %q",
				ErrInvalidParameter, token, token[i], Alphabet)
		}
		n = n<<6 | d
	}
	return n, nil
}
