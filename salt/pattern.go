package salt

import "fmt"

// Match reports whether s has the structure of scheme.
//
// [Generic] is unconstrained and matches any non-empty string.  An empty s is
// [ErrInvalidArgument]; a scheme outside the enumeration is
// [ErrInvalidScheme].
func Match(s string, scheme Scheme) (bool, error) {
	if s == "" {
		return false, ErrInvalidArgument
	}
	switch scheme {
	case Generic:
		return true, nil
	case StdDES, ExtDES, MD5, Blowfish, SHA256, SHA512:
		return formats[scheme].pattern.MatchString(s), nil
	default:
		return false, fmt.Errorf("%w: cannot match against %s", ErrInvalidScheme, scheme)
	}
}

// MatchStdDES reports whether s is two characters from [Alphabet].
func MatchStdDES(s string) (bool, error) { return Match(s, StdDES) }

// MatchExtDES reports whether s is "_" followed by eight [Alphabet] characters.
func MatchExtDES(s string) (bool, error) { return Match(s, ExtDES) }

// MatchMD5 reports whether s is "$1$" + eight characters from [Alphabet] or
// "_+-" + "$".
func MatchMD5(s string) (bool, error) { return Match(s, MD5) }

// MatchBlowfish reports whether s is "$2a$" + a cost in 04..31 + "$" +
// 22 [Alphabet] characters, optionally followed by "$".
func MatchBlowfish(s string) (bool, error) { return Match(s, Blowfish) }

// MatchSHA256 reports whether s is "$5$" + an optional "rounds=<digits>$" +
// 16 [Alphabet] characters + "$".
func MatchSHA256(s string) (bool, error) { return Match(s, SHA256) }

// MatchSHA512 reports whether s is "$6$" + an optional "rounds=<digits>$" +
// 16 [Alphabet] characters + "$".
func MatchSHA512(s string) (bool, error) { return Match(s, SHA512) }
