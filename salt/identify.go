package salt

import (
	"fmt"
	"strconv"
	"strings"
)

// identificationOrder is the fixed order in which [Identify] tries the
// structured schemes.  The first match wins.
var identificationOrder = [...]Scheme{StdDES, ExtDES, MD5, Blowfish, SHA256, SHA512}

// IdentificationOrder returns the order in which [Identify] tries schemes.
func IdentificationOrder() []Scheme {
	return append([]Scheme(nil), identificationOrder[:]...)
}

// Identify returns the first structured scheme, in [IdentificationOrder],
// whose pattern s matches, or [Unknown] when none does.
//
//	salt.Identify("rl")        // StdDES
//	salt.Identify("_J9..rasm") // ExtDES
//	salt.Identify("hello")     // Unknown
func Identify(s string) (Scheme, error) {
	if s == "" {
		return Unknown, ErrInvalidArgument
	}
	for _, scheme := range identificationOrder {
		if formats[scheme].pattern.MatchString(s) {
			return scheme, nil
		}
	}
	return Unknown, nil
}

// Validate reports whether s is a salt of any structured scheme.
func Validate(s string) (bool, error) {
	scheme, err := Identify(s)
	if err != nil {
		return false, err
	}
	return scheme != Unknown, nil
}

// ValidateScheme reports whether s is a salt of the given scheme.  It is
// [Match] under the name the identifier side uses.
func ValidateScheme(s string, scheme Scheme) (bool, error) {
	return Match(s, scheme)
}

// ──────────────────────────────────────────────────────────────────────────────
// Inspection
// ──────────────────────────────────────────────────────────────────────────────

// Info describes the fields of an identified salt.
type Info struct {
	Scheme Scheme

	// Cost is the work factor the salt selects: decoded rounds for ExtDES,
	// the log2 cost for Blowfish, SHA rounds (5000 when not encoded), the
	// fixed 1000 iterations of MD5-crypt, and 0 for StdDES.
	Cost int

	// CostEncoded reports whether Cost appears in the salt text.
	CostEncoded bool

	// Body is the random part of the salt.
	Body string
}

// Inspect identifies s and splits it into its fields.  Strings that match no
// structured scheme are [ErrInvalidArgument].
func Inspect(s string) (Info, error) {
	scheme, err := Identify(s)
	if err != nil {
		return Info{}, err
	}
	f := formats[scheme]
	switch scheme {
	case StdDES:
		return Info{Scheme: scheme, Body: s}, nil
	case ExtDES:
		token := s[len(f.Prefix) : len(f.Prefix)+f.CostWidth]
		rounds, err := DecodeRounds(token)
		if err != nil {
			return Info{}, err
		}
		return Info{Scheme: scheme, Cost: rounds, CostEncoded: true, Body: s[len(f.Prefix)+f.CostWidth:]}, nil
	case MD5:
		return Info{Scheme: scheme, Cost: f.CostDefault, Body: s[len(f.Prefix) : len(f.Prefix)+f.BodyLen]}, nil
	case Blowfish:
		rest := s[len(f.Prefix):]
		cost, err := strconv.Atoi(rest[:f.CostWidth])
		if err != nil {
			return Info{}, fmt.Errorf("%w: blowfish cost %q", ErrInvalidArgument, rest[:f.CostWidth])
		}
		body := rest[f.CostWidth+1 : f.CostWidth+1+f.BodyLen]
		return Info{Scheme: scheme, Cost: cost, CostEncoded: true, Body: body}, nil
	case SHA256, SHA512:
		return inspectSHA(f, s[len(f.Prefix):]), nil
	default:
		return Info{}, fmt.Errorf("%w: %q matches no structured scheme", ErrInvalidArgument, s)
	}
}

// inspectSHA reads the fields after the "$5$"/"$6$" prefix.  The pattern has
// already guaranteed the shape.
func inspectSHA(f Format, rest string) Info {
	info := Info{Scheme: f.Scheme, Cost: f.CostDefault}
	if digits, ok := strings.CutPrefix(rest, "rounds="); ok {
		end := strings.IndexByte(digits, '$')
		rounds, err := strconv.Atoi(digits[:end])
		if err != nil {
			// Only overflow reaches here; crypt(3) treats it as the maximum.
			rounds = f.CostMax
		}
		info.Cost = ClampSHARounds(rounds)
		info.CostEncoded = true
		rest = digits[end+1:]
	}
	info.Body = rest[:f.BodyLen]
	return info
}
