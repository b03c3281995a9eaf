package salt

import (
	"fmt"
	"regexp"
	"strings"
)

// Scheme identifies a salt text convention.
//
// The set of schemes is closed.  The zero value, [Unknown], is not a scheme;
// it is what [Identify] returns when no structured scheme matches.
type Scheme uint8

const (
	// Unknown is the zero Scheme.  It is never produced by [ParseScheme] and
	// is rejected by [Forge] and [Match] with [ErrInvalidScheme].
	Unknown Scheme = iota
	// Generic is a free-form salt for concatenation-based hashing.
	Generic
	// StdDES is the two-character traditional DES salt.
	StdDES
	// ExtDES is the BSDi extended DES salt: "_" + 4-char rounds + 4 chars.
	ExtDES
	// MD5 is the "$1$" MD5-crypt salt.
	MD5
	// Blowfish is the "$2a$" bcrypt salt with a two-digit cost.
	Blowfish
	// SHA256 is the "$5$" SHA-256-crypt salt.
	SHA256
	// SHA512 is the "$6$" SHA-512-crypt salt.
	SHA512
)

var schemeTags = [...]string{
	Unknown:  "unknown",
	Generic:  "generic",
	StdDES:   "std_des",
	ExtDES:   "ext_des",
	MD5:      "md5",
	Blowfish: "blowfish",
	SHA256:   "sha256",
	SHA512:   "sha512",
}

// String returns the scheme tag, e.g. "std_des" or "sha512".
func (s Scheme) String() string {
	if int(s) < len(schemeTags) {
		return schemeTags[s]
	}
	return fmt.Sprintf("scheme(%d)", uint8(s))
}

// Valid reports whether s is one of the supported schemes.
func (s Scheme) Valid() bool { return s >= Generic && s <= SHA512 }

// Structured reports whether s has a fixed crypt(3) text format, i.e. is a
// valid scheme other than [Generic].
func (s Scheme) Structured() bool { return s > Generic && s <= SHA512 }

// ParseScheme maps a tag such as "blowfish" or "EXT_DES" to its Scheme.
// The comparison is case-insensitive and "-" is accepted in place of "_".
func ParseScheme(tag string) (Scheme, error) {
	t := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(tag)), "-", "_")
	for s := Generic; s <= SHA512; s++ {
		if schemeTags[s] == t {
			return s, nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q is not one of generic, std_des, ext_des, md5, blowfish, sha256, sha512",
		ErrInvalidScheme, tag)
}

// Schemes returns every valid scheme in declaration order, Generic first.
func Schemes() []Scheme {
	return []Scheme{Generic, StdDES, ExtDES, MD5, Blowfish, SHA256, SHA512}
}

// ──────────────────────────────────────────────────────────────────────────────
// Format table
// ──────────────────────────────────────────────────────────────────────────────

// CostKind describes how a scheme embeds its work factor.
type CostKind uint8

const (
	// CostNone means the scheme has no cost field.
	CostNone CostKind = iota
	// CostEncodedRounds is the 4-character rounds token of extended DES.
	CostEncodedRounds
	// CostLog2 is the zero-padded two-digit log2 cost of Blowfish.
	CostLog2
	// CostRoundsKeyword is the optional "rounds=<n>$" segment of SHA-crypt.
	CostRoundsKeyword
)

const (
	// Alphabet is the 64-symbol crypt alphabet, in rounds-encoding order.
	Alphabet = "./0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// Alphanumeric is the default pool for generic salts.
	Alphanumeric = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// md5Alphabet extends Alphabet with the extra characters MD5 salts may use.
	md5Alphabet = Alphabet + "_-+"
)

// Format is the static description of one structured scheme's salt text.
type Format struct {
	Scheme Scheme

	// Prefix is the literal text every salt of the scheme starts with.
	Prefix string

	// Cost is the kind of work-factor field following Prefix.
	Cost CostKind
	// CostMin and CostMax bound the cost value (inclusive).
	CostMin, CostMax int
	// CostDefault is used when the caller does not supply a cost.  For SHA
	// schemes it is the rounds value crypt(3) assumes when none is encoded.
	CostDefault int
	// CostWidth is the fixed text width of the cost field, 0 when the field
	// is absent or variable.
	CostWidth int

	// BodyLen is the number of characters drawn from Alphabet.
	BodyLen int
	// Alphabet is the pool the body is drawn from.
	Alphabet string

	// Trailer is the literal text terminating the salt.
	Trailer string

	pattern *regexp.Regexp
}

// Pattern returns the anchored regular expression salts of this format match.
func (f Format) Pattern() string { return f.pattern.String() }

// MaxEncodedRounds is the largest value [EncodeRounds] accepts (2^24 - 1).
const MaxEncodedRounds = 1<<24 - 1

var formats = [...]Format{
	StdDES: {
		Scheme:   StdDES,
		BodyLen:  2,
		Alphabet: Alphabet,
		pattern:  regexp.MustCompile(`^[0-9A-Za-z./]{2}$`),
	},
	ExtDES: {
		Scheme:      ExtDES,
		Prefix:      "_",
		Cost:        CostEncodedRounds,
		CostMin:     0,
		CostMax:     MaxEncodedRounds,
		CostDefault: 5000,
		CostWidth:   4,
		BodyLen:     4,
		Alphabet:    Alphabet,
		pattern:     regexp.MustCompile(`^_[0-9A-Za-z./]{8}$`),
	},
	MD5: {
		Scheme:      MD5,
		Prefix:      "$1$",
		CostDefault: 1000,
		BodyLen:     8,
		Alphabet:    md5Alphabet,
		Trailer:     "$",
		pattern:     regexp.MustCompile(`^\$1\$[0-9A-Za-z./_+-]{8}\$$`),
	},
	Blowfish: {
		Scheme:      Blowfish,
		Prefix:      "$2a$",
		Cost:        CostLog2,
		CostMin:     4,
		CostMax:     31,
		CostDefault: 8,
		CostWidth:   2,
		BodyLen:     22,
		Alphabet:    Alphabet,
		Trailer:     "$",
		pattern:     regexp.MustCompile(`^\$2a\$(0[4-9]|[12][0-9]|3[01])\$[0-9A-Za-z./]{22}\$?$`),
	},
	SHA256: {
		Scheme:      SHA256,
		Prefix:      "$5$",
		Cost:        CostRoundsKeyword,
		CostMin:     1000,
		CostMax:     999_999_999,
		CostDefault: 5000,
		BodyLen:     16,
		Alphabet:    Alphabet,
		Trailer:     "$",
		pattern:     regexp.MustCompile(`^\$5\$(rounds=[0-9]+\$)?[0-9A-Za-z./]{16}\$$`),
	},
	SHA512: {
		Scheme:      SHA512,
		Prefix:      "$6$",
		Cost:        CostRoundsKeyword,
		CostMin:     1000,
		CostMax:     999_999_999,
		CostDefault: 5000,
		BodyLen:     16,
		Alphabet:    Alphabet,
		Trailer:     "$",
		pattern:     regexp.MustCompile(`^\$6\$(rounds=[0-9]+\$)?[0-9A-Za-z./]{16}\$$`),
	},
}

// FormatOf returns the format table entry for a structured scheme.
// [Generic] has no fixed format and, like any invalid value, yields
// [ErrInvalidScheme].
func FormatOf(s Scheme) (Format, error) {
	if !s.Structured() {
		return Format{}, fmt.Errorf("%w: %s has no fixed format", ErrInvalidScheme, s)
	}
	return formats[s], nil
}
