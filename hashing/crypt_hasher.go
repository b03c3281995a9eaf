package hashing

import (
	"fmt"

	"github.com/GehirnInc/crypt/sha512_crypt"

	"github.com/hasbyte1/go-crypt-utils/salt"
)

// CryptOptions configures a [CryptHasher].
type CryptOptions struct {
	// Scheme is one of salt.MD5, salt.SHA256 or salt.SHA512.
	// [DefaultCryptOptions] selects salt.SHA512.
	Scheme salt.Scheme

	// Rounds is the SHA-crypt rounds count.  Zero omits the "rounds="
	// segment, which crypt(3) reads as 5000.  Non-zero values must be in
	// [1000, 999999999]; unlike salt.Forge, the hasher does not clamp.
	// MD5-crypt has a fixed count and requires Rounds == 0.
	Rounds int
}

// DefaultCryptOptions returns CryptOptions for SHA-512-crypt with the
// default 5000 rounds.
func DefaultCryptOptions() CryptOptions {
	return CryptOptions{Scheme: salt.SHA512}
}

// CryptHasher hashes passwords with MD5-crypt, SHA-256-crypt or
// SHA-512-crypt.  Salts come from the salt package and hashes from [Crypt],
// so the output is interchangeable with the C library's crypt(3).
//
// Use [BcryptHasher] for Blowfish.  The DES schemes have no hasher.
//
// CryptHasher is immutable after construction and safe for concurrent use.
type CryptHasher struct {
	scheme salt.Scheme
	rounds int
	driver DriverName
}

// NewCryptHasher constructs a CryptHasher.  Returns [ErrInvalidOption] for a
// scheme other than MD5, SHA256 or SHA512, or for rounds out of range.
func NewCryptHasher(opts CryptOptions) (*CryptHasher, error) {
	if err := validateCryptOptions(opts); err != nil {
		return nil, err
	}
	h := &CryptHasher{scheme: opts.Scheme, rounds: opts.Rounds}
	switch opts.Scheme {
	case salt.MD5:
		h.driver = DriverMD5Crypt
	case salt.SHA256:
		h.driver = DriverSHA256Crypt
	case salt.SHA512:
		h.driver = DriverSHA512Crypt
	}
	return h, nil
}

func validateCryptOptions(opts CryptOptions) error {
	switch opts.Scheme {
	case salt.MD5:
		if opts.Rounds != 0 {
			return fmt.Errorf("%w: md5-crypt has a fixed rounds count", ErrInvalidOption)
		}
	case salt.SHA256, salt.SHA512:
		if opts.Rounds != 0 && (opts.Rounds < sha512_crypt.RoundsMin || opts.Rounds > sha512_crypt.RoundsMax) {
			return fmt.Errorf("%w: rounds %d must be in [%d, %d]",
				ErrInvalidOption, opts.Rounds, sha512_crypt.RoundsMin, sha512_crypt.RoundsMax)
		}
	case salt.Blowfish:
		return fmt.Errorf("%w: use NewBcryptHasher for blowfish", ErrInvalidOption)
	default:
		return fmt.Errorf("%w: %s: %w", ErrInvalidOption, opts.Scheme, ErrUnsupportedScheme)
	}
	return nil
}

// Driver returns the driver name for the configured scheme.
func (h *CryptHasher) Driver() DriverName { return h.driver }

// Scheme returns the configured salt scheme.
func (h *CryptHasher) Scheme() salt.Scheme { return h.scheme }

// Make hashes password under a freshly forged salt.
func (h *CryptHasher) Make(password string) (string, error) {
	setting, err := salt.Forge(h.scheme, salt.Options{Rounds: h.rounds})
	if err != nil {
		return "", fmt.Errorf("hashing: %s: failed to generate salt: %w", h.driver, err)
	}
	return Crypt(password, setting)
}

// Check verifies password against hash in constant time.
func (h *CryptHasher) Check(password, hash string) (bool, error) {
	if _, err := h.parse(hash); err != nil {
		return false, err
	}
	return ValidateCrypt(password, hash)
}

// NeedsRehash returns true when the rounds count read from hash differs from
// the configured one.
func (h *CryptHasher) NeedsRehash(hash string) (bool, error) {
	cs, err := h.parse(hash)
	if err != nil {
		return false, err
	}
	return cs.rounds != h.effectiveRounds(), nil
}

// Info extracts the rounds count and salt from hash.
//
// Returned [HashInfo].Params:
//   - "rounds" → int
//   - "salt"   → string
func (h *CryptHasher) Info(hash string) (HashInfo, error) {
	cs, err := h.parse(hash)
	if err != nil {
		return HashInfo{}, err
	}
	return HashInfo{
		Driver: h.driver,
		Params: map[string]any{"rounds": cs.rounds, "salt": cs.body},
	}, nil
}

func (h *CryptHasher) effectiveRounds() int {
	if h.rounds != 0 {
		return h.rounds
	}
	f, _ := salt.FormatOf(h.scheme)
	return f.CostDefault
}

func (h *CryptHasher) parse(hash string) (cryptSetting, error) {
	if d, ok := DetectDriver(hash); !ok || d != h.driver {
		return cryptSetting{}, fmt.Errorf("%w: hash does not appear to be %s", ErrAlgorithmMismatch, h.driver)
	}
	return parseSetting(hash)
}
