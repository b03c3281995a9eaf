package hashing

import (
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/hasbyte1/go-crypt-utils/salt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Salted digest functions
// ──────────────────────────────────────────────────────────────────────────────
//
// A salted digest is stored as  <salt>$<hex(digest(salt + password))>.  The
// salt is split off at the first "$", so it must not contain one.  An empty
// Algorithm selects [DefaultAlgorithm].

// Secure returns saltText + "$" + the hex digest of saltText+password.  An
// empty saltText is replaced by a fresh generic salt.  A saltText containing
// "$" could never be split off again and is [ErrInvalidHash].
//
//	hashing.Secure("JonSnow<3Ygritte", "Longclaw", hashing.SHA1)
//	// "Longclaw$e66deaff15a5d7732d041b4f4bd5da1cc0c27474", nil
func Secure(password, saltText string, alg Algorithm) (string, error) {
	saltText, sum, err := secure(password, saltText, alg)
	if err != nil {
		return "", err
	}
	return saltText + "$" + sum, nil
}

// SecureHash is [Secure] without the salt prefix: it returns only the hex
// digest.  The caller is responsible for storing the salt.
func SecureHash(password, saltText string, alg Algorithm) (string, error) {
	_, sum, err := secure(password, saltText, alg)
	return sum, err
}

// ValidateSecureSalted reports whether password produces saltedHash, a value
// returned by [Secure] with the same algorithm.  A saltedHash without a "$"
// or with an empty salt is [ErrInvalidHash].
func ValidateSecureSalted(password, saltedHash string, alg Algorithm) (bool, error) {
	saltText, want, ok := strings.Cut(saltedHash, "$")
	if !ok || saltText == "" {
		return false, fmt.Errorf("%w: salted hash must have the form <salt>$<hex>", ErrInvalidHash)
	}
	_, got, err := secure(password, saltText, alg)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1, nil
}

// ValidateSecure is [ValidateSecureSalted] with the salt and digest passed
// separately.
func ValidateSecure(password, saltText, hash string, alg Algorithm) (bool, error) {
	return ValidateSecureSalted(password, saltText+"$"+hash, alg)
}

func secure(password, saltText string, alg Algorithm) (string, string, error) {
	if alg == "" {
		alg = DefaultAlgorithm
	}
	if strings.Contains(saltText, "$") {
		return "", "", fmt.Errorf("%w: salt %q must not contain \"$\"", ErrInvalidHash, saltText)
	}
	if saltText == "" {
		var err error
		if saltText, err = salt.Forge(salt.Generic, salt.Options{}); err != nil {
			return "", "", fmt.Errorf("hashing: failed to generate salt: %w", err)
		}
	}
	sum, err := Digest(alg, []byte(saltText+password))
	if err != nil {
		return "", "", err
	}
	return saltText, sum, nil
}

// splitSalted splits a "<salt>$<hex>" value, requiring a non-empty salt and a
// non-empty, even-length lowercase hex digest.
func splitSalted(hash string) (saltText, sum string, ok bool) {
	saltText, sum, ok = strings.Cut(hash, "$")
	if !ok || saltText == "" || sum == "" || len(sum)%2 != 0 {
		return "", "", false
	}
	for i := 0; i < len(sum); i++ {
		c := sum[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return "", "", false
		}
	}
	return saltText, sum, true
}

// ──────────────────────────────────────────────────────────────────────────────
// Salted digest driver
// ──────────────────────────────────────────────────────────────────────────────

// SaltedDigestOptions configures a [SaltedDigestHasher].
type SaltedDigestOptions struct {
	// Algorithm is the digest algorithm.  Default: [DefaultAlgorithm].
	Algorithm Algorithm

	// SaltLength is the length of the generic salt generated by Make.
	// Default: [salt.DefaultGenericLength] (16).
	SaltLength int
}

// DefaultSaltedDigestOptions returns SaltedDigestOptions with SHA-1 and a
// 16-character salt.
func DefaultSaltedDigestOptions() SaltedDigestOptions {
	return SaltedDigestOptions{Algorithm: DefaultAlgorithm, SaltLength: salt.DefaultGenericLength}
}

// SaltedDigestHasher adapts the salted-digest functions to [Hasher] so legacy
// "salt$hex" values can live in a [Manager] next to crypt hashes and be
// migrated with [Manager.NeedsRehash].
//
// SaltedDigestHasher is immutable after construction and safe for concurrent use.
type SaltedDigestHasher struct {
	alg     Algorithm
	saltLen int
}

// NewSaltedDigestHasher constructs a SaltedDigestHasher.  Returns
// [ErrInvalidOption] for an unsupported algorithm or a non-positive salt
// length.
func NewSaltedDigestHasher(opts SaltedDigestOptions) (*SaltedDigestHasher, error) {
	if !opts.Algorithm.Supported() {
		return nil, fmt.Errorf("%w: digest algorithm %q is not supported", ErrInvalidOption, opts.Algorithm)
	}
	if opts.SaltLength < 1 {
		return nil, fmt.Errorf("%w: salt length %d must be positive", ErrInvalidOption, opts.SaltLength)
	}
	return &SaltedDigestHasher{alg: opts.Algorithm, saltLen: opts.SaltLength}, nil
}

// Driver returns [DriverSaltedDigest].
func (h *SaltedDigestHasher) Driver() DriverName { return DriverSaltedDigest }

// Algorithm returns the configured digest algorithm.
func (h *SaltedDigestHasher) Algorithm() Algorithm { return h.alg }

// Make hashes password under a fresh alphanumeric salt.
func (h *SaltedDigestHasher) Make(password string) (string, error) {
	saltText, err := salt.Forge(salt.Generic, salt.Options{Length: h.saltLen})
	if err != nil {
		return "", fmt.Errorf("hashing: salted-digest: failed to generate salt: %w", err)
	}
	return Secure(password, saltText, h.alg)
}

// Check verifies password against a "salt$hex" hash.  A digest whose length
// does not fit the configured algorithm is [ErrAlgorithmMismatch].
func (h *SaltedDigestHasher) Check(password, hash string) (bool, error) {
	if _, err := h.parse(hash); err != nil {
		return false, err
	}
	return ValidateSecureSalted(password, hash, h.alg)
}

// NeedsRehash returns true when the salt length differs from the configured
// one.  A digest of another size is [ErrAlgorithmMismatch].
func (h *SaltedDigestHasher) NeedsRehash(hash string) (bool, error) {
	saltText, err := h.parse(hash)
	if err != nil {
		return false, err
	}
	return len(saltText) != h.saltLen, nil
}

// Info returns the salt and digest size of a "salt$hex" hash.
//
// Returned [HashInfo].Params:
//   - "salt"        → string
//   - "digest_size" → int
func (h *SaltedDigestHasher) Info(hash string) (HashInfo, error) {
	saltText, sum, ok := splitSalted(hash)
	if !ok {
		return HashInfo{}, fmt.Errorf("%w: hash does not appear to be a salted digest", ErrAlgorithmMismatch)
	}
	return HashInfo{
		Driver: DriverSaltedDigest,
		Params: map[string]any{"salt": saltText, "digest_size": len(sum) / 2},
	}, nil
}

func (h *SaltedDigestHasher) parse(hash string) (string, error) {
	saltText, sum, ok := splitSalted(hash)
	if !ok {
		return "", fmt.Errorf("%w: hash does not appear to be a salted digest", ErrAlgorithmMismatch)
	}
	if size := len(sum) / 2; size != h.alg.Size() {
		return "", fmt.Errorf("%w: %d-byte digest, %s produces %d bytes",
			ErrAlgorithmMismatch, size, h.alg, h.alg.Size())
	}
	return saltText, nil
}
