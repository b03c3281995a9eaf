package hashing

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/hasbyte1/go-crypt-utils/salt"
)

const (
	// DefaultBcryptCost is the recommended work factor for bcrypt hashes made
	// by [BcryptHasher].  It is higher than the salt package's default of 8,
	// which matches the historical crypt(3) convention.
	DefaultBcryptCost = 12
)

// BcryptOptions configures a [BcryptHasher].
type BcryptOptions struct {
	// Cost is the bcrypt work factor (logarithmic).
	// Valid range: [bcrypt.MinCost (4), bcrypt.MaxCost (31)].
	// Default: [DefaultBcryptCost] (12).
	Cost int
}

// DefaultBcryptOptions returns BcryptOptions with [DefaultBcryptCost].
func DefaultBcryptOptions() BcryptOptions {
	return BcryptOptions{Cost: DefaultBcryptCost}
}

// BcryptHasher hashes passwords with Blowfish-crypt.
//
// Make draws a "$2a$" salt from the salt package and runs [Crypt] on it, so
// every hash it produces is also a valid crypt(3) string.  Check accepts
// "$2a$", "$2b$" and "$2y$" hashes from any bcrypt implementation.
//
// BcryptHasher is immutable after construction and safe for concurrent use.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher constructs a BcryptHasher with the provided options.
// Returns [ErrInvalidOption] if Cost is outside [bcrypt.MinCost, bcrypt.MaxCost].
func NewBcryptHasher(opts BcryptOptions) (*BcryptHasher, error) {
	if opts.Cost < bcrypt.MinCost || opts.Cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: bcrypt cost %d must be in [%d, %d]",
			ErrInvalidOption, opts.Cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &BcryptHasher{cost: opts.Cost}, nil
}

// Driver returns [DriverBcrypt].
func (h *BcryptHasher) Driver() DriverName { return DriverBcrypt }

// Cost returns the configured bcrypt work factor.
func (h *BcryptHasher) Cost() int { return h.cost }

// Make hashes password and returns a "$2a$<cost>$..." string.
//
// Passwords longer than 72 bytes are rejected with bcrypt.ErrPasswordTooLong
// rather than silently truncated as [Crypt] does.
func (h *BcryptHasher) Make(password string) (string, error) {
	if len(password) > maxBcryptPassword {
		return "", fmt.Errorf("hashing: bcrypt: %w", bcrypt.ErrPasswordTooLong)
	}
	setting, err := salt.Forge(salt.Blowfish, salt.Options{Cost: h.cost})
	if err != nil {
		return "", fmt.Errorf("hashing: bcrypt: failed to generate salt: %w", err)
	}
	return Crypt(password, setting)
}

// Check verifies that password matches the bcrypt-encoded hash.
// Returns (false, nil) on mismatch; never returns ErrMismatchedHashAndPassword.
func (h *BcryptHasher) Check(password, hash string) (bool, error) {
	if !h.looksLikeBcrypt(hash) {
		return false, fmt.Errorf("%w: hash does not appear to be bcrypt", ErrAlgorithmMismatch)
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}
	return true, nil
}

// NeedsRehash returns true if the work factor encoded in hash differs from
// the hasher's configured cost.
func (h *BcryptHasher) NeedsRehash(hash string) (bool, error) {
	cost, err := h.storedCost(hash)
	if err != nil {
		return false, err
	}
	return cost != h.cost, nil
}

// Info extracts the work factor from a bcrypt hash string.
//
// Returned [HashInfo].Params:
//   - "cost" → int
func (h *BcryptHasher) Info(hash string) (HashInfo, error) {
	cost, err := h.storedCost(hash)
	if err != nil {
		return HashInfo{}, err
	}
	return HashInfo{
		Driver: DriverBcrypt,
		Params: map[string]any{"cost": cost},
	}, nil
}

func (h *BcryptHasher) storedCost(hash string) (int, error) {
	if !h.looksLikeBcrypt(hash) {
		return 0, fmt.Errorf("%w: hash does not appear to be bcrypt", ErrAlgorithmMismatch)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}
	return cost, nil
}

// looksLikeBcrypt returns true if hash has a recognised bcrypt prefix.
func (h *BcryptHasher) looksLikeBcrypt(hash string) bool {
	d, ok := DetectDriver(hash)
	return ok && d == DriverBcrypt
}
