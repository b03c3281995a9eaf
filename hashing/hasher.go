package hashing

import "strings"

// DriverName identifies a hashing algorithm driver.
// Using a named string type prevents accidental confusion with plain strings.
type DriverName string

const (
	// DriverMD5Crypt selects the "$1$" MD5-crypt driver.
	DriverMD5Crypt DriverName = "md5-crypt"
	// DriverBcrypt selects the "$2a$" Blowfish-crypt driver.
	DriverBcrypt DriverName = "bcrypt"
	// DriverSHA256Crypt selects the "$5$" SHA-256-crypt driver.
	DriverSHA256Crypt DriverName = "sha256-crypt"
	// DriverSHA512Crypt selects the "$6$" SHA-512-crypt driver (the default).
	DriverSHA512Crypt DriverName = "sha512-crypt"
	// DriverSaltedDigest selects the "salt$hexdigest" driver built on
	// [Secure].  It exists for legacy data and should not be used for new
	// passwords.
	DriverSaltedDigest DriverName = "salted-digest"
)

// Hasher is the core interface satisfied by all password-hashing drivers.
//
// All implementations must be safe for concurrent use by multiple goroutines.
type Hasher interface {
	// Make hashes a plaintext password and returns the encoded hash string.
	// A fresh salt is generated for every call, so two calls with the same
	// password will produce different outputs.
	Make(password string) (string, error)

	// Check verifies that password matches the previously encoded hash.
	// Returns (true, nil) on match, (false, nil) on mismatch, or
	// (false, err) if the hash is structurally invalid.
	//
	// Comparison is performed in constant time.
	Check(password, hash string) (bool, error)

	// NeedsRehash returns true when the hash was produced with parameters
	// that differ from the hasher's current configuration.  Callers should
	// re-hash the password on next successful login when this returns true.
	NeedsRehash(hash string) (bool, error)

	// Info extracts metadata from an encoded hash string without verifying it.
	Info(hash string) (HashInfo, error)

	// Driver returns the DriverName implemented by this hasher.
	Driver() DriverName
}

// HashInfo carries metadata parsed from an encoded hash string.
type HashInfo struct {
	// Driver is the hashing algorithm that produced the hash.
	Driver DriverName

	// Params holds algorithm-specific parameters extracted from the hash string.
	//
	// For bcrypt:
	//   "cost" → int
	//
	// For md5-crypt, sha256-crypt and sha512-crypt:
	//   "rounds" → int    (1000 for md5-crypt, 5000 when no rounds= segment)
	//   "salt"   → string
	//
	// For salted-digest:
	//   "salt"        → string
	//   "digest_size" → int (bytes)
	Params map[string]any
}

// DetectDriver inspects a hash string and returns the [DriverName] that
// produced it.  It is a best-effort heuristic based on the hash prefix and
// does not verify the hash itself.
//
// The second return value is false when the hash format is not recognised.
// DES-family hashes are not recognised because no driver can compute them.
func DetectDriver(hash string) (DriverName, bool) {
	switch {
	case strings.HasPrefix(hash, "$1$"):
		return DriverMD5Crypt, true
	// bcrypt hashes start with $2a$, $2b$, or $2y$
	case strings.HasPrefix(hash, "$2a$"),
		strings.HasPrefix(hash, "$2b$"),
		strings.HasPrefix(hash, "$2y$"):
		return DriverBcrypt, true
	case strings.HasPrefix(hash, "$5$"):
		return DriverSHA256Crypt, true
	case strings.HasPrefix(hash, "$6$"):
		return DriverSHA512Crypt, true
	}
	if _, _, ok := splitSalted(hash); ok {
		return DriverSaltedDigest, true
	}
	return "", false
}
