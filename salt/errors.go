package salt

import "errors"

// Sentinel errors returned by salt operations.
//
// Use [errors.Is] for comparisons:
//
//	_, err := salt.Forge(salt.Blowfish, salt.Options{Cost: 3})
//	if errors.Is(err, salt.ErrInvalidParameter) {
//	    // cost outside [4, 31]
//	}
var (
	// ErrInvalidArgument is returned when the salt to match, identify or
	// inspect is empty.
	ErrInvalidArgument = errors.New("salt: salt must be a non-empty string")

	// ErrInvalidParameter is returned when a generation parameter is out of
	// bounds: a negative length, a Blowfish cost outside [4, 31], negative
	// SHA rounds passed to [Forge], or a malformed pre-encoded extended DES
	// rounds token.
	ErrInvalidParameter = errors.New("salt: invalid parameter")

	// ErrInvalidScheme is returned when a [Scheme] value or tag is not one of
	// the supported schemes.
	ErrInvalidScheme = errors.New("salt: invalid scheme")

	// ErrOutOfRange is returned by [EncodeRounds] when the rounds value falls
	// outside [0, MaxEncodedRounds].
	ErrOutOfRange = errors.New("salt: rounds out of range")
)
