package hashing

import (
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/blowfish"
)

// bcryptEncoding is the unpadded base-64 variant bcrypt uses.  It draws from
// the same 64 characters as salt.Alphabet, in a different order.
var bcryptEncoding = base64.NewEncoding("./ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789").
	WithPadding(base64.NoPadding)

// magicCipherData is the 24-byte plaintext bcrypt encrypts: "OrpheanBeholderScryDoubt".
var magicCipherData = []byte("OrpheanBeholderScryDoubt")

// maxBcryptPassword is the number of key bytes bcrypt consumes.
const maxBcryptPassword = 72

// blowfishCrypt computes a Blowfish-crypt hash under the given 22-character
// encoded salt.  golang.org/x/crypto/bcrypt always draws its own salt, so the
// EksBlowfish setup is done here on x/crypto/blowfish to honour the caller's.
//
// As in the C library, only the first 72 bytes of password are used, so
// hashes of longer passwords made elsewhere still verify.
func blowfishCrypt(password []byte, prefix string, cost int, encodedSalt string) (string, error) {
	if len(password) > maxBcryptPassword {
		password = password[:maxBcryptPassword]
	}
	rawSalt, err := bcryptEncoding.DecodeString(encodedSalt)
	if err != nil {
		return "", fmt.Errorf("%w: bcrypt salt: %v", ErrInvalidHash, err)
	}

	// The C implementations include the terminating NUL in the key.
	key := make([]byte, len(password)+1)
	copy(key, password)

	c, err := blowfish.NewSaltedCipher(key, rawSalt)
	if err != nil {
		return "", fmt.Errorf("hashing: bcrypt: %w", err)
	}
	for i := uint64(0); i < 1<<uint(cost); i++ {
		blowfish.ExpandKey(key, c)
		blowfish.ExpandKey(rawSalt, c)
	}

	ctext := make([]byte, len(magicCipherData))
	copy(ctext, magicCipherData)
	for i := 0; i < len(ctext); i += blowfish.BlockSize {
		for j := 0; j < 64; j++ {
			c.Encrypt(ctext[i:i+blowfish.BlockSize], ctext[i:i+blowfish.BlockSize])
		}
	}

	// Only 23 of the 24 ciphertext bytes are encoded, as in every bcrypt.
	return fmt.Sprintf("%s%02d$%s%s", prefix, cost,
		bcryptEncoding.EncodeToString(rawSalt), bcryptEncoding.EncodeToString(ctext[:23])), nil
}
