package hashing

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"hash/adler32"
	"hash/crc32"
	"hash/fnv"
	"slices"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/md4"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
)

// Algorithm names a digest algorithm accepted by [Digest].  The names follow
// the lowercase spelling most hash tooling uses ("sha256", "crc32b").
type Algorithm string

// Supported digest algorithms.
const (
	MD4        Algorithm = "md4"
	MD5        Algorithm = "md5"
	SHA1       Algorithm = "sha1"
	SHA224     Algorithm = "sha224"
	SHA256     Algorithm = "sha256"
	SHA384     Algorithm = "sha384"
	SHA512     Algorithm = "sha512"
	SHA512_224 Algorithm = "sha512/224"
	SHA512_256 Algorithm = "sha512/256"
	SHA3_224   Algorithm = "sha3-224"
	SHA3_256   Algorithm = "sha3-256"
	SHA3_384   Algorithm = "sha3-384"
	SHA3_512   Algorithm = "sha3-512"
	RIPEMD160  Algorithm = "ripemd160"
	BLAKE2b256 Algorithm = "blake2b-256"
	BLAKE2b384 Algorithm = "blake2b-384"
	BLAKE2b512 Algorithm = "blake2b-512"
	BLAKE2s256 Algorithm = "blake2s-256"
	Adler32    Algorithm = "adler32"
	CRC32B     Algorithm = "crc32b"
	CRC32C     Algorithm = "crc32c"
	FNV132     Algorithm = "fnv132"
	FNV1a32    Algorithm = "fnv1a32"
	FNV164     Algorithm = "fnv164"
	FNV1a64    Algorithm = "fnv1a64"
)

// DefaultAlgorithm is the digest used by the salted-digest functions when no
// algorithm is given.  SHA-1 keeps stored "salt$hex" values readable by
// existing systems; pick a stronger algorithm for new data.
const DefaultAlgorithm = SHA1

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

// digests maps every supported algorithm to its constructor.
var digests = map[Algorithm]func() hash.Hash{
	MD4:        md4.New,
	MD5:        md5.New,
	SHA1:       sha1.New,
	SHA224:     sha256.New224,
	SHA256:     sha256.New,
	SHA384:     sha512.New384,
	SHA512:     sha512.New,
	SHA512_224: sha512.New512_224,
	SHA512_256: sha512.New512_256,
	SHA3_224:   sha3.New224,
	SHA3_256:   sha3.New256,
	SHA3_384:   sha3.New384,
	SHA3_512:   sha3.New512,
	RIPEMD160:  ripemd160.New,
	BLAKE2b256: unkeyed(blake2b.New256),
	BLAKE2b384: unkeyed(blake2b.New384),
	BLAKE2b512: unkeyed(blake2b.New512),
	BLAKE2s256: unkeyed(blake2s.New256),
	Adler32:    func() hash.Hash { return adler32.New() },
	CRC32B:     func() hash.Hash { return crc32.NewIEEE() },
	CRC32C:     func() hash.Hash { return crc32.New(castagnoli) },
	FNV132:     func() hash.Hash { return fnv.New32() },
	FNV1a32:    func() hash.Hash { return fnv.New32a() },
	FNV164:     func() hash.Hash { return fnv.New64() },
	FNV1a64:    func() hash.Hash { return fnv.New64a() },
}

// unkeyed adapts a BLAKE2 constructor; with a nil key it cannot fail.
func unkeyed(newKeyed func(key []byte) (hash.Hash, error)) func() hash.Hash {
	return func() hash.Hash {
		h, err := newKeyed(nil)
		if err != nil {
			panic("hashing: unkeyed blake2: " + err.Error())
		}
		return h
	}
}

// Available returns the supported algorithms in lexical order.
func Available() []Algorithm {
	out := make([]Algorithm, 0, len(digests))
	for a := range digests {
		out = append(out, a)
	}
	slices.Sort(out)
	return out
}

// Supported reports whether alg can be passed to [Digest].
func (alg Algorithm) Supported() bool {
	_, ok := digests[alg]
	return ok
}

// Size returns the digest length of alg in bytes, or 0 when unsupported.
func (alg Algorithm) Size() int {
	newHash, ok := digests[alg]
	if !ok {
		return 0
	}
	return newHash().Size()
}

// ParseAlgorithm maps a name such as "SHA256" or "sha3-512" to its
// [Algorithm].  Matching is case-insensitive.
func ParseAlgorithm(name string) (Algorithm, error) {
	alg := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	if !alg.Supported() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
	}
	return alg, nil
}

// Digest returns the lowercase hex digest of data under alg.
//
//	hashing.Digest(hashing.CRC32B, []byte("Winter is coming!")) // "1ba93375", nil
func Digest(alg Algorithm, data []byte) (string, error) {
	newHash, ok := digests[alg]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, alg)
	}
	h := newHash()
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// mustDigest is Digest for algorithms known to be registered.
func mustDigest(alg Algorithm, data string) string {
	s, err := Digest(alg, []byte(data))
	if err != nil {
		panic(err)
	}
	return s
}

// MD5Hex returns the hex MD5 digest of data.
func MD5Hex(data string) string { return mustDigest(MD5, data) }

// SHA1Hex returns the hex SHA-1 digest of data.
func SHA1Hex(data string) string { return mustDigest(SHA1, data) }

// SHA256Hex returns the hex SHA-256 digest of data.
func SHA256Hex(data string) string { return mustDigest(SHA256, data) }

// SHA512Hex returns the hex SHA-512 digest of data.
func SHA512Hex(data string) string { return mustDigest(SHA512, data) }

// CRC32BHex returns the IEEE CRC-32 checksum of data as 8 hex digits.
func CRC32BHex(data string) string { return mustDigest(CRC32B, data) }
