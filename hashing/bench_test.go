package hashing_test

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/hasbyte1/go-crypt-utils/hashing"
	"github.com/hasbyte1/go-crypt-utils/salt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Crypt benchmarks
// ──────────────────────────────────────────────────────────────────────────────
//
// Note: crypt schemes are intentionally slow.  The Default benchmarks use the
// real-world work factors; MinCost measures framework overhead only.

func BenchmarkCrypt_MD5(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = hashing.Crypt("bench-password", "$1$rasmusle$")
	}
}

func BenchmarkCrypt_SHA512_Default(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = hashing.Crypt("bench-password", "$6$usesomesillystri$")
	}
}

func BenchmarkCrypt_SHA512_MinRounds(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = hashing.Crypt("bench-password", "$6$rounds=1000$usesomesillystri$")
	}
}

func BenchmarkCrypt_Blowfish_MinCost(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = hashing.Crypt("bench-password", "$2a$04$......................")
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Hasher benchmarks
// ──────────────────────────────────────────────────────────────────────────────

func BenchmarkBcrypt_MinCost_Make(b *testing.B) {
	h, _ := hashing.NewBcryptHasher(hashing.BcryptOptions{Cost: bcrypt.MinCost})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = h.Make("bench-password")
	}
}

func BenchmarkBcrypt_MinCost_Check(b *testing.B) {
	h, _ := hashing.NewBcryptHasher(hashing.BcryptOptions{Cost: bcrypt.MinCost})
	hash, _ := h.Make("bench-password")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = h.Check("bench-password", hash)
	}
}

func BenchmarkCryptHasher_SHA256_Make(b *testing.B) {
	h, _ := hashing.NewCryptHasher(hashing.CryptOptions{Scheme: salt.SHA256})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = h.Make("bench-password")
	}
}

func BenchmarkSaltedDigest_Make(b *testing.B) {
	h, _ := hashing.NewSaltedDigestHasher(hashing.DefaultSaltedDigestOptions())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = h.Make("bench-password")
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Digest benchmarks
// ──────────────────────────────────────────────────────────────────────────────

func BenchmarkDigest(b *testing.B) {
	data := make([]byte, 1024)
	for _, alg := range []hashing.Algorithm{hashing.MD5, hashing.SHA256, hashing.SHA3_256, hashing.BLAKE2b256, hashing.CRC32B} {
		b.Run(string(alg), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			for i := 0; i < b.N; i++ {
				_, _ = hashing.Digest(alg, data)
			}
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Manager benchmarks
// ──────────────────────────────────────────────────────────────────────────────

func BenchmarkManager_Make_SHA512Crypt(b *testing.B) {
	m := newTestManager(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Make("bench-password")
	}
}

func BenchmarkManager_CheckWithDetect(b *testing.B) {
	m := newTestManager(b)
	hash, _ := m.Make("bench-password")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.CheckWithDetect("bench-password", hash)
	}
}
