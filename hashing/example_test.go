package hashing_test

import (
	"encoding/json"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/hasbyte1/go-crypt-utils/hashing"
	"github.com/hasbyte1/go-crypt-utils/salt"
)

// Example_defaultManager demonstrates the recommended out-of-the-box setup.
func Example_defaultManager() {
	// NewDefaultManager registers every built-in driver.
	// The default driver is sha512-crypt.
	m, err := hashing.NewDefaultManager()
	if err != nil {
		log.Fatal(err)
	}

	hash, err := m.Make("my-secret-password")
	if err != nil {
		log.Fatal(err)
	}

	ok, err := m.Check("my-secret-password", hash)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(hash[:3], ok)
	// Output: $6$ true
}

// ExampleCrypt computes a crypt(3) hash for a fixed salt.
func ExampleCrypt() {
	hash, err := hashing.Crypt("rasmuslerdorf", "$1$rasmusle$")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(hash)
	// Output: $1$rasmusle$rISCgZzpwk3UhDidwXvin0
}

// ExampleCrypt_forged hashes under a salt drawn from the salt package.
func ExampleCrypt_forged() {
	setting, _ := salt.Forge(salt.SHA256, salt.Options{Rounds: 1000})
	hash, _ := hashing.Crypt("hunter2", setting)

	ok, _ := hashing.ValidateCrypt("hunter2", hash)
	fmt.Println(hash[:len("$5$rounds=1000$")], ok)
	// Output: $5$rounds=1000$ true
}

// ExampleSecure shows the legacy "salt$hexdigest" convention.
func ExampleSecure() {
	v, _ := hashing.Secure("JonSnow<3Ygritte", "Longclaw", hashing.SHA1)
	fmt.Println(v)

	ok, _ := hashing.ValidateSecureSalted("JonSnow<3Ygritte", v, hashing.SHA1)
	fmt.Println(ok)
	// Output:
	// Longclaw$e66deaff15a5d7732d041b4f4bd5da1cc0c27474
	// true
}

// ExampleDigest computes a plain hex digest.
func ExampleDigest() {
	sum, _ := hashing.Digest(hashing.CRC32B, []byte("Winter is coming!"))
	fmt.Println(sum)
	// Output: 1ba93375
}

// Example_bcryptHasher demonstrates bcrypt directly.
func Example_bcryptHasher() {
	h, err := hashing.NewBcryptHasher(hashing.BcryptOptions{Cost: bcrypt.MinCost})
	if err != nil {
		log.Fatal(err)
	}

	hash, _ := h.Make("hunter2")
	ok, _ := h.Check("hunter2", hash)
	fmt.Println(ok)
	// Output: true
}

// Example_keyRotation_NeedsRehash illustrates the algorithm upgrade pattern:
// detect when a stored hash uses a different algorithm, then re-hash on the
// next successful login.
func Example_keyRotation_NeedsRehash() {
	m, _ := hashing.NewDefaultManager()

	// A legacy MD5-crypt hash still in the database.
	legacyHash := "$1$rasmusle$rISCgZzpwk3UhDidwXvin0"

	ok, err := m.CheckWithDetect("rasmuslerdorf", legacyHash)
	if err != nil || !ok {
		log.Fatal("login failed")
	}

	needs, _ := m.NeedsRehash(legacyHash)
	if needs {
		newHash, _ := m.Make("rasmuslerdorf")
		_ = newHash // persist newHash to database here
		fmt.Println("password re-hashed with", m.DefaultDriver())
	}
	// Output: password re-hashed with sha512-crypt
}

// Example_hashInfo shows how to inspect the parameters embedded in a hash.
func Example_hashInfo() {
	h, _ := hashing.NewCryptHasher(hashing.CryptOptions{Scheme: salt.SHA512, Rounds: 20000})
	hash, _ := h.Make("inspect-me")

	info, err := h.Info(hash)
	if err != nil {
		log.Fatal(err)
	}

	out, _ := json.Marshal(map[string]any{
		"driver": info.Driver,
		"rounds": info.Params["rounds"],
	})
	fmt.Println(string(out))
	// Output: {"driver":"sha512-crypt","rounds":20000}
}

// Example_detectDriver demonstrates auto-detecting which algorithm produced a hash.
func Example_detectDriver() {
	for _, hash := range []string{
		"$2a$07$usesomesillystringfore2uDLvp1Ii2e./U9C8sBjqp8I90dH6hi",
		"Longclaw$e66deaff15a5d7732d041b4f4bd5da1cc0c27474",
	} {
		driver, ok := hashing.DetectDriver(hash)
		fmt.Println(driver, ok)
	}
	// Output:
	// bcrypt true
	// salted-digest true
}

// ExampleHasher_interface shows using the Hasher interface for dependency
// injection.  Callers accept a hashing.Hasher and remain independent of
// which algorithm is in use.
func ExampleHasher_interface() {
	storePassword := func(h hashing.Hasher, password string) string {
		hash, _ := h.Make(password)
		return hash
	}
	verifyPassword := func(h hashing.Hasher, password, hash string) bool {
		ok, _ := h.Check(password, hash)
		return ok
	}

	shaH, _ := hashing.NewCryptHasher(hashing.DefaultCryptOptions())
	hash := storePassword(shaH, "demo")
	fmt.Println(verifyPassword(shaH, "demo", hash))

	bcH, _ := hashing.NewBcryptHasher(hashing.BcryptOptions{Cost: bcrypt.MinCost})
	hash = storePassword(bcH, "demo")
	fmt.Println(verifyPassword(bcH, "demo", hash))

	// Output:
	// true
	// true
}
