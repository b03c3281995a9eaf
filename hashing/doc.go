// Package hashing computes and verifies password hashes on top of the salts
// produced by package salt.
//
// # Crypt
//
// [Crypt] is a crypt(3) work-alike.  Given a password and a setting (a salt
// from [salt.Forge] or a complete hash) it returns the same string as the C
// library for MD5 ("$1$"), Blowfish ("$2a$", "$2b$", "$2y$"), SHA-256 ("$5$")
// and SHA-512 ("$6$").  DES settings are recognised and rejected with
// [ErrUnsupportedScheme].
//
//	setting, _ := salt.Forge(salt.SHA512, salt.Options{Rounds: 10000})
//	hash, _ := hashing.Crypt("secret", setting)
//	ok, _ := hashing.ValidateCrypt("secret", hash) // true
//
// # Digests and salted digests
//
// [Digest] returns the lowercase hex digest of data for any [Algorithm] in
// [Available].  [Secure] stores a password as "<salt>$<hex(digest(salt +
// password))>", the legacy convention [ValidateSecureSalted] checks.  These
// values are not password hashes in the modern sense; keep them only for
// data you are migrating.
//
// # Drivers
//
// The [Hasher] interface has three implementations:
//
//   - [CryptHasher]: MD5-crypt, SHA-256-crypt or SHA-512-crypt
//   - [BcryptHasher]: Blowfish-crypt
//   - [SaltedDigestHasher]: "salt$hex" values
//
// The [Manager] is a named driver registry and dispatcher.  Register one or
// more [Hasher] implementations, designate a default driver, then delegate
// all hashing operations through the [Manager].
//
//	m, err := hashing.NewDefaultManager() // sha512-crypt default, all drivers registered
//	if err != nil { log.Fatal(err) }
//
//	hash, _ := m.Make("my-secret-password")
//	ok, _   := m.Check("my-secret-password", hash) // true
//
// # Cross-driver migration
//
// Call [Manager.NeedsRehash] on every successful login.  It returns true when
// the stored hash was produced by a different driver or with other
// parameters than the current default.  Re-hash and persist immediately:
//
//	ok, _ := m.CheckWithDetect(password, storedHash)
//	if ok {
//	    if needs, _ := m.NeedsRehash(storedHash); needs {
//	        newHash, _ := m.Make(password)
//	        persist(userID, newHash)
//	    }
//	}
package hashing
