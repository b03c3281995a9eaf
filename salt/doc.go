// Package salt generates and recognises the salt strings consumed by the
// crypt(3) family of password hashes.
//
// # Schemes
//
// [Scheme] is a closed enumeration.  Six schemes have a fixed text format,
// described by the [Format] table:
//
//	StdDES    rl                                  2 chars
//	ExtDES    _J9..rasm                           "_" + 4-char rounds + 4 chars
//	MD5       $1$rasmusle$                        "$1$" + 8 chars + "$"
//	Blowfish  $2a$07$usesomesillystringfors$      "$2a$" + cost + "$" + 22 chars + "$"
//	SHA256    $5$rounds=5000$usesomesillystri$    "$5$" + [rounds=N$] + 16 chars + "$"
//	SHA512    $6$rounds=5000$usesomesillystri$    "$6$" + [rounds=N$] + 16 chars + "$"
//
// [Generic] is a free-form salt for concatenation-based hashing and has no
// structure.
//
// # Generation
//
// [Forge] (or [Generator.Forge] with an injected random source) produces a
// salt that always matches its scheme's pattern:
//
//	s, err := salt.Forge(salt.SHA512, salt.Options{Rounds: 10000})
//	// "$6$rounds=10000$" + 16 chars + "$"
//
// Two parameter policies differ on purpose: a Blowfish cost outside [4, 31]
// is rejected with [ErrInvalidParameter], while SHA-crypt rounds outside
// [1000, 999999999] are silently clamped.
//
// Extended DES rounds are embedded with [EncodeRounds], a fixed-width,
// little-endian base-64 encoding over "./0-9A-Za-z".
//
// # Validation
//
// [Match] checks a salt against one scheme.  [Identify] tries the structured
// schemes in the fixed order StdDES, ExtDES, MD5, Blowfish, SHA256, SHA512 and
// returns the first match; the order is part of the contract.  [Inspect]
// additionally extracts the cost and body.
//
// The package only deals with salt text.  Hashing lives in the sibling
// hashing package.
package salt
