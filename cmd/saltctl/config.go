package main

import (
	"io"

	"github.com/BurntSushi/toml"

	"github.com/hasbyte1/go-crypt-utils/hashing"
	"github.com/hasbyte1/go-crypt-utils/salt"
)

type SaltctlConfigFile struct {
	LogLevel string        `toml:"log_level"`
	Forge    ForgeConfig   `toml:"forge"`
	Digest   DigestConfig  `toml:"digest"`
	Hashing  HashingConfig `toml:"hashing"`
}

// ForgeConfig holds the defaults of the forge and crypt commands.  Zero
// values select the salt package defaults.
type ForgeConfig struct {
	GenericLength   int    `toml:"generic_length"`
	GenericAlphabet string `toml:"generic_alphabet"`
	BlowfishCost    int    `toml:"blowfish_cost"`
	ExtDESRounds    int    `toml:"ext_des_rounds"`
	SHARounds       int    `toml:"sha_rounds"`
}

type DigestConfig struct {
	Algorithm string `toml:"algorithm"`
}

type HashingConfig struct {
	DefaultDriver          string `toml:"default_driver"`
	BcryptCost             int    `toml:"bcrypt_cost"`
	SHA256Rounds           int    `toml:"sha256_rounds"`
	SHA512Rounds           int    `toml:"sha512_rounds"`
	SaltedDigestAlgorithm  string `toml:"salted_digest_algorithm"`
	SaltedDigestSaltLength int    `toml:"salted_digest_salt_length"`
}

func GetDefaultConfig() *SaltctlConfigFile {
	m := hashing.DefaultManagerOptions()
	return &SaltctlConfigFile{
		LogLevel: "warning",
		Forge: ForgeConfig{
			GenericLength: salt.DefaultGenericLength,
		},
		Digest: DigestConfig{
			Algorithm: string(hashing.DefaultAlgorithm),
		},
		Hashing: HashingConfig{
			DefaultDriver:          string(m.Default),
			BcryptCost:             m.Bcrypt.Cost,
			SaltedDigestAlgorithm:  string(m.SaltedDigest.Algorithm),
			SaltedDigestSaltLength: m.SaltedDigest.SaltLength,
		},
	}
}

// LoadConfig reads name on top of GetDefaultConfig, so keys missing from the
// file keep their defaults.
func LoadConfig(name string) (*SaltctlConfigFile, error) {
	c := GetDefaultConfig()
	_, err := toml.DecodeFile(name, c)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func DumpConfig(c *SaltctlConfigFile, w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// options maps the forge defaults onto salt.Options for scheme.
func (c ForgeConfig) options(scheme salt.Scheme) salt.Options {
	opts := salt.Options{
		Length:   c.GenericLength,
		Alphabet: c.GenericAlphabet,
		Cost:     c.BlowfishCost,
	}
	switch scheme {
	case salt.ExtDES:
		opts.Rounds = c.ExtDESRounds
	case salt.SHA256, salt.SHA512:
		opts.Rounds = c.SHARounds
	}
	return opts
}

func (c HashingConfig) managerOptions() hashing.ManagerOptions {
	return hashing.ManagerOptions{
		Default:      hashing.DriverName(c.DefaultDriver),
		Bcrypt:       hashing.BcryptOptions{Cost: c.BcryptCost},
		SHA256Crypt:  hashing.CryptOptions{Scheme: salt.SHA256, Rounds: c.SHA256Rounds},
		SHA512Crypt:  hashing.CryptOptions{Scheme: salt.SHA512, Rounds: c.SHA512Rounds},
		SaltedDigest: hashing.SaltedDigestOptions{Algorithm: hashing.Algorithm(c.SaltedDigestAlgorithm), SaltLength: c.SaltedDigestSaltLength},
	}
}
