package hashing_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/hasbyte1/go-crypt-utils/hashing"
	"github.com/hasbyte1/go-crypt-utils/salt"
)

func TestNewCryptHasher_Drivers(t *testing.T) {
	for scheme, want := range map[salt.Scheme]hashing.DriverName{
		salt.MD5:    hashing.DriverMD5Crypt,
		salt.SHA256: hashing.DriverSHA256Crypt,
		salt.SHA512: hashing.DriverSHA512Crypt,
	} {
		h, err := hashing.NewCryptHasher(hashing.CryptOptions{Scheme: scheme})
		if err != nil {
			t.Errorf("%s: %v", scheme, err)
			continue
		}
		if h.Driver() != want || h.Scheme() != scheme {
			t.Errorf("%s: Driver() = %q, Scheme() = %s", scheme, h.Driver(), h.Scheme())
		}
	}
}

func TestNewCryptHasher_InvalidOptions(t *testing.T) {
	for _, opts := range []hashing.CryptOptions{
		{Scheme: salt.MD5, Rounds: 5000},
		{Scheme: salt.SHA256, Rounds: 999},
		{Scheme: salt.SHA512, Rounds: 1_000_000_000},
		{Scheme: salt.SHA512, Rounds: -1},
		{Scheme: salt.Blowfish},
		{Scheme: salt.StdDES},
		{Scheme: salt.Generic},
		{Scheme: salt.Unknown},
	} {
		if _, err := hashing.NewCryptHasher(opts); !errors.Is(err, hashing.ErrInvalidOption) {
			t.Errorf("%+v: expected ErrInvalidOption, got %v", opts, err)
		}
	}
	_, err := hashing.NewCryptHasher(hashing.CryptOptions{Scheme: salt.ExtDES})
	if !errors.Is(err, hashing.ErrUnsupportedScheme) {
		t.Errorf("ext_des: expected ErrUnsupportedScheme in chain, got %v", err)
	}
}

func TestDefaultCryptOptions(t *testing.T) {
	opts := hashing.DefaultCryptOptions()
	if opts.Scheme != salt.SHA512 || opts.Rounds != 0 {
		t.Errorf("DefaultCryptOptions() = %+v", opts)
	}
}

func TestCryptHasher_MakeCheck(t *testing.T) {
	cases := []struct {
		opts   hashing.CryptOptions
		prefix string
	}{
		{hashing.CryptOptions{Scheme: salt.MD5}, "$1$"},
		{hashing.CryptOptions{Scheme: salt.SHA256}, "$5$"},
		{hashing.CryptOptions{Scheme: salt.SHA256, Rounds: 1000}, "$5$rounds=1000$"},
		{hashing.CryptOptions{Scheme: salt.SHA512, Rounds: 2000}, "$6$rounds=2000$"},
	}
	for _, tc := range cases {
		h, err := hashing.NewCryptHasher(tc.opts)
		if err != nil {
			t.Fatalf("%+v: %v", tc.opts, err)
		}
		hash, err := h.Make("tr0ub4dor&3")
		if err != nil {
			t.Fatalf("%+v: Make: %v", tc.opts, err)
		}
		if !strings.HasPrefix(hash, tc.prefix) {
			t.Errorf("%+v: hash %q lacks prefix %q", tc.opts, hash, tc.prefix)
		}
		if d, ok := hashing.DetectDriver(hash); !ok || d != h.Driver() {
			t.Errorf("DetectDriver(%q) = %q, %v", hash, d, ok)
		}
		if ok, err := h.Check("tr0ub4dor&3", hash); err != nil || !ok {
			t.Errorf("%+v: Check(correct) = %v, %v", tc.opts, ok, err)
		}
		if ok, err := h.Check("Tr0ub4dor&3", hash); err != nil || ok {
			t.Errorf("%+v: Check(wrong) = %v, %v", tc.opts, ok, err)
		}
	}
}

func TestCryptHasher_CheckKnownHash(t *testing.T) {
	h, _ := hashing.NewCryptHasher(hashing.DefaultCryptOptions())
	hash := "$6$usesomesillystri$D4IrlXatmP7rx3P3InaxBeoomnAihCKRVQP22JZ6EY47Wc6BkroIuUUBOov1i.S5KPgErtP/EN5mcO.ChWQW21"
	if ok, err := h.Check("rasmuslerdorf", hash); err != nil || !ok {
		t.Errorf("Check = %v, %v", ok, err)
	}
}

func TestCryptHasher_AlgorithmMismatch(t *testing.T) {
	h, _ := hashing.NewCryptHasher(hashing.DefaultCryptOptions())
	for _, hash := range []string{
		"$5$usesomesillystri$KqJWpanXZHKq2BOB43TSaYhEWsQ1Lr5QNyPCDH/Tp.6",
		"$1$rasmusle$rISCgZzpwk3UhDidwXvin0",
		"$2a$07$usesomesillystringfore2uDLvp1Ii2e./U9C8sBjqp8I90dH6hi",
		"rl.3StKT.4T8M",
	} {
		if _, err := h.Check("rasmuslerdorf", hash); !errors.Is(err, hashing.ErrAlgorithmMismatch) {
			t.Errorf("Check(%q): expected ErrAlgorithmMismatch, got %v", hash, err)
		}
	}
}

func TestCryptHasher_NeedsRehash(t *testing.T) {
	def, _ := hashing.NewCryptHasher(hashing.CryptOptions{Scheme: salt.SHA512})
	slow, _ := hashing.NewCryptHasher(hashing.CryptOptions{Scheme: salt.SHA512, Rounds: 10000})

	cases := []struct {
		h    *hashing.CryptHasher
		hash string
		want bool
	}{
		{def, "$6$abcdefgh$x", false},
		{def, "$6$rounds=5000$abcdefgh$x", false},
		{def, "$6$rounds=10000$abcdefgh$x", true},
		{slow, "$6$abcdefgh$x", true},
		{slow, "$6$rounds=10000$abcdefgh$x", false},
	}
	for _, tc := range cases {
		got, err := tc.h.NeedsRehash(tc.hash)
		if err != nil {
			t.Errorf("NeedsRehash(%q): %v", tc.hash, err)
			continue
		}
		if got != tc.want {
			t.Errorf("NeedsRehash(%q) = %v, want %v", tc.hash, got, tc.want)
		}
	}

	md5H, _ := hashing.NewCryptHasher(hashing.CryptOptions{Scheme: salt.MD5})
	if needs, err := md5H.NeedsRehash("$1$rasmusle$rISCgZzpwk3UhDidwXvin0"); err != nil || needs {
		t.Errorf("md5 NeedsRehash = %v, %v; want false", needs, err)
	}
}

func TestCryptHasher_Info(t *testing.T) {
	h, _ := hashing.NewCryptHasher(hashing.CryptOptions{Scheme: salt.SHA256})
	info, err := h.Info("$5$rounds=5000$usesomesillystri$KqJWpanXZHKq2BOB43TSaYhEWsQ1Lr5QNyPCDH/Tp.6")
	if err != nil {
		t.Fatalf("Info: %v", err)
	}
	if info.Driver != hashing.DriverSHA256Crypt {
		t.Errorf("Driver = %q", info.Driver)
	}
	if info.Params["rounds"] != 5000 || info.Params["salt"] != "usesomesillystri" {
		t.Errorf("Params = %v", info.Params)
	}
}
