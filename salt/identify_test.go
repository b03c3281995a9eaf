package salt_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hasbyte1/go-crypt-utils/salt"
)

func TestIdentify(t *testing.T) {
	cases := []struct {
		salt string
		want salt.Scheme
	}{
		{"rl", salt.StdDES},
		{"_J9..rasm", salt.ExtDES},
		{"$1$rasmusle$", salt.MD5},
		{"$2a$07$usesomesillystringfors$", salt.Blowfish},
		{"$2a$07$usesomesillystringfors", salt.Blowfish},
		{"$5$rounds=5000$usesomesillystri$", salt.SHA256},
		{"$6$rounds=5000$usesomesillystri$", salt.SHA512},
		{"$6$usesomesillystri$", salt.SHA512},
		{"hello", salt.Unknown},
		{"_J9..ras", salt.Unknown},
		{"$2y$07$usesomesillystringfors$", salt.Unknown},
	}
	for _, tc := range cases {
		got, err := salt.Identify(tc.salt)
		if err != nil {
			t.Errorf("Identify(%q): unexpected error %v", tc.salt, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Identify(%q) = %s, want %s", tc.salt, got, tc.want)
		}
	}
}

func TestIdentify_Empty(t *testing.T) {
	got, err := salt.Identify("")
	if !errors.Is(err, salt.ErrInvalidArgument) || got != salt.Unknown {
		t.Errorf("Identify(\"\") = %s, %v; want unknown, ErrInvalidArgument", got, err)
	}
}

func TestIdentificationOrder(t *testing.T) {
	want := []salt.Scheme{salt.StdDES, salt.ExtDES, salt.MD5, salt.Blowfish, salt.SHA256, salt.SHA512}
	if diff := cmp.Diff(want, salt.IdentificationOrder()); diff != "" {
		t.Errorf("IdentificationOrder mismatch (-want +got):\n%s", diff)
	}

	// The returned slice is a copy.
	order := salt.IdentificationOrder()
	order[0] = salt.SHA512
	if salt.IdentificationOrder()[0] != salt.StdDES {
		t.Error("mutating the returned order changed the package order")
	}
}

func TestIdentify_IsIdempotent(t *testing.T) {
	for _, s := range []string{"rl", "_J9..rasm", "$5$usesomesillystri$", "garbage"} {
		a, _ := salt.Identify(s)
		b, _ := salt.Identify(s)
		if a != b {
			t.Errorf("Identify(%q) returned %s then %s", s, a, b)
		}
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]bool{
		"rl":                    true,
		"_J9..rasm":             true,
		"$1$rasmusle$":          true,
		"$6$usesomesillystri$":  true,
		"not a salt":            false,
		"$6$usesomesillystri":   false,
		"$1$rasmusle$rISCgZzpw": false,
	}
	for s, want := range cases {
		got, err := salt.Validate(s)
		if err != nil {
			t.Errorf("Validate(%q): unexpected error %v", s, err)
			continue
		}
		if got != want {
			t.Errorf("Validate(%q) = %v, want %v", s, got, want)
		}
	}
	if _, err := salt.Validate(""); !errors.Is(err, salt.ErrInvalidArgument) {
		t.Errorf("Validate(\"\"): expected ErrInvalidArgument, got %v", err)
	}
}

func TestValidateScheme(t *testing.T) {
	ok, err := salt.ValidateScheme("$1$rasmusle$", salt.MD5)
	if err != nil || !ok {
		t.Errorf("ValidateScheme(md5) = %v, %v; want true", ok, err)
	}
	ok, _ = salt.ValidateScheme("$1$rasmusle$", salt.SHA256)
	if ok {
		t.Error("an MD5 salt validated as SHA256")
	}
	ok, _ = salt.ValidateScheme("anything", salt.Generic)
	if !ok {
		t.Error("Generic should accept any non-empty salt")
	}
	if _, err := salt.ValidateScheme("rl", salt.Unknown); !errors.Is(err, salt.ErrInvalidScheme) {
		t.Errorf("expected ErrInvalidScheme, got %v", err)
	}
}

func TestInspect(t *testing.T) {
	cases := []struct {
		salt string
		want salt.Info
	}{
		{"rl", salt.Info{Scheme: salt.StdDES, Body: "rl"}},
		{"_J9..rasm", salt.Info{Scheme: salt.ExtDES, Cost: 725, CostEncoded: true, Body: "rasm"}},
		{"$1$rasmusle$", salt.Info{Scheme: salt.MD5, Cost: 1000, Body: "rasmusle"}},
		{"$2a$07$usesomesillystringfors$", salt.Info{Scheme: salt.Blowfish, Cost: 7, CostEncoded: true, Body: "usesomesillystringfors"}},
		{"$5$usesomesillystri$", salt.Info{Scheme: salt.SHA256, Cost: 5000, Body: "usesomesillystri"}},
		{"$6$rounds=10000$usesomesillystri$", salt.Info{Scheme: salt.SHA512, Cost: 10000, CostEncoded: true, Body: "usesomesillystri"}},
		{"$6$rounds=10$usesomesillystri$", salt.Info{Scheme: salt.SHA512, Cost: 1000, CostEncoded: true, Body: "usesomesillystri"}},
		{"$5$rounds=99999999999999999999999$usesomesillystri$", salt.Info{Scheme: salt.SHA256, Cost: 999_999_999, CostEncoded: true, Body: "usesomesillystri"}},
	}
	for _, tc := range cases {
		got, err := salt.Inspect(tc.salt)
		if err != nil {
			t.Errorf("Inspect(%q): %v", tc.salt, err)
			continue
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Inspect(%q) mismatch (-want +got):\n%s", tc.salt, diff)
		}
	}
}

func TestInspect_Unidentified(t *testing.T) {
	for _, s := range []string{"", "hello"} {
		if _, err := salt.Inspect(s); !errors.Is(err, salt.ErrInvalidArgument) {
			t.Errorf("Inspect(%q): expected ErrInvalidArgument, got %v", s, err)
		}
	}
}

func TestInspect_ForgedSalts(t *testing.T) {
	g := newTestGenerator(t, 21)
	cases := []struct {
		scheme salt.Scheme
		opts   salt.Options
		cost   int
	}{
		{salt.ExtDES, salt.Options{Rounds: 4096}, 4096},
		{salt.Blowfish, salt.Options{Cost: 10}, 10},
		{salt.SHA256, salt.Options{Rounds: 20000}, 20000},
		{salt.SHA512, salt.Options{}, 5000},
	}
	for _, tc := range cases {
		s, err := g.Forge(tc.scheme, tc.opts)
		if err != nil {
			t.Fatalf("Forge(%s): %v", tc.scheme, err)
		}
		info, err := salt.Inspect(s)
		if err != nil {
			t.Fatalf("Inspect(%q): %v", s, err)
		}
		if info.Scheme != tc.scheme || info.Cost != tc.cost {
			t.Errorf("Inspect(%q) = %+v, want scheme %s cost %d", s, info, tc.scheme, tc.cost)
		}
	}
}
