package hashing

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/GehirnInc/crypt"
	"github.com/GehirnInc/crypt/md5_crypt"
	"github.com/GehirnInc/crypt/sha256_crypt"
	"github.com/GehirnInc/crypt/sha512_crypt"

	"github.com/hasbyte1/go-crypt-utils/salt"
)

// Crypt computes the crypt(3) hash of password.  setting is either a salt
// produced by [salt.Forge] or a complete hash, whose leading salt is reused;
// the result is the same as the C library's crypt for the schemes below.
//
//	hashing.Crypt("rasmuslerdorf", "$1$rasmusle$")
//	// "$1$rasmusle$rISCgZzpwk3UhDidwXvin0", nil
//
// Supported: MD5 ("$1$"), Blowfish ("$2a$", "$2b$", "$2y$"), SHA-256 ("$5$")
// and SHA-512 ("$6$").  Standard and extended DES settings are recognised but
// return [ErrUnsupportedScheme].  Anything else is [ErrInvalidHash].
func Crypt(password, setting string) (string, error) {
	cs, err := parseSetting(setting)
	if err != nil {
		return "", err
	}
	return cs.hash(password)
}

// ValidateCrypt reports whether password produces hashed.  The hash is
// recomputed with hashed as the setting and compared in constant time.
func ValidateCrypt(password, hashed string) (bool, error) {
	got, err := Crypt(password, hashed)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(hashed)) == 1, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Settings
// ──────────────────────────────────────────────────────────────────────────────

// cryptSetting is the parsed salt part of a crypt(3) setting or hash.
type cryptSetting struct {
	scheme salt.Scheme
	prefix string

	// rounds is the work factor: SHA rounds, bcrypt log2 cost, or the fixed
	// MD5-crypt count.  roundsGiven reports a "rounds=" segment.
	rounds      int
	roundsGiven bool

	body string
}

// parseSetting reads the scheme prefix, work factor and salt body.  For
// well-formed settings it agrees with the C library: MD5 and SHA bodies end
// at the next "$" and are truncated to 8 and 16 characters, SHA rounds are
// clamped, and a bcrypt setting must carry a valid cost and a full
// 22-character salt.  It is stricter than glibc on one point: a "rounds="
// segment that is not decimal digits ended by "$" is [ErrInvalidHash],
// where glibc would read the text as salt.
func parseSetting(setting string) (cryptSetting, error) {
	switch {
	case setting == "":
		return cryptSetting{}, fmt.Errorf("%w: empty setting", ErrInvalidHash)

	case strings.HasPrefix(setting, md5_crypt.MagicPrefix):
		return cryptSetting{
			scheme: salt.MD5,
			prefix: md5_crypt.MagicPrefix,
			rounds: md5_crypt.RoundsDefault,
			body:   cutBody(setting[len(md5_crypt.MagicPrefix):], md5_crypt.SaltLenMax),
		}, nil

	case strings.HasPrefix(setting, "$2a$"),
		strings.HasPrefix(setting, "$2b$"),
		strings.HasPrefix(setting, "$2y$"):
		return parseBlowfishSetting(setting)

	case strings.HasPrefix(setting, sha256_crypt.MagicPrefix):
		return parseSHASetting(salt.SHA256, sha256_crypt.MagicPrefix, setting)

	case strings.HasPrefix(setting, sha512_crypt.MagicPrefix):
		return parseSHASetting(salt.SHA512, sha512_crypt.MagicPrefix, setting)

	case strings.HasPrefix(setting, "_"):
		return cryptSetting{}, fmt.Errorf("%w: %s", ErrUnsupportedScheme, salt.ExtDES)
	}

	if ok, _ := salt.MatchStdDES(setting[:min(2, len(setting))]); ok {
		return cryptSetting{}, fmt.Errorf("%w: %s", ErrUnsupportedScheme, salt.StdDES)
	}
	return cryptSetting{}, fmt.Errorf("%w: unrecognised crypt setting", ErrInvalidHash)
}

func parseBlowfishSetting(setting string) (cryptSetting, error) {
	const head = len("$2a$07$")
	f, _ := salt.FormatOf(salt.Blowfish)
	if len(setting) < head+f.BodyLen || setting[head-1] != '$' {
		return cryptSetting{}, fmt.Errorf("%w: truncated bcrypt setting", ErrInvalidHash)
	}
	digits := setting[4:6]
	cost := int(digits[0]-'0')*10 + int(digits[1]-'0')
	if !isDigit(digits[0]) || !isDigit(digits[1]) || cost < f.CostMin || cost > f.CostMax {
		return cryptSetting{}, fmt.Errorf("%w: bcrypt cost %q", ErrInvalidHash, digits)
	}
	body := setting[head : head+f.BodyLen]
	for i := 0; i < len(body); i++ {
		if strings.IndexByte(salt.Alphabet, body[i]) < 0 {
			return cryptSetting{}, fmt.Errorf("%w: bcrypt salt %q", ErrInvalidHash, body)
		}
	}
	return cryptSetting{
		scheme:      salt.Blowfish,
		prefix:      setting[:4],
		rounds:      cost,
		roundsGiven: true,
		body:        body,
	}, nil
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func parseSHASetting(scheme salt.Scheme, prefix, setting string) (cryptSetting, error) {
	f, _ := salt.FormatOf(scheme)
	cs := cryptSetting{scheme: scheme, prefix: prefix, rounds: f.CostDefault}
	rest := setting[len(prefix):]
	if digits, ok := strings.CutPrefix(rest, "rounds="); ok {
		end := strings.IndexByte(digits, '$')
		if end < 1 {
			return cryptSetting{}, fmt.Errorf("%w: malformed rounds segment", ErrInvalidHash)
		}
		n, err := strconv.ParseUint(digits[:end], 10, 64)
		switch {
		case errors.Is(err, strconv.ErrRange):
			n = uint64(f.CostMax)
		case err != nil:
			return cryptSetting{}, fmt.Errorf("%w: rounds %q", ErrInvalidHash, digits[:end])
		}
		cs.rounds = salt.ClampSHARounds(int(min(n, uint64(f.CostMax))))
		cs.roundsGiven = true
		rest = digits[end+1:]
	}
	cs.body = cutBody(rest, f.BodyLen)
	return cs, nil
}

// cutBody returns s up to the first "$", at most limit bytes long.
func cutBody(s string, limit int) string {
	if i := strings.IndexByte(s, '$'); i >= 0 {
		s = s[:i]
	}
	if len(s) > limit {
		s = s[:limit]
	}
	return s
}

// String renders the canonical setting without a trailing "$", the form the
// crypt implementations expect.
func (cs cryptSetting) String() string {
	switch cs.scheme {
	case salt.Blowfish:
		return fmt.Sprintf("%s%02d$%s", cs.prefix, cs.rounds, cs.body)
	case salt.SHA256, salt.SHA512:
		if cs.roundsGiven {
			return cs.prefix + "rounds=" + strconv.Itoa(cs.rounds) + "$" + cs.body
		}
	}
	return cs.prefix + cs.body
}

func (cs cryptSetting) hash(password string) (string, error) {
	var c crypt.Crypter
	switch cs.scheme {
	case salt.Blowfish:
		return blowfishCrypt([]byte(password), cs.prefix, cs.rounds, cs.body)
	case salt.MD5:
		c = md5_crypt.New()
	case salt.SHA256:
		c = sha256_crypt.New()
	case salt.SHA512:
		c = sha512_crypt.New()
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedScheme, cs.scheme)
	}
	out, err := c.Generate([]byte(password), []byte(cs.String()))
	if err != nil {
		return "", fmt.Errorf("hashing: %s: %w", cs.scheme, err)
	}
	return out, nil
}
