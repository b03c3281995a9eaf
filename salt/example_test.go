package salt_test

import (
	"fmt"
	"log"
	"strings"

	"github.com/hasbyte1/go-crypt-utils/salt"
)

// ExampleForge shows the shape of a freshly generated SHA-512 salt.  The
// body is random, so only the structure is printed.
func ExampleForge() {
	s, err := salt.Forge(salt.SHA512, salt.Options{Rounds: 10000})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(strings.HasPrefix(s, "$6$rounds=10000$"), len(s))
	// Output: true 33
}

// ExampleForge_clamped demonstrates that SHA rounds below the minimum are
// raised to 1000 instead of being rejected.
func ExampleForge_clamped() {
	s, _ := salt.Forge(salt.SHA256, salt.Options{Rounds: 1})
	fmt.Println(s[:len("$5$rounds=1000$")])
	// Output: $5$rounds=1000$
}

func ExampleEncodeRounds() {
	token, _ := salt.EncodeRounds(725)
	fmt.Println(token)
	// Output: J9..
}

func ExampleIdentify() {
	for _, s := range []string{"rl", "_J9..rasm", "$1$rasmusle$", "$2a$07$usesomesillystringfors$", "plain"} {
		scheme, _ := salt.Identify(s)
		fmt.Println(scheme)
	}
	// Output:
	// std_des
	// ext_des
	// md5
	// blowfish
	// unknown
}

func ExampleInspect() {
	info, _ := salt.Inspect("$6$rounds=20000$usesomesillystri$")
	fmt.Println(info.Scheme, info.Cost, info.Body)
	// Output: sha512 20000 usesomesillystri
}

func ExampleMatch() {
	ok, _ := salt.Match("$5$rounds=5000$usesomesillystri$", salt.SHA256)
	fmt.Println(ok)
	// Output: true
}
