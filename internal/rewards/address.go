package rewards

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/sha3"
)

const addressHexLen = 40

// ValidAddress reports whether s is a syntactically valid EVM payout
// address: 0x-prefixed, 40 hex characters, and when mixed-case, a correct
// EIP-55 checksum. All-lowercase and all-uppercase forms are accepted
// without a checksum check.
func ValidAddress(s string) bool {
	if len(s) != addressHexLen+2 || !strings.HasPrefix(s, "0x") {
		return false
	}
	body := s[2:]
	if _, err := hex.DecodeString(body); err != nil {
		return false
	}

	lower := strings.ToLower(body)
	if body == lower || body == strings.ToUpper(body) {
		return true
	}
	return checksumAddress(lower) == body
}

// checksumAddress returns the EIP-55 mixed-case form of a lowercase hex
// address body (no 0x prefix)
func checksumAddress(lower string) string {
	hash := sha3.NewLegacyKeccak256()
	hash.Write([]byte(lower))
	digest := hash.Sum(nil)

	out := []byte(lower)
	for i, c := range out {
		if c < 'a' || c > 'f' {
			continue
		}
		nibble := digest[i/2]
		if i%2 == 0 {
			nibble >>= 4
		}
		if nibble&0x0f >= 8 {
			out[i] = c - ('a' - 'A')
		}
	}
	return string(out)
}
