// file: pkg/crypto/address.go
package crypto

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/spella/wish/pkg/errs"
)

// IsValidAddress reports whether s is "0x" followed by exactly 40 hex
// characters, in any case. Checksum casing is not enforced.
func IsValidAddress(s string) bool {
	// common.IsHexAddress also accepts the unprefixed form; the contract
	// tooling never emits it, so require the prefix here.
	if !strings.HasPrefix(s, "0x") {
		return false
	}
	return common.IsHexAddress(s)
}

// ParseAddress converts s to a 20-byte address or fails with
// ErrInvalidArgument.
func ParseAddress(s string) (common.Address, error) {
	if !IsValidAddress(s) {
		return common.Address{}, fmt.Errorf("%w: malformed address %q", errs.ErrInvalidArgument, s)
	}
	return common.HexToAddress(s), nil
}

// ChecksumAddress returns the EIP-55 checksummed form of s, e.g. 0xAbCd...
func ChecksumAddress(s string) (string, error) {
	addr, err := ParseAddress(s)
	if err != nil {
		return "", err
	}
	return addr.Hex(), nil
}
