// file: pkg/crypto/fingerprint.go
package crypto

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"golang.org/x/crypto/sha3"

	"github.com/spella/wish/pkg/errs"
)

// FingerprintLength is the digest width in bytes.
const FingerprintLength = 32

// Fingerprint is the 32-byte content hash the contract stores in place of
// a spell's title and category strings.
type Fingerprint [FingerprintLength]byte

// FingerprintOf returns keccak256(utf8(text)), the same digest Solidity's
// keccak256(bytes(text)) produces.
func FingerprintOf(text string) Fingerprint {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(text))
	var fp Fingerprint
	copy(fp[:], h.Sum(nil))
	return fp
}

// Hex returns "0x" followed by exactly 64 lowercase hex characters.
func (f Fingerprint) Hex() string {
	return hexutil.Encode(f[:])
}

func (f Fingerprint) String() string { return f.Hex() }

// ParseFingerprint parses the Hex form. The "0x" prefix is required and the
// body must be exactly 64 hex characters.
func ParseFingerprint(s string) (Fingerprint, error) {
	var fp Fingerprint
	if !strings.HasPrefix(s, "0x") || len(s) != 2+2*FingerprintLength {
		return fp, fmt.Errorf("%w: fingerprint %q must be 0x followed by %d hex chars", errs.ErrInvalidArgument, s, 2*FingerprintLength)
	}
	raw, err := hexutil.Decode(strings.ToLower(s))
	if err != nil {
		return fp, fmt.Errorf("%w: fingerprint %q: %v", errs.ErrInvalidArgument, s, err)
	}
	copy(fp[:], raw)
	return fp, nil
}
