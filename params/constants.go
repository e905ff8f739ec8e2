package params

import "math/big"

// Contract constants. These mirror the values compiled into Spella.sol and
// must change together with it.
const (
	BpsBase        = 10000
	MaxFeeBps      = 350
	MaxSpells      = 128
	MaxBatchList   = 20
	MaxBatchDelist = 20

	HexPrefix   = "0x"
	ZeroAddress = "0x0000000000000000000000000000000000000000"

	// Deployment addresses as published with the contract. Each carries 39 hex
	// digits, so they do not pass IsValidAddress; they are reported verbatim.
	VaultAddress    = "0x1b3E6f9A2c5D8e0F4a7B9c1D3e5F7A0b2C4d6E8"
	TreasuryAddress = "0x4c7A0d2E5f8B1c3D6e9F2a5B8d0C3e6F9A1b4D7"
	KeeperAddress   = "0x8F2a5C1e4B7d0A3f6C9e2B5d8F1a4C7E0b3D6f9"

	platformSaltHex = "3D8e1F4a7C0b2E5d9F3A6c8E1b4D7f0A3C6e9B2"
)

// PlatformSalt returns the contract's platform salt. A fresh value is
// returned on every call so callers may mutate it.
func PlatformSalt() *big.Int {
	salt, _ := new(big.Int).SetString(platformSaltHex, 16)
	return salt
}

// Constant is a named contract constant, used for the constants dump.
type Constant struct {
	Name  string
	Value string
}

// Constants lists every contract constant in a stable order.
func Constants() []Constant {
	return []Constant{
		{"BPS_BASE", big.NewInt(BpsBase).String()},
		{"MAX_FEE_BPS", big.NewInt(MaxFeeBps).String()},
		{"MAX_SPELLS", big.NewInt(MaxSpells).String()},
		{"MAX_BATCH_LIST", big.NewInt(MaxBatchList).String()},
		{"MAX_BATCH_DELIST", big.NewInt(MaxBatchDelist).String()},
		{"PLATFORM_SALT", HexPrefix + platformSaltHex},
		{"VAULT_ADDRESS", VaultAddress},
		{"TREASURY_ADDRESS", TreasuryAddress},
		{"KEEPER_ADDRESS", KeeperAddress},
		{"ZERO_ADDRESS", ZeroAddress},
	}
}
