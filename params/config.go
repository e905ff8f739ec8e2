package params

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/spella/wish/pkg/crypto"
	"github.com/spella/wish/pkg/errs"
)

// DefaultConfigPath is used when neither --config nor WISH_CONFIG is set.
const DefaultConfigPath = "spella_config.json"

type Config struct {
	ContractAddress string `json:"contract_address"`
	RPCURL          string `json:"rpc_url"`
	ChainID         int64  `json:"chain_id"`
	FeeBps          int64  `json:"fee_bps"`
}

func Default() Config {
	return Config{
		ContractAddress: "",
		RPCURL:          "",
		ChainID:         1,
		FeeBps:          12,
	}
}

// Load reads the config file at path. Loading is best-effort: a missing or
// malformed file yields Default(), and fields absent from the file keep
// their default values.
func Load(path string) Config {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	loaded := Default()
	if err := json.Unmarshal(data, &loaded); err != nil {
		return cfg
	}
	return loaded
}

// Save overwrites path with cfg, pretty-printed.
func Save(cfg Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

// Validate checks the fields that have a defined shape. An empty contract
// address means "not configured" and is accepted.
func (c Config) Validate() error {
	if c.ContractAddress != "" && !crypto.IsValidAddress(c.ContractAddress) {
		return fmt.Errorf("%w: malformed contract address %q", errs.ErrInvalidArgument, c.ContractAddress)
	}
	if c.FeeBps < 0 || c.FeeBps > MaxFeeBps {
		return fmt.Errorf("%w: fee bps %d outside [0, %d]", errs.ErrInvalidArgument, c.FeeBps, MaxFeeBps)
	}
	if c.ChainID <= 0 {
		return fmt.Errorf("%w: chain id must be positive, got %d", errs.ErrInvalidArgument, c.ChainID)
	}
	return nil
}

// ApplyEnv overlays environment variables onto cfg.
// Priority: ENV > .env file > config file > defaults
func ApplyEnv(cfg Config, envPath string) Config {
	// Try to load .env file (optional - won't fail if not exists)
	if envPath != "" {
		_ = godotenv.Load(envPath)
	} else {
		_ = godotenv.Load()
	}

	if addr := os.Getenv("SPELLA_CONTRACT_ADDRESS"); addr != "" {
		cfg.ContractAddress = addr
	}
	if url := os.Getenv("SPELLA_RPC_URL"); url != "" {
		cfg.RPCURL = url
	}
	if chain := os.Getenv("SPELLA_CHAIN_ID"); chain != "" {
		if id, err := strconv.ParseInt(chain, 10, 64); err == nil {
			cfg.ChainID = id
		}
	}
	if bps := os.Getenv("SPELLA_FEE_BPS"); bps != "" {
		if n, err := strconv.ParseInt(bps, 10, 64); err == nil {
			cfg.FeeBps = n
		}
	}

	return cfg
}

// ConfigPath resolves the config file location: the explicit flag value,
// then WISH_CONFIG, then DefaultConfigPath.
func ConfigPath(flagValue string) string {
	return getEnv("WISH_CONFIG", flagValue, DefaultConfigPath)
}

func getEnv(key, override, defaultValue string) string {
	if override != "" {
		return override
	}
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
