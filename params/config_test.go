package params

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spella/wish/pkg/errs"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "absent.json"))
	if cfg != Default() {
		t.Errorf("Load(missing) = %+v, want %+v", cfg, Default())
	}
	if cfg.ChainID != 1 || cfg.FeeBps != 12 {
		t.Errorf("defaults = chain %d fee %d, want chain 1 fee 12", cfg.ChainID, cfg.FeeBps)
	}
}

func TestLoad_MalformedFileYieldsDefaults(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"truncated", `{"contract_address": "0x`},
		{"wrong type", `{"chain_id": "five", "fee_bps": 40}`},
		{"not json", "chain_id=5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "cfg.json")
			writeFile(t, path, tt.content)
			if cfg := Load(path); cfg != Default() {
				t.Errorf("Load() = %+v, want defaults", cfg)
			}
		})
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	writeFile(t, path, `{"rpc_url": "http://localhost:8545"}`)

	cfg := Load(path)
	if cfg.RPCURL != "http://localhost:8545" {
		t.Errorf("RPCURL = %q", cfg.RPCURL)
	}
	if cfg.ChainID != 1 || cfg.FeeBps != 12 {
		t.Errorf("missing fields did not keep defaults: %+v", cfg)
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	want := Config{
		ContractAddress: ZeroAddress,
		RPCURL:          "https://rpc.example.org",
		ChainID:         11155111,
		FeeBps:          250,
	}

	if err := Save(want, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got := Load(path); got != want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}

	// exactly the four fields, pretty-printed
	data, _ := os.ReadFile(path)
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("saved file is not JSON: %v", err)
	}
	if len(raw) != 4 {
		t.Errorf("saved %d fields, want 4: %s", len(raw), data)
	}
	if data[0] != '{' || data[1] != '\n' {
		t.Errorf("saved file is not pretty-printed: %q", data[:2])
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"valid address", func(c *Config) { c.ContractAddress = ZeroAddress }, false},
		{"short address", func(c *Config) { c.ContractAddress = "0x123" }, true},
		{"fee above max", func(c *Config) { c.FeeBps = MaxFeeBps + 1 }, true},
		{"fee at max", func(c *Config) { c.FeeBps = MaxFeeBps }, false},
		{"negative fee", func(c *Config) { c.FeeBps = -1 }, true},
		{"zero chain", func(c *Config) { c.ChainID = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errs.ErrInvalidArgument) {
				t.Errorf("Validate() err = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	writeFile(t, envPath, "SPELLA_RPC_URL=http://from-dotenv\nSPELLA_CHAIN_ID=5\n")

	t.Setenv("SPELLA_RPC_URL", "http://from-env")
	t.Setenv("SPELLA_FEE_BPS", "99")
	t.Setenv("SPELLA_CHAIN_ID", "")

	cfg := ApplyEnv(Default(), envPath)

	// godotenv.Load does not override variables already present
	if cfg.RPCURL != "http://from-env" {
		t.Errorf("RPCURL = %q, want env value", cfg.RPCURL)
	}
	if cfg.FeeBps != 99 {
		t.Errorf("FeeBps = %d, want 99", cfg.FeeBps)
	}
	if cfg.ChainID != 1 {
		t.Errorf("ChainID = %d, want default 1 (empty env keeps it)", cfg.ChainID)
	}
}

func TestConfigPath(t *testing.T) {
	t.Setenv("WISH_CONFIG", "")
	if got := ConfigPath(""); got != DefaultConfigPath {
		t.Errorf("ConfigPath() = %q, want %q", got, DefaultConfigPath)
	}

	t.Setenv("WISH_CONFIG", "/etc/wish.json")
	if got := ConfigPath(""); got != "/etc/wish.json" {
		t.Errorf("ConfigPath() = %q, want env value", got)
	}
	if got := ConfigPath("local.json"); got != "local.json" {
		t.Errorf("ConfigPath(flag) = %q, want flag value", got)
	}
}

func TestPlatformSalt(t *testing.T) {
	a := PlatformSalt()
	a.SetInt64(0)
	if PlatformSalt().Sign() == 0 {
		t.Error("PlatformSalt() shares state between calls")
	}
	if got := len(Constants()); got != 10 {
		t.Errorf("len(Constants()) = %d, want 10", got)
	}
}
