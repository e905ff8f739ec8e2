package cli

import (
	"github.com/spella/wish/params"
	"github.com/spella/wish/pkg/crypto"
)

type ConfigShowCmd struct {
	app *App
}

func (x *ConfigShowCmd) Execute(args []string) error {
	cfg := x.app.config()

	x.app.header("Config (%s)", x.app.configPath())
	addr := cfg.ContractAddress
	if checksummed, err := crypto.ChecksumAddress(addr); err == nil {
		addr = checksummed
	} else if addr == "" {
		addr = "(not set)"
	}
	x.app.field("contract_address", addr)
	x.app.field("rpc_url", cfg.RPCURL)
	x.app.field("chain_id", cfg.ChainID)
	x.app.field("fee_bps", cfg.FeeBps)
	return nil
}

type ConfigSetCmd struct {
	Contract *string `long:"contract" description:"Contract address (0x + 40 hex chars)"`
	RPC      *string `long:"rpc" description:"RPC endpoint URL"`
	ChainID  *int64  `long:"chain-id" description:"Chain id"`
	FeeBps   *int64  `long:"fee-bps" description:"Fee in basis points (0-350)"`

	app *App
}

// Execute edits the file contents only; SPELLA_* overrides are never
// written back.
func (x *ConfigSetCmd) Execute(args []string) error {
	path := x.app.configPath()
	cfg := params.Load(path)

	if x.Contract != nil {
		cfg.ContractAddress = *x.Contract
	}
	if x.RPC != nil {
		cfg.RPCURL = *x.RPC
	}
	if x.ChainID != nil {
		cfg.ChainID = *x.ChainID
	}
	if x.FeeBps != nil {
		cfg.FeeBps = *x.FeeBps
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := params.Save(cfg, path); err != nil {
		return err
	}
	x.app.logger.Infow("config_saved", "path", path)
	x.app.ok("saved %s", path)
	return nil
}
