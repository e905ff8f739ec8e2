package cli

import (
	"fmt"

	"github.com/spella/wish/pkg/fees"
)

type FeeCmd struct {
	Bps  *int64 `short:"b" long:"bps" description:"Fee in basis points (default: configured fee_bps)"`
	Args struct {
		Price string `positional-arg-name:"PRICE" description:"Price in the token's smallest unit"`
	} `positional-args:"yes" required:"yes"`

	app *App
}

func (x *FeeCmd) Execute(args []string) error {
	price, err := fees.ParsePrice(x.Args.Price)
	if err != nil {
		return err
	}
	bps := x.app.feeBps(x.Bps)

	split, err := fees.Compute(price, bps)
	if err != nil {
		return err
	}
	x.app.logger.Debugw("fee_computed", "price", price.String(), "fee_bps", bps, "fee", split.Fee.String())

	x.app.header("Fee split")
	x.app.field("price", split.Price)
	x.app.field(fmt.Sprintf("fee (%d bps)", split.FeeBps), split.Fee)
	x.app.field("seller receives", split.SellerReceives)
	return nil
}

type BatchFeeCmd struct {
	Bps  *int64 `short:"b" long:"bps" description:"Fee in basis points (default: configured fee_bps)"`
	Args struct {
		Prices string `positional-arg-name:"PRICES" description:"Comma-separated prices, e.g. 100,2500,30000"`
	} `positional-args:"yes" required:"yes"`

	app *App
}

func (x *BatchFeeCmd) Execute(args []string) error {
	prices, err := fees.ParsePriceList(x.Args.Prices)
	if err != nil {
		return err
	}
	bps := x.app.feeBps(x.Bps)

	batch, err := fees.ComputeBatch(prices, bps)
	if err != nil {
		return err
	}
	x.app.logger.Debugw("batch_fee_computed", "count", len(batch.Splits), "fee_bps", bps)

	out := x.app.Out
	x.app.header("Fee split at %d bps", bps)
	fmt.Fprintf(out, "  %-4s %24s %24s %24s\n", "#", "price", "fee", "seller receives")
	for i, s := range batch.Splits {
		fmt.Fprintf(out, "  %-4d %24s %24s %24s\n", i+1, s.Price, s.Fee, s.SellerReceives)
	}
	fmt.Fprintf(out, "  %-4s %24s %24s %24s\n", "sum", batch.TotalPrice, batch.TotalFee, batch.TotalSellerReceives)
	return nil
}
