package cli

import (
	"fmt"

	"github.com/spella/wish/pkg/fees"
	"github.com/spella/wish/pkg/spell"
)

type ListCmd struct {
	Seller   string `short:"s" long:"seller" required:"yes" description:"Seller address (0x + 40 hex chars)"`
	Category string `short:"k" long:"category" description:"Category shared by every listed spell"`
	Price    string `short:"p" long:"price" required:"yes" description:"Price in the token's smallest unit"`
	Block    uint64 `long:"block" description:"Block marker stored as the creation time (default: current unix time)"`
	Bps      *int64 `short:"b" long:"bps" description:"Fee used for the proceeds preview (default: configured fee_bps)"`
	Args     struct {
		Titles []string `positional-arg-name:"TITLE" description:"One spell is listed per title (at most 20)"`
	} `positional-args:"yes" required:"yes"`

	app *App
}

func (x *ListCmd) Execute(args []string) error {
	price, err := fees.ParsePrice(x.Price)
	if err != nil {
		return err
	}
	sim, err := x.app.simulator(x.Bps)
	if err != nil {
		return err
	}

	reqs := make([]spell.ListRequest, 0, len(x.Args.Titles))
	for _, title := range x.Args.Titles {
		reqs = append(reqs, spell.ListRequest{
			Seller:      x.Seller,
			Title:       title,
			Category:    x.Category,
			Price:       price,
			BlockMarker: x.Block,
		})
	}
	spells, err := sim.ListBatch(reqs)
	if err != nil {
		return err
	}

	split, err := fees.Compute(price, sim.FeeBps)
	if err != nil {
		return err
	}

	for i, sp := range spells {
		x.app.header("Spell #%d", sp.ID)
		x.app.field("title", x.Args.Titles[i])
		printSpell(x.app, sp)
		x.app.field("seller receives", fmt.Sprintf("%s (fee %s at %d bps)", split.SellerReceives, split.Fee, split.FeeBps))
	}
	x.app.logger.Infow("spells_listed", "count", len(spells), "remaining", sim.Store.Remaining())
	x.app.ok("listed %d spell(s); active ids %v", len(spells), sim.Store.ActiveIDs())
	return nil
}

func printSpell(a *App, sp spell.Spell) {
	a.field("seller", sp.Seller.Hex())
	a.field("title hash", sp.TitleHash.Hex())
	a.field("category hash", sp.CategoryHash.Hex())
	a.field("price", sp.Price)
	a.field("block", sp.CreatedAt)
	a.field("active", sp.Active)
}

type BuyCmd struct {
	Seller   string `short:"s" long:"seller" required:"yes" description:"Seller address (0x + 40 hex chars)"`
	Title    string `short:"t" long:"title" required:"yes" description:"Spell title"`
	Category string `short:"k" long:"category" description:"Spell category"`
	Price    string `short:"p" long:"price" required:"yes" description:"Price in the token's smallest unit"`
	Block    uint64 `long:"block" description:"Block marker stored as the creation time (default: current unix time)"`
	Bps      *int64 `short:"b" long:"bps" description:"Fee in basis points (default: configured fee_bps)"`

	app *App
}

func (x *BuyCmd) Execute(args []string) error {
	price, err := fees.ParsePrice(x.Price)
	if err != nil {
		return err
	}
	sim, err := x.app.simulator(x.Bps)
	if err != nil {
		return err
	}

	receipt, err := sim.Buy(spell.ListRequest{
		Seller:      x.Seller,
		Title:       x.Title,
		Category:    x.Category,
		Price:       price,
		BlockMarker: x.Block,
	})
	if err != nil {
		return err
	}
	x.app.logger.Infow("spell_bought", "id", receipt.Spell.ID, "fee", receipt.Split.Fee.String())

	x.app.header("Purchase of spell #%d", receipt.Spell.ID)
	x.app.field("title", x.Title)
	printSpell(x.app, receipt.Spell)
	x.app.field(fmt.Sprintf("fee (%d bps)", receipt.Split.FeeBps), receipt.Split.Fee)
	x.app.field("fee recipient", receipt.FeeRecipient)
	x.app.field("seller receives", receipt.Split.SellerReceives)
	return nil
}

// simulator returns a Simulator over a fresh store; nothing outlives the
// command.
func (a *App) simulator(bps *int64) (*spell.Simulator, error) {
	store := spell.NewStore()
	store.Logger = a.logger
	return spell.NewSimulator(store, a.feeBps(bps), a.Clock)
}
