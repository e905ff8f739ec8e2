package spell

import (
	"fmt"
	"math/big"

	"github.com/spella/wish/params"
	"github.com/spella/wish/pkg/crypto"
	"github.com/spella/wish/pkg/fees"
	"github.com/spella/wish/pkg/util"
)

// ListRequest describes a spell in the human form the CLI accepts: plain
// strings that get fingerprinted and an address that gets validated.
type ListRequest struct {
	Seller      string
	Title       string
	Category    string
	Price       *big.Int
	BlockMarker uint64 // zero means "use the clock"
}

// Receipt is the outcome of a simulated purchase.
type Receipt struct {
	Spell        Spell
	Split        fees.Split
	FeeRecipient string
}

// Simulator drives a Store the way the contract's list/buy entry points
// would, charging FeeBps on every sale.
type Simulator struct {
	Store  *Store
	FeeBps int64
	Clock  util.Clock
}

// NewSimulator validates feeBps up front so a misconfigured fee fails
// before anything is listed.
func NewSimulator(store *Store, feeBps int64, clock util.Clock) (*Simulator, error) {
	if err := fees.ValidateFeeBps(feeBps); err != nil {
		return nil, err
	}
	if clock == nil {
		clock = util.RealClock{}
	}
	return &Simulator{Store: store, FeeBps: feeBps, Clock: clock}, nil
}

func (sim *Simulator) listing(req ListRequest) (Listing, error) {
	seller, err := crypto.ParseAddress(req.Seller)
	if err != nil {
		return Listing{}, fmt.Errorf("seller: %w", err)
	}
	marker := req.BlockMarker
	if marker == 0 {
		marker = uint64(sim.Clock.Now().Unix())
	}
	return Listing{
		Seller:       seller,
		TitleHash:    crypto.FingerprintOf(req.Title),
		CategoryHash: crypto.FingerprintOf(req.Category),
		Price:        req.Price,
		BlockMarker:  marker,
	}, nil
}

// List inserts one spell and returns the stored record.
func (sim *Simulator) List(req ListRequest) (Spell, error) {
	l, err := sim.listing(req)
	if err != nil {
		return Spell{}, err
	}
	id, err := sim.Store.Insert(l)
	if err != nil {
		return Spell{}, err
	}
	return sim.Store.Get(id)
}

// ListBatch lists several spells in one all-or-nothing call.
func (sim *Simulator) ListBatch(reqs []ListRequest) ([]Spell, error) {
	ls := make([]Listing, 0, len(reqs))
	for i, req := range reqs {
		l, err := sim.listing(req)
		if err != nil {
			return nil, fmt.Errorf("listing #%d: %w", i+1, err)
		}
		ls = append(ls, l)
	}

	ids, err := sim.Store.InsertBatch(ls)
	if err != nil {
		return nil, err
	}

	out := make([]Spell, 0, len(ids))
	for _, id := range ids {
		sp, err := sim.Store.Get(id)
		if err != nil {
			return nil, err
		}
		out = append(out, sp)
	}
	return out, nil
}

// Buy lists the spell, delists it as sold and reports how the price is
// split between the seller and the treasury.
func (sim *Simulator) Buy(req ListRequest) (Receipt, error) {
	split, err := fees.Compute(req.Price, sim.FeeBps)
	if err != nil {
		return Receipt{}, err
	}

	sp, err := sim.List(req)
	if err != nil {
		return Receipt{}, err
	}
	if err := sim.Store.Delist(sp.ID); err != nil {
		return Receipt{}, err
	}
	sp.Active = false

	sim.Store.Logger.Debugw("spell_bought",
		"id", sp.ID,
		"price", split.Price.String(),
		"fee", split.Fee.String(),
		"seller_receives", split.SellerReceives.String())

	return Receipt{
		Spell:        sp,
		Split:        split,
		FeeRecipient: params.TreasuryAddress,
	}, nil
}
