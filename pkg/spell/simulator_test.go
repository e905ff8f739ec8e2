package spell

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/spella/wish/params"
	"github.com/spella/wish/pkg/crypto"
	"github.com/spella/wish/pkg/errs"
	"github.com/spella/wish/pkg/util"
)

const sellerHex = "0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

func newTestSimulator(t *testing.T, feeBps int64) *Simulator {
	t.Helper()
	clock := util.FixedClock(time.Unix(1700000000, 0))
	sim, err := NewSimulator(NewStore(), feeBps, clock)
	if err != nil {
		t.Fatalf("NewSimulator: %v", err)
	}
	return sim
}

func TestNewSimulator_RejectsFeeAboveMax(t *testing.T) {
	if _, err := NewSimulator(NewStore(), params.MaxFeeBps+1, nil); !errors.Is(err, errs.ErrInvalidArgument) {
		t.Errorf("NewSimulator() err = %v, want ErrInvalidArgument", err)
	}
}

func TestSimulator_List(t *testing.T) {
	sim := newTestSimulator(t, 12)

	sp, err := sim.List(ListRequest{
		Seller:   sellerHex,
		Title:    "Fireball",
		Category: "Attack",
		Price:    big.NewInt(500),
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	if sp.ID != 1 || !sp.Active {
		t.Errorf("List() = id %d active %v, want id 1 active", sp.ID, sp.Active)
	}
	if sp.CreatedAt != 1700000000 {
		t.Errorf("CreatedAt = %d, want clock time 1700000000", sp.CreatedAt)
	}
	if sp.CategoryHash != crypto.FingerprintOf("Attack") {
		t.Errorf("CategoryHash = %s, want fingerprint of Attack", sp.CategoryHash)
	}

	sp, err = sim.List(ListRequest{Seller: sellerHex, Title: "Frost", Price: big.NewInt(1), BlockMarker: 7})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if sp.CreatedAt != 7 {
		t.Errorf("CreatedAt = %d, want explicit marker 7", sp.CreatedAt)
	}
}

func TestSimulator_ListRejectsBadSeller(t *testing.T) {
	sim := newTestSimulator(t, 12)

	_, err := sim.List(ListRequest{Seller: "0x123", Title: "Fireball", Price: big.NewInt(1)})
	if !errors.Is(err, errs.ErrInvalidArgument) {
		t.Errorf("List(bad seller) err = %v, want ErrInvalidArgument", err)
	}
	if sim.Store.Len() != 0 {
		t.Errorf("store has %d spells after rejected listing", sim.Store.Len())
	}
}

func TestSimulator_ListBatch(t *testing.T) {
	sim := newTestSimulator(t, 12)

	reqs := []ListRequest{
		{Seller: sellerHex, Title: "Fireball", Category: "Attack", Price: big.NewInt(500)},
		{Seller: sellerHex, Title: "Shield", Category: "Defense", Price: big.NewInt(300)},
	}
	spells, err := sim.ListBatch(reqs)
	if err != nil {
		t.Fatalf("ListBatch: %v", err)
	}
	if len(spells) != 2 || spells[0].ID != 1 || spells[1].ID != 2 {
		t.Errorf("ListBatch() = %+v", spells)
	}

	reqs[1].Seller = "nope"
	if _, err := sim.ListBatch(reqs); !errors.Is(err, errs.ErrInvalidArgument) {
		t.Errorf("ListBatch(bad seller) err = %v, want ErrInvalidArgument", err)
	}
	if sim.Store.Len() != 2 {
		t.Errorf("Len() = %d, want 2", sim.Store.Len())
	}
}

func TestSimulator_Buy(t *testing.T) {
	sim := newTestSimulator(t, 12)

	receipt, err := sim.Buy(ListRequest{
		Seller:   sellerHex,
		Title:    "Fireball",
		Category: "Attack",
		Price:    big.NewInt(1000000),
	})
	if err != nil {
		t.Fatalf("Buy: %v", err)
	}

	if receipt.Split.Fee.Cmp(big.NewInt(1200)) != 0 {
		t.Errorf("fee = %s, want 1200", receipt.Split.Fee)
	}
	if receipt.Split.SellerReceives.Cmp(big.NewInt(998800)) != 0 {
		t.Errorf("seller receives = %s, want 998800", receipt.Split.SellerReceives)
	}
	if receipt.FeeRecipient != params.TreasuryAddress {
		t.Errorf("fee recipient = %s, want treasury", receipt.FeeRecipient)
	}
	if receipt.Spell.Active {
		t.Error("bought spell should be delisted")
	}

	if ids := sim.Store.ActiveIDs(); len(ids) != 0 {
		t.Errorf("ActiveIDs() = %v, want none", ids)
	}
	if ids := sim.Store.AllIDs(); len(ids) != 1 || ids[0] != receipt.Spell.ID {
		t.Errorf("AllIDs() = %v, want [%d]", ids, receipt.Spell.ID)
	}
}

func TestSimulator_BuyNegativePriceInsertsNothing(t *testing.T) {
	sim := newTestSimulator(t, 12)

	_, err := sim.Buy(ListRequest{Seller: sellerHex, Title: "Fireball", Price: big.NewInt(-1)})
	if !errors.Is(err, errs.ErrInvalidArgument) {
		t.Errorf("Buy(negative) err = %v, want ErrInvalidArgument", err)
	}
	if sim.Store.Len() != 0 {
		t.Errorf("Len() = %d, want 0", sim.Store.Len())
	}
}
