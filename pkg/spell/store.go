package spell

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/spella/wish/params"
	"github.com/spella/wish/pkg/crypto"
	"github.com/spella/wish/pkg/errs"
	"github.com/spella/wish/pkg/fees"
)

// Spell is one listing record, shaped like the contract's storage struct.
type Spell struct {
	ID           uint64
	Seller       common.Address
	TitleHash    crypto.Fingerprint
	CategoryHash crypto.Fingerprint
	Price        *big.Int
	CreatedAt    uint64 // block marker
	Active       bool
}

// Listing is the input to Insert and InsertBatch.
type Listing struct {
	Seller       common.Address
	TitleHash    crypto.Fingerprint
	CategoryHash crypto.Fingerprint
	Price        *big.Int
	BlockMarker  uint64
}

// Store simulates the contract's spell registry in memory.
// Not safe for concurrent use; it has exactly one owner.
type Store struct {
	spells []*Spell // index i holds id i+1
	limit  int

	Logger *zap.SugaredLogger
}

// NewStore creates an empty store capped at params.MaxSpells.
func NewStore() *Store {
	return &Store{
		spells: make([]*Spell, 0, params.MaxSpells),
		limit:  params.MaxSpells,
		Logger: zap.NewNop().Sugar(),
	}
}

// Insert records a new active spell and returns its id. Ids start at 1 and
// are never reused. The cap counts every insert ever made, so delisting
// does not free room.
func (s *Store) Insert(l Listing) (uint64, error) {
	if err := s.checkListing(l); err != nil {
		return 0, err
	}
	if s.Remaining() == 0 {
		return 0, fmt.Errorf("%w: spell limit %d reached", errs.ErrCapacityExceeded, s.limit)
	}
	return s.insert(l), nil
}

// InsertBatch inserts up to params.MaxBatchList spells. Either every
// listing is inserted or none is.
func (s *Store) InsertBatch(ls []Listing) ([]uint64, error) {
	if len(ls) == 0 {
		return nil, fmt.Errorf("%w: empty batch", errs.ErrInvalidArgument)
	}
	if len(ls) > params.MaxBatchList {
		return nil, fmt.Errorf("%w: batch of %d exceeds limit %d", errs.ErrInvalidArgument, len(ls), params.MaxBatchList)
	}
	for i, l := range ls {
		if err := s.checkListing(l); err != nil {
			return nil, fmt.Errorf("listing #%d: %w", i+1, err)
		}
	}
	if len(ls) > s.Remaining() {
		return nil, fmt.Errorf("%w: batch of %d but only %d spells left", errs.ErrCapacityExceeded, len(ls), s.Remaining())
	}

	ids := make([]uint64, 0, len(ls))
	for _, l := range ls {
		ids = append(ids, s.insert(l))
	}
	return ids, nil
}

func (s *Store) checkListing(l Listing) error {
	return fees.ValidatePrice(l.Price)
}

func (s *Store) insert(l Listing) uint64 {
	id := uint64(len(s.spells) + 1)
	s.spells = append(s.spells, &Spell{
		ID:           id,
		Seller:       l.Seller,
		TitleHash:    l.TitleHash,
		CategoryHash: l.CategoryHash,
		Price:        new(big.Int).Set(l.Price),
		CreatedAt:    l.BlockMarker,
		Active:       true,
	})
	s.Logger.Debugw("spell_inserted", "id", id, "seller", l.Seller.Hex(), "price", l.Price.String())
	return id
}

// Delist marks a spell inactive. Delisting an already delisted spell is a
// no-op.
func (s *Store) Delist(id uint64) error {
	sp, err := s.lookup(id)
	if err != nil {
		return err
	}
	sp.Active = false
	s.Logger.Debugw("spell_delisted", "id", id)
	return nil
}

// Get returns a copy of the spell with the given id.
func (s *Store) Get(id uint64) (Spell, error) {
	sp, err := s.lookup(id)
	if err != nil {
		return Spell{}, err
	}
	out := *sp
	out.Price = new(big.Int).Set(sp.Price)
	return out, nil
}

func (s *Store) lookup(id uint64) (*Spell, error) {
	if id == 0 || id > uint64(len(s.spells)) {
		return nil, fmt.Errorf("%w: spell %d", errs.ErrNotFound, id)
	}
	return s.spells[id-1], nil
}

// ActiveIDs returns ids of spells still listed, in insertion order.
func (s *Store) ActiveIDs() []uint64 {
	ids := make([]uint64, 0, len(s.spells))
	for _, sp := range s.spells {
		if sp.Active {
			ids = append(ids, sp.ID)
		}
	}
	return ids
}

// AllIDs returns every id ever assigned, in insertion order.
func (s *Store) AllIDs() []uint64 {
	ids := make([]uint64, len(s.spells))
	for i, sp := range s.spells {
		ids[i] = sp.ID
	}
	return ids
}

// Len returns the number of spells ever inserted.
func (s *Store) Len() int { return len(s.spells) }

// Remaining returns how many more inserts the cap allows.
func (s *Store) Remaining() int { return s.limit - len(s.spells) }
