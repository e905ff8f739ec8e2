// Package fees implements the marketplace fee arithmetic. Prices are
// arbitrary-precision integers in the token's smallest unit and fees are
// expressed in basis points out of params.BpsBase. All math is integer;
// the fee rounds down so the seller never receives less than
// price - price*bps/10000.
package fees

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/spella/wish/params"
	"github.com/spella/wish/pkg/errs"
)

var bpsBase = big.NewInt(params.BpsBase)

// Split is the result of charging a fee on one price.
// Fee + SellerReceives == Price always holds.
type Split struct {
	Price          *big.Int
	FeeBps         int64
	Fee            *big.Int
	SellerReceives *big.Int
}

// ValidateFeeBps rejects fees outside [0, params.MaxFeeBps].
func ValidateFeeBps(feeBps int64) error {
	if feeBps < 0 {
		return fmt.Errorf("%w: fee bps %d is negative", errs.ErrInvalidArgument, feeBps)
	}
	if feeBps > params.MaxFeeBps {
		return fmt.Errorf("%w: fee bps %d exceeds platform maximum %d", errs.ErrInvalidArgument, feeBps, params.MaxFeeBps)
	}
	return nil
}

// ValidatePrice rejects nil and negative prices.
func ValidatePrice(price *big.Int) error {
	if price == nil {
		return fmt.Errorf("%w: price is required", errs.ErrInvalidArgument)
	}
	if price.Sign() < 0 {
		return fmt.Errorf("%w: price %s is negative", errs.ErrInvalidArgument, price)
	}
	return nil
}

// ComputeFee returns floor(price * feeBps / 10000).
func ComputeFee(price *big.Int, feeBps int64) (*big.Int, error) {
	if err := ValidateFeeBps(feeBps); err != nil {
		return nil, err
	}
	if err := ValidatePrice(price); err != nil {
		return nil, err
	}

	fee := new(big.Int).Mul(price, big.NewInt(feeBps))
	// Quo truncates toward zero, which is floor for non-negative operands
	return fee.Quo(fee, bpsBase), nil
}

// SellerReceives returns price - ComputeFee(price, feeBps).
func SellerReceives(price *big.Int, feeBps int64) (*big.Int, error) {
	fee, err := ComputeFee(price, feeBps)
	if err != nil {
		return nil, err
	}
	return new(big.Int).Sub(price, fee), nil
}

// Compute returns the full split for one price.
func Compute(price *big.Int, feeBps int64) (Split, error) {
	fee, err := ComputeFee(price, feeBps)
	if err != nil {
		return Split{}, err
	}
	return Split{
		Price:          new(big.Int).Set(price),
		FeeBps:         feeBps,
		Fee:            fee,
		SellerReceives: new(big.Int).Sub(price, fee),
	}, nil
}

// Batch is the result of ComputeBatch: one split per input price, in order,
// plus column totals.
type Batch struct {
	Splits              []Split
	TotalPrice          *big.Int
	TotalFee            *big.Int
	TotalSellerReceives *big.Int
}

// ComputeBatch splits every price with the same fee. It fails on the first
// invalid price and reports its position.
func ComputeBatch(prices []*big.Int, feeBps int64) (Batch, error) {
	if err := ValidateFeeBps(feeBps); err != nil {
		return Batch{}, err
	}

	out := Batch{
		Splits:              make([]Split, 0, len(prices)),
		TotalPrice:          new(big.Int),
		TotalFee:            new(big.Int),
		TotalSellerReceives: new(big.Int),
	}
	for i, p := range prices {
		split, err := Compute(p, feeBps)
		if err != nil {
			return Batch{}, fmt.Errorf("price #%d: %w", i+1, err)
		}
		out.Splits = append(out.Splits, split)
		out.TotalPrice.Add(out.TotalPrice, split.Price)
		out.TotalFee.Add(out.TotalFee, split.Fee)
		out.TotalSellerReceives.Add(out.TotalSellerReceives, split.SellerReceives)
	}
	return out, nil
}

// ParsePrice parses a non-negative base-10 integer.
func ParsePrice(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	price, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: price %q is not an integer", errs.ErrInvalidArgument, s)
	}
	if err := ValidatePrice(price); err != nil {
		return nil, err
	}
	return price, nil
}

// ParsePriceList parses a comma-separated list such as "100, 2500,30000".
// Empty items are rejected rather than skipped.
func ParsePriceList(s string) ([]*big.Int, error) {
	parts := strings.Split(s, ",")
	prices := make([]*big.Int, 0, len(parts))
	for i, part := range parts {
		if strings.TrimSpace(part) == "" {
			return nil, fmt.Errorf("%w: price #%d is empty", errs.ErrInvalidArgument, i+1)
		}
		p, err := ParsePrice(part)
		if err != nil {
			return nil, fmt.Errorf("price #%d: %w", i+1, err)
		}
		prices = append(prices, p)
	}
	return prices, nil
}
