package dss

import (
	"math/big"
	"strings"

	"golang.org/x/xerrors"
)

// Fixed-point conventions used across the MCD contracts:
// Wad 10^18, Ray 10^27, Rad 10^45.
var (
	WadUnit = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
	RayUnit = new(big.Int).Exp(big.NewInt(10), big.NewInt(27), nil)
	RadUnit = new(big.Int).Exp(big.NewInt(10), big.NewInt(45), nil)
)

type Wad struct{ i *big.Int }

type Ray struct{ i *big.Int }

type Rad struct{ i *big.Int }

func NewWad(i *big.Int) Wad { return Wad{i: clone(i)} }
func NewRay(i *big.Int) Ray { return Ray{i: clone(i)} }
func NewRad(i *big.Int) Rad { return Rad{i: clone(i)} }

// WadFromNumber scales a whole number of units into a Wad.
func WadFromNumber(n int64) Wad {
	return Wad{i: new(big.Int).Mul(big.NewInt(n), WadUnit)}
}

// RayFromNumber scales a whole number of units into a Ray.
func RayFromNumber(n int64) Ray {
	return Ray{i: new(big.Int).Mul(big.NewInt(n), RayUnit)}
}

func (w Wad) Big() *big.Int  { return clone(w.i) }
func (r Ray) Big() *big.Int  { return clone(r.i) }
func (rd Rad) Big() *big.Int { return clone(rd.i) }

func (w Wad) IsZero() bool  { return w.i == nil || w.i.Sign() == 0 }
func (r Ray) IsZero() bool  { return r.i == nil || r.i.Sign() == 0 }
func (rd Rad) IsZero() bool { return rd.i == nil || rd.i.Sign() == 0 }

func (w Wad) String() string  { return formatFixed(w.i, 18) }
func (r Ray) String() string  { return formatFixed(r.i, 27) }
func (rd Rad) String() string { return formatFixed(rd.i, 45) }

func clone(i *big.Int) *big.Int {
	if i == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(i)
}

func formatFixed(i *big.Int, decimals int) string {
	if i == nil {
		i = new(big.Int)
	}
	neg := i.Sign() < 0
	abs := new(big.Int).Abs(i)
	s := abs.String()
	if len(s) <= decimals {
		s = strings.Repeat("0", decimals-len(s)+1) + s
	}
	cut := len(s) - decimals
	out := s[:cut] + "." + s[cut:]
	if neg {
		out = "-" + out
	}
	return out
}

// ParseBig converts a base-10 string column back into an integer, the
// storage convention used for big numbers in the database layer.
func ParseBig(s string) (*big.Int, error) {
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, xerrors.Errorf("failed to convert %s to BigInt", s)
	}
	return i, nil
}
