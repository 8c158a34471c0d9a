// SPDX-License-Identifier: MIT

package field

import "math/big"

const nameRational = "QQ"

// rationalField is Q backed by math/big.Rat.
type rationalField struct{}

// rationals is the shared instance; the field is stateless.
var rationals = &rationalField{}

// Rationals returns the field of rational numbers.
func Rationals() Field { return rationals }

// Rat is an element of Q.
type Rat struct {
	v *big.Rat
}

var _ Element = Rat{}

func (*rationalField) Zero() Element { return Rat{v: new(big.Rat)} }

func (*rationalField) One() Element { return Rat{v: big.NewRat(1, 1)} }

func (*rationalField) FromInt(n int64) Element { return Rat{v: big.NewRat(n, 1)} }

func (*rationalField) FromRat(r *big.Rat) Element { return Rat{v: new(big.Rat).Set(r)} }

// ImaginaryUnit reports false: -1 has no square root in Q.
func (*rationalField) ImaginaryUnit() (Element, bool) { return nil, false }

func (*rationalField) Name() string { return nameRational }

// asRat unwraps b or panics when it belongs to another field.
func asRat(b Element) Rat {
	r, ok := b.(Rat)
	if !ok {
		panic(panicIncompatible)
	}

	return r
}

func (e Rat) Add(b Element) Element { return Rat{v: new(big.Rat).Add(e.v, asRat(b).v)} }

func (e Rat) Sub(b Element) Element { return Rat{v: new(big.Rat).Sub(e.v, asRat(b).v)} }

func (e Rat) Mul(b Element) Element { return Rat{v: new(big.Rat).Mul(e.v, asRat(b).v)} }

func (e Rat) Neg() Element { return Rat{v: new(big.Rat).Neg(e.v)} }

func (e Rat) Inv() Element {
	if e.v.Sign() == 0 {
		panic(panicInverseOfZero)
	}

	return Rat{v: new(big.Rat).Inv(e.v)}
}

func (e Rat) IsZero() bool { return e.v.Sign() == 0 }

func (e Rat) IsOne() bool { return e.v.Cmp(big.NewRat(1, 1)) == 0 }

func (e Rat) Equal(b Element) bool {
	o, ok := b.(Rat)
	return ok && e.v.Cmp(o.v) == 0
}

func (e Rat) Field() Field { return rationals }

// Rat returns a copy of the underlying value.
func (e Rat) Rat() *big.Rat { return new(big.Rat).Set(e.v) }

// String renders integers without a denominator ("3", "-1/2").
func (e Rat) String() string { return e.v.RatString() }
