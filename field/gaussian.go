// SPDX-License-Identifier: MIT

package field

import (
	"math/big"
	"strings"
)

const nameGaussian = "QQ_I"

// gaussianField is Q(i), elements re + im*i with rational parts.
type gaussianField struct{}

var gaussians = &gaussianField{}

// GaussianRationals returns the field Q(i).
func GaussianRationals() Field { return gaussians }

// Gaussian is an element re + im*i of Q(i).
type Gaussian struct {
	re, im *big.Rat
}

var _ Element = Gaussian{}

func newGaussian(re, im *big.Rat) Gaussian { return Gaussian{re: re, im: im} }

func (*gaussianField) Zero() Element { return newGaussian(new(big.Rat), new(big.Rat)) }

func (*gaussianField) One() Element { return newGaussian(big.NewRat(1, 1), new(big.Rat)) }

func (*gaussianField) FromInt(n int64) Element { return newGaussian(big.NewRat(n, 1), new(big.Rat)) }

func (*gaussianField) FromRat(r *big.Rat) Element {
	return newGaussian(new(big.Rat).Set(r), new(big.Rat))
}

func (*gaussianField) ImaginaryUnit() (Element, bool) {
	return newGaussian(new(big.Rat), big.NewRat(1, 1)), true
}

func (*gaussianField) Name() string { return nameGaussian }

// NewGaussian builds re + im*i.
func NewGaussian(re, im *big.Rat) Gaussian {
	return newGaussian(new(big.Rat).Set(re), new(big.Rat).Set(im))
}

func asGaussian(b Element) Gaussian {
	g, ok := b.(Gaussian)
	if !ok {
		panic(panicIncompatible)
	}

	return g
}

func (e Gaussian) Add(b Element) Element {
	o := asGaussian(b)
	return newGaussian(new(big.Rat).Add(e.re, o.re), new(big.Rat).Add(e.im, o.im))
}

func (e Gaussian) Sub(b Element) Element {
	o := asGaussian(b)
	return newGaussian(new(big.Rat).Sub(e.re, o.re), new(big.Rat).Sub(e.im, o.im))
}

// Mul computes (a+bi)(c+di) = (ac-bd) + (ad+bc)i.
func (e Gaussian) Mul(b Element) Element {
	o := asGaussian(b)
	ac := new(big.Rat).Mul(e.re, o.re)
	bd := new(big.Rat).Mul(e.im, o.im)
	ad := new(big.Rat).Mul(e.re, o.im)
	bc := new(big.Rat).Mul(e.im, o.re)

	return newGaussian(ac.Sub(ac, bd), ad.Add(ad, bc))
}

func (e Gaussian) Neg() Element {
	return newGaussian(new(big.Rat).Neg(e.re), new(big.Rat).Neg(e.im))
}

// Inv computes 1/(a+bi) = (a-bi)/(a²+b²).
func (e Gaussian) Inv() Element {
	if e.IsZero() {
		panic(panicInverseOfZero)
	}
	norm := new(big.Rat).Mul(e.re, e.re)
	norm.Add(norm, new(big.Rat).Mul(e.im, e.im))
	re := new(big.Rat).Quo(e.re, norm)
	im := new(big.Rat).Quo(e.im, norm)

	return newGaussian(re, im.Neg(im))
}

func (e Gaussian) IsZero() bool { return e.re.Sign() == 0 && e.im.Sign() == 0 }

func (e Gaussian) IsOne() bool { return e.im.Sign() == 0 && e.re.Cmp(big.NewRat(1, 1)) == 0 }

func (e Gaussian) Equal(b Element) bool {
	o, ok := b.(Gaussian)
	return ok && e.re.Cmp(o.re) == 0 && e.im.Cmp(o.im) == 0
}

func (e Gaussian) Field() Field { return gaussians }

// Real returns a copy of the real part.
func (e Gaussian) Real() *big.Rat { return new(big.Rat).Set(e.re) }

// Imag returns a copy of the imaginary part.
func (e Gaussian) Imag() *big.Rat { return new(big.Rat).Set(e.im) }

// String renders "3", "-i", "2*i", "1/2-3*i".
func (e Gaussian) String() string {
	if e.im.Sign() == 0 {
		return e.re.RatString()
	}
	var b strings.Builder
	if e.re.Sign() != 0 {
		b.WriteString(e.re.RatString())
		if e.im.Sign() > 0 {
			b.WriteByte('+')
		}
	}
	abs := new(big.Rat).Abs(e.im)
	if e.im.Sign() < 0 {
		b.WriteByte('-')
	}
	if abs.Cmp(big.NewRat(1, 1)) != 0 {
		b.WriteString(abs.RatString())
		b.WriteByte('*')
	}
	b.WriteByte('i')

	return b.String()
}
