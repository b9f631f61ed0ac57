package units

import (
	"fmt"
	"math/bits"
)

// One is the identity ratio 1/1.
var One = Ratio{num: 1, den: 1}

// Ratio is an exact positive fraction. It is always held in reduced coprime
// form so that magnitude growth under repeated multiplication stays as small
// as the result allows.
type Ratio struct {
	num int64
	den int64
}

// NewRatio builds the reduced fraction num/den. Both parts must be positive:
// a scale magnitude has no sign and no zero.
func NewRatio(num, den int64) (Ratio, error) {
	if num <= 0 || den <= 0 {
		return Ratio{}, fmt.Errorf("ratio %d/%d: parts must be positive", num, den)
	}
	g := gcd(num, den)
	return Ratio{num: num / g, den: den / g}, nil
}

// MustRatio is NewRatio for package-level unit catalogs, panicking on a bad
// definition.
func MustRatio(num, den int64) Ratio {
	r, err := NewRatio(num, den)
	if err != nil {
		panic(err)
	}
	return r
}

func (r Ratio) Num() int64 { return r.num }
func (r Ratio) Den() int64 { return r.den }

func (r Ratio) Float() float64 {
	return float64(r.num) / float64(r.den)
}

func (r Ratio) Inv() Ratio {
	return Ratio{num: r.den, den: r.num}
}

func (r Ratio) String() string {
	return fmt.Sprintf("%d/%d", r.num, r.den)
}

// norm maps the zero Ratio onto One. A scale that leaves an axis unspecified
// carries the identity magnitude there.
func (r Ratio) norm() Ratio {
	if r.den == 0 {
		return One
	}
	return r
}

// MulRatio multiplies with cross-reduction by gcd before either product is
// formed, so intermediates never exceed the reduced result.
func (r Ratio) MulRatio(o Ratio) (Ratio, error) {
	g1 := gcd(r.num, o.den)
	g2 := gcd(o.num, r.den)
	num, err := mul64(r.num/g1, o.num/g2)
	if err != nil {
		return Ratio{}, err
	}
	den, err := mul64(r.den/g2, o.den/g1)
	if err != nil {
		return Ratio{}, err
	}
	return Ratio{num: num, den: den}, nil
}

func (r Ratio) DivRatio(o Ratio) (Ratio, error) {
	return r.MulRatio(o.Inv())
}

// Pow raises r to the n-th power by repeated squaring. A negative exponent
// inverts first; Pow(0) is One for every ratio.
func (r Ratio) Pow(n int) (Ratio, error) {
	if n == 0 {
		return One, nil
	}
	if n < 0 {
		r = r.Inv()
		n = -n
	}
	acc := One
	var err error
	for n > 0 {
		if n&1 == 1 {
			if acc, err = acc.MulRatio(r); err != nil {
				return Ratio{}, err
			}
		}
		n >>= 1
		if n > 0 {
			if r, err = r.MulRatio(r); err != nil {
				return Ratio{}, err
			}
		}
	}
	return acc, nil
}

// IsMultipleOf reports whether r is an exact integer multiple of o.
func (r Ratio) IsMultipleOf(o Ratio) bool {
	q, err := r.DivRatio(o)
	return err == nil && q.den == 1
}

// CommonRatio resolves the finest ratio both a and b are exact integer
// multiples of: the gcd of the numerators over the lcm of the denominators.
func CommonRatio(a, b Ratio) (Ratio, error) {
	a, b = a.norm(), b.norm()
	num := gcd(a.num, b.num)
	den, err := mul64(a.den/gcd(a.den, b.den), b.den)
	if err != nil {
		return Ratio{}, fmt.Errorf("common ratio of %s and %s: %w", a, b, err)
	}
	return Ratio{num: num, den: den}, nil
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// mul64 multiplies two positive int64s, failing instead of wrapping.
func mul64(a, b int64) (int64, error) {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > maxInt64 {
		return 0, fmt.Errorf("%d * %d: %w", a, b, ErrOverflow)
	}
	return int64(lo), nil
}

// smul64 is mul64 over signed operands.
func smul64(a, b int64) (int64, error) {
	neg := (a < 0) != (b < 0)
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	v, err := mul64(a, b)
	if err != nil {
		return 0, err
	}
	if neg {
		v = -v
	}
	return v, nil
}
