package units

// Factor computes the single rational multiplier that re-expresses a value
// recorded under from as a value under to, for the dimension vector d.
//
// Per axis i with exponent di, the contribution is (from_i/to_i)^di: the
// quotient is inverted first when di is negative and then raised to |di| by
// repeated squaring. An axis with di == 0 contributes One no matter what its
// ratios are; this is an explicit rule, not a byproduct of exponentiation.
// Contributions are multiplied with gcd reduction after every step.
//
// d is normally the source quantity's own dimension. The operator algebra
// also calls Factor with a combined dimension on the target scale while d
// stays the operand's own, which is what aligns two different-dimension
// operands onto one intermediate scale without a second conversion routine.
func Factor(d Dim, from, to Scale) (Ratio, error) {
	fr, tr := from.Ratios(), to.Ratios()
	exps := [3]int{d.D1, d.D2, d.D3}

	f := One
	for i, exp := range exps {
		if exp == 0 {
			continue
		}
		q, err := fr[i].DivRatio(tr[i])
		if err != nil {
			return Ratio{}, err
		}
		if q, err = q.Pow(exp); err != nil {
			return Ratio{}, err
		}
		if f, err = f.MulRatio(q); err != nil {
			return Ratio{}, err
		}
	}
	return f, nil
}
