package units

// Scale describes the magnitude of a unit relative to the canonical reference
// on each axis: a dimension vector plus one ratio per axis. A zero Ratio on
// any axis means the identity magnitude, so Scale{Dim: d} is the canonical
// scale for d.
type Scale struct {
	Dim        Dim
	R1, R2, R3 Ratio
}

// NewScale builds a scale for d; up to three axis ratios may follow, missing
// trailing axes default to the identity.
func NewScale(d Dim, rs ...Ratio) Scale {
	if len(rs) > 3 {
		panic("units: a scale has at most three axis ratios")
	}
	s := Scale{Dim: d, R1: One, R2: One, R3: One}
	if len(rs) > 0 {
		s.R1 = rs[0].norm()
	}
	if len(rs) > 1 {
		s.R2 = rs[1].norm()
	}
	if len(rs) > 2 {
		s.R3 = rs[2].norm()
	}
	return s
}

// Ratios returns the per-axis ratios with unspecified axes normalized to One.
func (s Scale) Ratios() [3]Ratio {
	return [3]Ratio{s.R1.norm(), s.R2.norm(), s.R3.norm()}
}

func (s Scale) Equal(o Scale) bool {
	return s.Dim.Equal(o.Dim) && s.Ratios() == o.Ratios()
}

// isMultipleOf reports whether every axis ratio of s is an exact integer
// multiple of the corresponding axis of o. This is the structural gate for
// casts onto integral representations.
func (s Scale) isMultipleOf(o Scale) bool {
	sr, or := s.Ratios(), o.Ratios()
	for i := range sr {
		if !sr[i].IsMultipleOf(or[i]) {
			return false
		}
	}
	return true
}

// CommonScale resolves the finest scale both operand scales can be exactly
// expressed in, per axis, and attaches the result dimension d to it.
func CommonScale(d Dim, a, b Scale) (Scale, error) {
	ar, br := a.Ratios(), b.Ratios()
	var rs [3]Ratio
	for i := range rs {
		r, err := CommonRatio(ar[i], br[i])
		if err != nil {
			return Scale{}, err
		}
		rs[i] = r
	}
	return Scale{Dim: d, R1: rs[0], R2: rs[1], R3: rs[2]}, nil
}
