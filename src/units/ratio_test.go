package units

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func ratio(num, den int64) Ratio { return MustRatio(num, den) }

func TestNewRatioReduces(t *testing.T) {
	for idx, tc := range []struct {
		num, den int64
		want     Ratio
	}{
		{1, 1, Ratio{num: 1, den: 1}},
		{2, 4, Ratio{num: 1, den: 2}},
		{100, 10, Ratio{num: 10, den: 1}},
		{254, 10000, Ratio{num: 127, den: 5000}},
		{3600, 3600, Ratio{num: 1, den: 1}},
	} {
		t.Run(fmt.Sprintf("%d/%d,%d", idx, tc.num, tc.den), func(t *testing.T) {
			r, err := NewRatio(tc.num, tc.den)
			require.NoError(t, err)
			require.Equal(t, tc.want, r)
		})
	}
}

func TestNewRatioRejectsNonPositive(t *testing.T) {
	for idx, tc := range []struct {
		num, den int64
	}{
		{0, 1},
		{1, 0},
		{-1, 2},
		{1, -2},
		{0, 0},
	} {
		t.Run(fmt.Sprintf("%d/%d,%d", idx, tc.num, tc.den), func(t *testing.T) {
			_, err := NewRatio(tc.num, tc.den)
			require.Error(t, err)
		})
	}
	require.Panics(t, func() { MustRatio(1, 0) })
}

func TestRatioMul(t *testing.T) {
	for idx, tc := range []struct {
		a, b, want Ratio
	}{
		{ratio(1, 2), ratio(2, 1), One},
		{ratio(1, 100), ratio(1, 100), ratio(1, 10000)},
		{ratio(3, 2), ratio(2, 3), One},
		{ratio(5000, 127), ratio(3600, 1), ratio(18000000, 127)},
		// cross-reduction keeps intermediates representable even when the
		// naive numerator product would overflow
		{ratio(maxInt64, 1), ratio(1, maxInt64), One},
	} {
		t.Run(fmt.Sprintf("%d/%s*%s", idx, tc.a, tc.b), func(t *testing.T) {
			got, err := tc.a.MulRatio(tc.b)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestRatioMulOverflow(t *testing.T) {
	big := ratio(1<<40, 1)
	_, err := big.MulRatio(big)
	require.ErrorIs(t, err, ErrOverflow)

	small := ratio(1, 1<<40)
	_, err = small.MulRatio(small)
	require.ErrorIs(t, err, ErrOverflow)
}

func TestRatioPow(t *testing.T) {
	for idx, tc := range []struct {
		r    Ratio
		n    int
		want Ratio
	}{
		{ratio(7, 3), 0, One},
		{ratio(2, 3), 1, ratio(2, 3)},
		{ratio(2, 3), 2, ratio(4, 9)},
		{ratio(2, 3), -2, ratio(9, 4)},
		{ratio(10, 1), 18, ratio(1000000000000000000, 1)},
		{ratio(1, 2), 62, ratio(1, 1<<62)},
		{ratio(2, 1), -62, ratio(1, 1<<62)},
	} {
		t.Run(fmt.Sprintf("%d/%s^%d", idx, tc.r, tc.n), func(t *testing.T) {
			got, err := tc.r.Pow(tc.n)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestRatioPowOverflow(t *testing.T) {
	_, err := ratio(10, 1).Pow(19)
	require.ErrorIs(t, err, ErrOverflow)

	_, err = ratio(1, 10).Pow(19)
	require.ErrorIs(t, err, ErrOverflow)
}

func TestRatioIsMultipleOf(t *testing.T) {
	for idx, tc := range []struct {
		r, of Ratio
		want  bool
	}{
		{ratio(3600, 1), ratio(60, 1), true},
		{ratio(60, 1), ratio(3600, 1), false},
		{One, ratio(1, 3), true},
		{ratio(1, 3), One, false},
		{ratio(1, 100), ratio(1, 100), true},
		{ratio(3, 2), ratio(1, 2), true},
		{ratio(3, 2), ratio(2, 3), false},
	} {
		t.Run(fmt.Sprintf("%d/%s,%s", idx, tc.r, tc.of), func(t *testing.T) {
			require.Equal(t, tc.want, tc.r.IsMultipleOf(tc.of))
		})
	}
}

func TestCommonRatio(t *testing.T) {
	for idx, tc := range []struct {
		a, b, want Ratio
	}{
		{One, One, One},
		{One, ratio(1, 100), ratio(1, 100)},
		{ratio(1, 100), ratio(1, 1000), ratio(1, 1000)},
		{ratio(60, 1), ratio(3600, 1), ratio(60, 1)},
		{ratio(3, 2), ratio(2, 3), ratio(1, 6)},
		{ratio(127, 5000), ratio(1, 100), ratio(1, 5000)},
	} {
		t.Run(fmt.Sprintf("%d/%s,%s", idx, tc.a, tc.b), func(t *testing.T) {
			got, err := CommonRatio(tc.a, tc.b)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)

			// both operands must be exact integer multiples of the result
			require.True(t, tc.a.IsMultipleOf(got))
			require.True(t, tc.b.IsMultipleOf(got))
		})
	}
}

func TestRatioAccessors(t *testing.T) {
	r := ratio(254, 10000)
	require.Equal(t, int64(127), r.Num())
	require.Equal(t, int64(5000), r.Den())
	require.Equal(t, "127/5000", r.String())
	require.InEpsilon(t, 0.0254, r.Float(), 1e-12)
	require.Equal(t, ratio(5000, 127), r.Inv())
}
