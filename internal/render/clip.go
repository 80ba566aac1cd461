package render

import "github.com/go-gl/mathgl/mgl64"

// clipBox clips the segment a-b to the axis-aligned box lo-hi and returns the
// surviving parameter range.
func clipBox(a, b, lo, hi mgl64.Vec3) (t0, t1 float64, ok bool) {
	t0, t1 = 0, 1
	d := b.Sub(a)
	for i := 0; i < 3; i++ {
		if !clipT(-d[i], a[i]-lo[i], &t0, &t1) || !clipT(d[i], hi[i]-a[i], &t0, &t1) {
			return 0, 0, false
		}
	}
	return t0, t1, true
}

// clipRange clips a scalar that goes linearly from da to db to [lo, hi].
func clipRange(da, db, lo, hi float64, t0, t1 *float64) bool {
	d := db - da
	return clipT(-d, da-lo, t0, t1) && clipT(d, hi-da, t0, t1)
}

// clipT is one Liang-Barsky boundary test.
func clipT(p, q float64, t0, t1 *float64) bool {
	if p == 0 {
		return q >= 0
	}
	r := q / p
	if p < 0 {
		if r > *t1 {
			return false
		}
		if r > *t0 {
			*t0 = r
		}
	} else {
		if r < *t0 {
			return false
		}
		if r < *t1 {
			*t1 = r
		}
	}
	return true
}

func lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}
