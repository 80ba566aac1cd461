package dataset

import "math"

// Palette is the twelve-color cycle used for synthetic curves and for records
// that carry no color of their own.
var Palette = []Color{
	0xcc0000,
	0xf74308,
	0xf7931e,
	0xaaaa00,
	0x57bb00,
	0x007200,
	0x03b6a2,
	0x1700de,
	0x7300de,
	0xb8056c,
	0x333333,
	0x888888,
}

const curvePoints = 200

// Curves returns the synthetic demo dataset: five 200-point curves laid
// out along x at z = -20, -10, 0, 10 and 20.
func Curves() Dataset {
	type curve struct {
		color int
		z     float64
		y     func(j float64) float64
	}
	curves := []curve{
		{0, -20, func(j float64) float64 { return 5 * math.Sin(.01*j) }},
		{1, -10, func(j float64) float64 { return 5 * math.Cos(.02*j) }},
		{2, 0, func(j float64) float64 { return 5 * math.Sin(.01*j) * math.Cos(.005*j) }},
		{4, 10, func(j float64) float64 { return .02*j + 5*math.Sin(.01*j)*math.Cos(.005*j) }},
		{5, 20, func(j float64) float64 { return math.Exp(.005 * j) }},
	}
	recs := make([]Record, 0, len(curves))
	for i, c := range curves {
		coords := make([][3]float64, curvePoints)
		for k := range coords {
			// j walks the flat xyz buffer of the demo, three floats per point
			j := float64(3 * k)
			coords[k] = [3]float64{-30 + .1*j, c.y(j), c.z}
		}
		recs = append(recs, Record{
			Name:   "curve" + string(rune('0'+i)),
			Color:  Palette[c.color],
			Coords: coords,
		})
	}
	return New("demo curves", Synthetic, recs)
}
