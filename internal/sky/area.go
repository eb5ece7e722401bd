package sky

import "math"

// AreaFor returns the area of paragraph index out of total. Small counts use
// fixed, hand-placed areas; four or more are spaced evenly on a ring around
// the center. Every area fits inside a circle of radius 45 around (50,50).
func AreaFor(index, total int) Area {
	switch total {
	case 1:
		return Area{CenterX: 50, CenterY: 50, Radius: 40}
	case 2:
		if index == 0 {
			return Area{CenterX: 35, CenterY: 50, Radius: 25}
		}
		return Area{CenterX: 65, CenterY: 50, Radius: 25}
	case 3:
		triangle := [3]Area{
			{CenterX: 50, CenterY: 30, Radius: 20},
			{CenterX: 35, CenterY: 65, Radius: 20},
			{CenterX: 65, CenterY: 65, Radius: 20},
		}
		if index < 0 || index >= len(triangle) {
			return triangle[0]
		}
		return triangle[index]
	}
	const ring = 25
	angle := float64(index) / float64(total) * 2 * math.Pi
	return Area{
		CenterX: 50 + ring*math.Cos(angle),
		CenterY: 50 + ring*math.Sin(angle),
		Radius:  15,
	}
}
