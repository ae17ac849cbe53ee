package components

import "github.com/yohamta/donburi"

// DistanceData counts the steps a projectile has taken against its budget
type DistanceData struct {
	Traveled int
	Max      int
}

// Exhausted reports whether the budget has been exceeded
func (d *DistanceData) Exhausted() bool {
	return d.Traveled > d.Max
}

var Distance = donburi.NewComponentType[DistanceData]()
