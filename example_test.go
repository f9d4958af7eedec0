package hangar_test

import (
	"fmt"

	"github.com/bitforge-labs/hangar"
)

type Position struct {
	X, Y float64
}

type Velocity struct {
	X, Y float64
}

func Example_basic() {
	reg := hangar.Factory.NewRegistry()

	e := reg.MakeEntity()
	hangar.Bind(reg, e, Position{X: 1, Y: 2})
	hangar.Bind(reg, e, Velocity{X: 1, Y: 0})

	q := hangar.Factory.NewQuery().And(hangar.Key[Position](), hangar.Key[Velocity]())
	for _, row := range hangar.Tuples2[Position, Velocity](reg, q) {
		row.A.X += row.B.X
		row.A.Y += row.B.Y
	}

	got := hangar.Get[Position](reg, e)
	fmt.Println(got.MustValue().X, got.MustValue().Y)
	// Output: 2 2
}
