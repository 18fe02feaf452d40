package manager

import (
	"snake-classic/game/types"

	"golang.org/x/exp/rand"
)

// FoodManager places food uniformly over the whole grid. Cells under the
// snake are not excluded, so food may land on the body.
type FoodManager struct {
	grid types.Grid
	rng  *rand.Rand
}

func NewFoodManager(grid types.Grid, seed uint64) *FoodManager {
	return &FoodManager{
		grid: grid,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (fm *FoodManager) GenerateFood() types.Point {
	return types.Point{
		X: fm.rng.Intn(fm.grid.Width),
		Y: fm.rng.Intn(fm.grid.Height),
	}
}
