package bot

import (
	"math/rand/v2"

	"github.com/palemoky/fifty-one/internal/game"
)

// Brain decides the next action for one side of the table.
type Brain interface {
	ChooseAction(g *game.Game, actor game.Actor) (game.Action, error)
}

// RandomBrain picks uniformly among the encoded actions. It is the
// placeholder policy until a real decision module exists.
type RandomBrain struct {
	rng *rand.Rand
}

// NewRandomBrain creates a RandomBrain drawing from rng.
func NewRandomBrain(rng *rand.Rand) *RandomBrain {
	return &RandomBrain{rng: rng}
}

func (b *RandomBrain) ChooseAction(_ *game.Game, _ game.Actor) (game.Action, error) {
	return Decode(b.rng.IntN(NumActions))
}
