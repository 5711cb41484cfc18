package scenario

import "gomonte/domain/gen"

// MontyHall plays one full game with the switch-always strategy: a prize
// door and an initial pick are drawn, the host opens a goat door (choosing
// uniformly between the two goats when the pick is the prize), and the
// player switches to the remaining closed door. The win ratio converges
// to 2/3.
//
// The host's tie-break draws from the stream even though switch-always wins
// are decided by the first pick alone, so the outcome sequence stays faithful
// to the full game and door-conditional analyses remain possible.
type MontyHall struct{}

func (MontyHall) Name() string { return "montyhall" }
func (MontyHall) Description() string {
	return "Monty Hall with switch-always strategy; win ratio converges to 2/3"
}

type montyDraw struct {
	prize int
	pick  int
}

func (MontyHall) Outcome() gen.Generator[bool] {
	draw := gen.Map2(gen.Int(3), gen.Int(3), func(prize, pick int) montyDraw {
		return montyDraw{prize: prize, pick: pick}
	})
	return gen.Then(draw, func(d montyDraw) gen.Generator[bool] {
		goats := goatDoors(d)
		return gen.Map(gen.OneOf(goats), func(opened int) bool {
			return switchDoor(d.pick, opened) == d.prize
		})
	})
}

func (MontyHall) Estimate(ratio float64) float64 { return ratio }
func (MontyHall) Target() float64                { return 2.0 / 3.0 }

// goatDoors returns the doors the host may open: not the pick, not the
// prize. One door when pick != prize, two when the pick hides the prize.
func goatDoors(d montyDraw) []int {
	var goats []int
	for door := 0; door < 3; door++ {
		if door != d.pick && door != d.prize {
			goats = append(goats, door)
		}
	}
	return goats
}

// switchDoor returns the one door that is neither the pick nor the opened door.
func switchDoor(pick, opened int) int {
	for door := 0; door < 3; door++ {
		if door != pick && door != opened {
			return door
		}
	}
	return pick // unreachable for distinct pick/opened in [0,3)
}
