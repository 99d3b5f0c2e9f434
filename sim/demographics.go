package sim

import (
	"golang.org/x/exp/rand"

	"github.com/outbreak-sim/outbreak-sim/sim/stats"
)

// Age/sex sampling parameters. Guests skew much older than crew, matching
// the cruise demographic the defaults were calibrated against.
const (
	minAge       = 18.0
	maxAge       = 99.0
	crewAgeMean  = 35.0
	crewAgeStd   = 5.0
	guestAgeMean = 68.0
	guestAgeStd  = 8.0
)

// AgeSex samples the (age, sex) pair for a new agent. Sex is a fair coin;
// age is normal with role-specific parameters, clamped to [18, 99].
func AgeSex(rng *rand.Rand, crew bool) (age float64, sex int) {
	sex = rng.Intn(2)
	if crew {
		age = stats.Normal(rng, crewAgeMean, crewAgeStd)
	} else {
		age = stats.Normal(rng, guestAgeMean, guestAgeStd)
	}
	if age < minAge {
		age = minAge
	}
	if age > maxAge {
		age = maxAge
	}
	return age, sex
}
