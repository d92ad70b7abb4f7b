package dice

import (
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/gridiron/internal/dice Roller

// Roller is the single source of randomness for shuffles, play rolls and card sampling
type Roller interface {
	// Roll returns a uniform value in [1, sides]
	Roll(sides int) int

	// Intn returns a uniform value in [0, n)
	Intn(n int) int
}

// RandRoller provides dice rolling functionality backed by math/rand
type RandRoller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new dice roller
func New(cfg *Config) *RandRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &RandRoller{
		random: random,
	}
}

// Roll generates a random dice roll with the specified number of sides
func (r *RandRoller) Roll(sides int) int {
	if sides < 1 {
		sides = 6 // Default to 6-sided die
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Intn(sides) + 1
}

// Intn returns a value in [0, n). n must be positive.
func (r *RandRoller) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Intn(n)
}

// Shuffle permutes n elements with Fisher-Yates, drawing every index from r
func Shuffle(r Roller, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		swap(i, j)
	}
}
