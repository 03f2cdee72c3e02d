// Package quickpick draws random number sets for tickets bought without chosen numbers
package quickpick

import (
	"math/rand"
	"sync"
	"time"

	"github.com/KirkDiggler/dball/internal/models"
)

// Picker provides random number sets
type Picker struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for the picker
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new picker
func New(cfg *Config) *Picker {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Picker{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Pick returns six distinct reds and one blue, uniformly at random
func (p *Picker) Pick() models.NumberSet {
	p.mu.Lock()
	perm := p.random.Perm(models.RedMax)
	blue := p.random.Intn(models.BlueMax) + models.BlueMin
	p.mu.Unlock()

	reds := make([]int, models.RedCount)
	for i := range reds {
		reds[i] = perm[i] + models.RedMin
	}

	return models.MustNumberSet(reds, blue)
}
