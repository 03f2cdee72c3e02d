package quickpick

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dball/internal/models"
)

func TestPickIsValid(t *testing.T) {
	picker := New(nil)

	for i := 0; i < 500; i++ {
		set := picker.Pick()

		// Round-trip through the validating constructor
		_, err := models.NewNumberSet(set.Reds(), set.Blue())
		require.NoError(t, err)
	}
}

func TestPickIsDeterministicForSeed(t *testing.T) {
	a := New(&Config{Seed: 42})
	b := New(&Config{Seed: 42})

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Pick(), b.Pick())
	}
}

func TestPickCoversPools(t *testing.T) {
	picker := New(&Config{Seed: 7})
	reds := make(map[int]bool)
	blues := make(map[int]bool)

	for i := 0; i < 2000; i++ {
		set := picker.Pick()
		for _, r := range set.Reds() {
			reds[r] = true
		}
		blues[set.Blue()] = true
	}

	assert.Len(t, reds, models.RedMax)
	assert.Len(t, blues, models.BlueMax)
}

func TestPickConcurrent(t *testing.T) {
	picker := New(nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				picker.Pick()
			}
		}()
	}
	wg.Wait()
}
