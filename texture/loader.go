package texture

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/cosmos/catalog"
)

// ErrCanceled is returned when loading is interrupted before every texture is ready
var ErrCanceled = errors.New("texture loading canceled")

// Set maps each body to its texture
type Set map[catalog.BodyID]*Image

// Complete reports whether every spec has a texture
func (s Set) Complete(specs []catalog.BodySpec) bool {
	for _, spec := range specs {
		if s[spec.ID] == nil {
			return false
		}
	}
	return true
}

// ProgressFunc receives the count of finished textures, it may be called from any goroutine
type ProgressFunc func(done, total int)

// streamFor derives an independent PCG stream per body so results do not depend on scheduling
func streamFor(seed uint64, id catalog.BodyID) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^(uint64(id)+1)*0x9e3779b97f4a7c15))
}

// Synthesize builds the texture for one body
func Synthesize(spec catalog.BodySpec, size int, seed uint64) *Image {
	rng := streamFor(seed, spec.ID)
	if spec.IsCentral() {
		return Sun(size, rng)
	}
	return Planet(spec.ID, size, rng)
}

// LoadAll synthesizes every body concurrently and returns once all are done
func LoadAll(ctx context.Context, specs []catalog.BodySpec, size int, seed uint64, onProgress ProgressFunc) (Set, error) {
	g, gctx := errgroup.WithContext(ctx)

	var (
		mu   sync.Mutex
		done atomic.Int32
	)
	set := make(Set, len(specs))
	total := len(specs)

	for _, spec := range specs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			img := Synthesize(spec, size, seed)

			mu.Lock()
			set[spec.ID] = img
			mu.Unlock()

			n := int(done.Add(1))
			if onProgress != nil {
				onProgress(n, total)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCanceled, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCanceled, err)
	}
	return set, nil
}
