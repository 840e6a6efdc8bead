// Package cache stores search results keyed by their inputs. A run is a pure
// function of algorithm, grid, start and goal, so a cached Result is always
// identical to a fresh one.
package cache

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/pathviz/ctxlog"
	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/search"
)

// ErrNilResult is returned by Put when asked to store nil.
var ErrNilResult = errors.New("cache: nil result")

// Store persists results. Implementations must be safe for concurrent use.
// Returned results are shared and must not be mutated.
type Store interface {
	// Get returns the result for key; ok is false on a miss.
	Get(ctx context.Context, key string) (res *search.Result, ok bool, err error)
	// Put stores res under key.
	Put(ctx context.Context, key string, res *search.Result) error
}

// Locker is implemented by stores that can serialise computation of a key
// across processes.
type Locker interface {
	// Lock blocks until the key lock is held or ctx is done. The returned
	// func releases it.
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

// Key fingerprints the inputs of a run as a 16-digit hex xxhash64 digest
// over algorithm, dimensions, wall bitmap, start and goal.
func Key(algo search.Algorithm, g *grid.Grid, start, goal grid.Cell) string {
	d := xxhash.New()
	_, _ = d.WriteString(string(algo))

	var buf [8]byte
	putInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		_, _ = d.Write(buf[:])
	}
	putInt(g.Rows())
	putInt(g.Cols())
	putInt(start.Row)
	putInt(start.Col)
	putInt(goal.Row)
	putInt(goal.Col)

	var bits byte
	n := g.Size()
	for i := 0; i < n; i++ {
		if g.WallAt(i) {
			bits |= 1 << (i % 8)
		}
		if i%8 == 7 || i == n-1 {
			_, _ = d.Write([]byte{bits})
			bits = 0
		}
	}

	return fmt.Sprintf("%016x", d.Sum64())
}

// GetOrCompute returns the cached result for key, or runs compute and stores
// its result. cached reports whether the result came from the store. If the
// store is also a Locker, the recheck and compute happen under the key lock.
// Store failures are logged and do not fail the call.
func GetOrCompute(
	ctx context.Context,
	s Store,
	key string,
	compute func(context.Context) (*search.Result, error),
) (res *search.Result, cached bool, err error) {
	logger := ctxlog.FromContext(ctx)

	if res, ok := lookup(ctx, s, key); ok {
		return res, true, nil
	}
	if l, ok := s.(Locker); ok {
		unlock, err := l.Lock(ctx, key)
		if err != nil {
			logger.Warn("cache lock failed, computing without it", "key", key, "error", err)
		} else {
			defer unlock()
			if res, ok := lookup(ctx, s, key); ok {
				return res, true, nil
			}
		}
	}

	res, err = compute(ctx)
	if err != nil {
		return nil, false, err
	}
	if err := s.Put(ctx, key, res); err != nil {
		logger.Warn("cache put failed", "key", key, "error", err)
	}

	return res, false, nil
}

func lookup(ctx context.Context, s Store, key string) (*search.Result, bool) {
	res, ok, err := s.Get(ctx, key)
	if err != nil {
		ctxlog.FromContext(ctx).Warn("cache get failed", "key", key, "error", err)
		return nil, false
	}

	return res, ok
}
