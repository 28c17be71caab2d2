package blocks

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/forwardblock/go-forwardblock/core"
)

// DecodeAll decodes independent blocks concurrently, all at the same height.
// The result is index-aligned with raws. The first failure cancels the rest.
func DecodeAll(ctx context.Context, p *core.Protocol, raws [][]byte, height uint64) ([]*Block, error) {
	out := make([]*Block, len(raws))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, raw := range raws {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			b, err := Decode(p, raw, height)
			if err != nil {
				return fmt.Errorf("block %d: %w", i, err)
			}
			out[i] = b
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
