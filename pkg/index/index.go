// Package index resolves file digests and groups byte-identical files.
//
// Building an index is the two-phase heart of duplink: a bounded pool of
// workers fingerprints every scanned file, then a single sequential pass
// groups the resolved handles by digest. Grouping in discovery order
// keeps the whole pipeline deterministic: the first file seen with a
// given content is always its group's retained source.
package index

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/arthur-debert/duplink/pkg/digest"
	"github.com/arthur-debert/duplink/pkg/logging"
	"github.com/arthur-debert/duplink/pkg/stats"
	"github.com/arthur-debert/duplink/pkg/types"
)

// Options controls how the index is built.
type Options struct {
	// Hash names the digest algorithm. Empty selects digest.Default.
	Hash string

	// Workers bounds the concurrent digest computations. Zero or
	// negative means one worker per CPU.
	Workers int
}

// Index holds the duplicate groups found in one run, in first-encounter
// order, together with the run's accounting.
type Index struct {
	Groups []*types.Group
	Stats  types.Stats
}

// Build fingerprints every file and groups them by digest, discarding
// groups with a single member. Each handle's digest slot is written by
// exactly one worker, so the resolution phase shares nothing; the first
// failed read cancels the remaining workers and fails the build.
func Build(ctx context.Context, fsys types.FS, files []types.File, opts Options, counters *stats.Counters) (*Index, error) {
	logger := logging.GetLogger("index")

	algo, err := digest.Lookup(opts.Hash)
	if err != nil {
		return nil, err
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range files {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sum, err := algo.File(fsys, files[i].AbsPath)
			if err != nil {
				return err
			}
			files[i].Digest = sum
			if counters != nil {
				counters.Record(files[i].Size)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Group sequentially in discovery order. Member order inside each
	// group therefore equals discovery order, which fixes the source.
	byDigest := make(map[string]*types.Group)
	var order []*types.Group
	for _, f := range files {
		group, ok := byDigest[f.Digest]
		if !ok {
			group = &types.Group{Digest: f.Digest}
			byDigest[f.Digest] = group
			order = append(order, group)
		}
		group.Files = append(group.Files, f)
	}

	idx := &Index{
		Stats: types.Stats{
			Matched: len(files),
			Unique:  len(order),
		},
	}
	for _, group := range order {
		if len(group.Files) < 2 {
			continue
		}
		idx.Groups = append(idx.Groups, group)
		idx.Stats.Sources++
		idx.Stats.Copies += len(group.Files) - 1
		idx.Stats.Reclaimable += group.Redundant()
	}

	logger.Debug().
		Str("hash", algo.Name()).
		Int("workers", workers).
		Int("matched", idx.Stats.Matched).
		Int("groups", len(idx.Groups)).
		Msg("Index built")

	return idx, nil
}
