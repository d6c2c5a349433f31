// Package committer collects Spanner mutations and writes them in bounded commits.
//
// It is used to load catalog data: seeding tools and integration tests build a
// Plan of insert mutations and hand it to a Committer. Plans larger than the
// per-commit limit are split so a big catalog does not exceed Spanner's
// mutation cap.
package committer

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
)

// DefaultBatchSize is the number of mutations written per commit.
const DefaultBatchSize = 500

// Plan is an ordered list of mutations waiting to be written.
type Plan struct {
	mutations []*spanner.Mutation
}

// NewPlan creates an empty Plan.
func NewPlan() *Plan {
	return &Plan{}
}

// Add appends mutations to the plan. Nil mutations are ignored.
func (p *Plan) Add(muts ...*spanner.Mutation) {
	for _, mut := range muts {
		if mut != nil {
			p.mutations = append(p.mutations, mut)
		}
	}
}

// Mutations returns all collected mutations.
func (p *Plan) Mutations() []*spanner.Mutation {
	return p.mutations
}

// Count returns the number of mutations in the plan.
func (p *Plan) Count() int {
	return len(p.mutations)
}

// IsEmpty reports whether the plan has no mutations.
func (p *Plan) IsEmpty() bool {
	return len(p.mutations) == 0
}

// Batches splits the plan into consecutive slices of at most size mutations.
func (p *Plan) Batches(size int) [][]*spanner.Mutation {
	if size <= 0 {
		size = DefaultBatchSize
	}

	var out [][]*spanner.Mutation
	for start := 0; start < len(p.mutations); start += size {
		end := min(start+size, len(p.mutations))
		out = append(out, p.mutations[start:end])
	}
	return out
}

// Committer writes plans to Spanner.
type Committer struct {
	client    *spanner.Client
	batchSize int
}

// NewCommitter creates a Committer using DefaultBatchSize.
func NewCommitter(client *spanner.Client) *Committer {
	return &Committer{client: client, batchSize: DefaultBatchSize}
}

// WithBatchSize returns a copy of c that commits at most size mutations at a time.
func (c *Committer) WithBatchSize(size int) *Committer {
	return &Committer{client: c.client, batchSize: size}
}

// Apply writes the plan. A plan that fits in one batch is atomic; larger
// plans are committed batch by batch and stop at the first failure.
func (c *Committer) Apply(ctx context.Context, plan *Plan) error {
	batches := plan.Batches(c.batchSize)
	for i, batch := range batches {
		if _, err := c.client.Apply(ctx, batch); err != nil {
			return fmt.Errorf("failed to apply batch %d of %d: %w", i+1, len(batches), err)
		}
	}
	return nil
}
