package committer

import (
	"fmt"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
)

func deletes(n int) []*spanner.Mutation {
	muts := make([]*spanner.Mutation, 0, n)
	for i := 0; i < n; i++ {
		muts = append(muts, spanner.Delete("products", spanner.Key{fmt.Sprintf("p-%d", i)}))
	}
	return muts
}

func TestPlan_Add(t *testing.T) {
	plan := NewPlan()
	assert.True(t, plan.IsEmpty())

	plan.Add(nil)
	plan.Add(deletes(2)...)
	plan.Add(nil, deletes(1)[0])

	assert.False(t, plan.IsEmpty())
	assert.Equal(t, 3, plan.Count())
	assert.Len(t, plan.Mutations(), 3)
}

func TestPlan_Batches(t *testing.T) {
	tests := []struct {
		name  string
		count int
		size  int
		want  []int
	}{
		{name: "empty", count: 0, size: 10, want: nil},
		{name: "single batch", count: 3, size: 10, want: []int{3}},
		{name: "exact multiple", count: 4, size: 2, want: []int{2, 2}},
		{name: "remainder", count: 5, size: 2, want: []int{2, 2, 1}},
		{name: "non-positive size uses default", count: DefaultBatchSize + 1, size: 0, want: []int{DefaultBatchSize, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := NewPlan()
			plan.Add(deletes(tt.count)...)

			var got []int
			for _, batch := range plan.Batches(tt.size) {
				got = append(got, len(batch))
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
