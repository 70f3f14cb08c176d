package allpairs_test

import (
	"context"
	"fmt"
	"runtime"
	"testing"

	"github.com/katalvlaran/campusnav/allpairs"
	"github.com/katalvlaran/campusnav/builder"
	"github.com/katalvlaran/campusnav/normalize"
)

func benchGraph(b *testing.B, rows, cols int) *normalize.Result {
	b.Helper()
	raw, err := builder.BuildMap([]builder.BuilderOption{
		builder.WithSeed(1),
		builder.WithUniformWeight(5, 60),
	}, builder.Grid(rows, cols))
	if err != nil {
		b.Fatal(err)
	}
	norm, err := normalize.Normalize(raw)
	if err != nil {
		b.Fatal(err)
	}
	return norm
}

func BenchmarkFromNormalized(b *testing.B) {
	norm := benchGraph(b, 20, 20)

	cases := []struct {
		name string
		opts []allpairs.Option
	}{
		{"dijkstra/sequential", nil},
		{fmt.Sprintf("dijkstra/workers=%d", runtime.NumCPU()), []allpairs.Option{allpairs.WithWorkers(runtime.NumCPU())}},
		{"floyd-warshall", []allpairs.Option{allpairs.WithMethod(allpairs.MethodFloydWarshall)}},
	}

	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := allpairs.FromNormalized(context.Background(), norm, tc.opts...); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
