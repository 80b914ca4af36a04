package benchmark_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/hupe1980/kdgo"
	"github.com/hupe1980/kdgo/testutil"
)

// ============================================================================
// Build Benchmarks
// ============================================================================

// BenchmarkBuild measures bulk construction across dataset sizes.
func BenchmarkBuild(b *testing.B) {
	for _, n := range []int{sizeSmall, sizeMedium} {
		for _, ds := range datasets {
			b.Run(ds.name+"/n="+strconv.Itoa(n), func(b *testing.B) {
				entries := makeEntries(ds.gen(n))

				b.ReportAllocs()
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					kdgo.Build(entries)
				}

				b.ReportMetric(float64(n*b.N)/b.Elapsed().Seconds(), "points/s")
			})
		}
	}
}

// BenchmarkInsertVsBuild compares the depth and search cost of a tree grown
// point by point against a bulk built one.
func BenchmarkInsertVsBuild(b *testing.B) {
	const n = sizeSmall
	const k = 10

	pts := rng.ClusteredPoints(n, 4, 50)
	queries := rng.UniformPoints(256, 0, 1000)

	grown := kdgo.New[float64, int]()
	for i, p := range pts {
		grown.Insert(p, i)
	}
	built := loadIndex(b, pts)

	for _, tc := range []struct {
		name string
		idx  *kdgo.Index[float64, int]
	}{{"insert", grown}, {"build", built}} {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := tc.idx.KNearest(queries[i%len(queries)], k); err != nil {
					b.Fatal(err)
				}
			}

			b.StopTimer()
			b.ReportMetric(float64(tc.idx.Tree().Depth()), "depth")
		})
	}
}

// ============================================================================
// Search Benchmarks
// ============================================================================

// BenchmarkSearchK measures search latency and recall across k.
func BenchmarkSearchK(b *testing.B) {
	const n = sizeMedium

	for _, ds := range datasets {
		pts := ds.gen(n)
		idx := loadIndex(b, pts)
		queries := rng.UniformPoints(100, 0, 1000)

		for _, k := range []int{1, 10, 100} {
			b.Run(ds.name+"/k="+strconv.Itoa(k), func(b *testing.B) {
				var totalRecall float64

				b.ReportAllocs()
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					q := queries[i%len(queries)]
					results, err := idx.KNearest(q, k)
					if err != nil {
						b.Fatal(err)
					}

					// Compute recall for a subset to avoid slowing the benchmark
					if i < 10 {
						totalRecall += recallAtK(results, testutil.BruteForceKNN(pts, q, k))
					}
				}

				b.StopTimer()
				b.ReportMetric(totalRecall/float64(min(10, b.N)), "recall")
				b.ReportMetric(float64(b.N)/b.Elapsed().Seconds(), "qps")
			})
		}
	}
}

// BenchmarkSearchScaling measures search latency scaling with dataset size.
func BenchmarkSearchScaling(b *testing.B) {
	const k = 10

	for _, n := range []int{sizeSmall, sizeMedium, sizeLarge} {
		b.Run("n="+strconv.Itoa(n), func(b *testing.B) {
			idx := loadIndex(b, rng.UniformPoints(n, 0, 1000))
			queries := rng.UniformPoints(100, 0, 1000)

			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := idx.KNearest(queries[i%len(queries)], k); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkSearchBatch measures batch throughput across concurrency limits.
func BenchmarkSearchBatch(b *testing.B) {
	const n = sizeMedium
	const k = 10

	pts := rng.UniformPoints(n, 0, 1000)
	queries := rng.UniformPoints(1024, 0, 1000)

	for _, c := range []int{1, 2, 4, 8} {
		b.Run("concurrency="+strconv.Itoa(c), func(b *testing.B) {
			idx := kdgo.Build(makeEntries(pts), kdgo.WithBatchConcurrency(c))
			ctx := context.Background()

			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := idx.SearchBatch(ctx, queries, k); err != nil {
					b.Fatal(err)
				}
			}

			b.ReportMetric(float64(len(queries)*b.N)/b.Elapsed().Seconds(), "qps")
		})
	}
}
