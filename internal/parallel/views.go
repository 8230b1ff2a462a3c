package parallel

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/born-ml/ndarray/internal/dimension"
	"github.com/born-ml/ndarray/internal/logutil"
	"github.com/born-ml/ndarray/internal/ndarray"
)

// plan picks the axis to split along and how many positions of it each
// chunk covers. The axis is the one with the largest stride among those
// longer than one, so that chunks occupy separate blocks of memory.
func plan(shape dimension.Shape, strides []int, cfg Config) (axis, size int) {
	axis = dimension.MaxStrideAxis(shape, strides)
	n := shape[axis]
	total := shape.NumElements()
	if !cfg.Enabled || total < cfg.MinChunkSize {
		return axis, n
	}
	inner := total / n
	w := cfg.workers()
	size = max((n+w-1)/w, (cfg.MinChunkSize+inner-1)/inner, 1)
	return axis, size
}

// partition splits v into disjoint mutable chunks. Views whose elements alias
// one another cannot be split safely and are rejected with Unsupported.
func partition[A any, D dimension.Dimension](ctx context.Context, v *ndarray.ArrayViewMut[A, D], cfg Config) ([]*ndarray.ArrayViewMut[A, D], int, int, error) {
	shape, strides := v.Shape(), v.Strides()
	if dimension.StrideOverlap(shape, strides) {
		return nil, 0, 0, dimension.NewError(dimension.Unsupported, "cannot partition a view with aliased elements", shape, strides)
	}
	if v.IsEmpty() {
		return nil, 0, 0, nil
	}
	if v.NDim() == 0 {
		return []*ndarray.ArrayViewMut[A, D]{v}, 0, 1, nil
	}
	axis, size := plan(shape, strides, cfg)
	chunks := slices.Collect(v.AxisChunksIterMut(axis, size))
	logutil.TraceContext(logutil.WithComponent(ctx, "parallel"), "partition",
		logutil.Layout(shape, strides), "axis", axis, "size", size, "chunks", len(chunks))
	return chunks, axis, size, nil
}

// run calls f on every part from a bounded pool of goroutines. The first
// error cancels the context handed to the remaining calls.
func run[T any](ctx context.Context, parts []T, cfg Config, f func(ctx context.Context, i int, part T) error) error {
	if len(parts) == 1 {
		if err := ctx.Err(); err != nil {
			return err
		}
		return f(ctx, 0, parts[0])
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers())
	for i, part := range parts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return f(ctx, i, part)
		})
	}
	return g.Wait()
}

// ForEachChunk splits a into disjoint mutable sub-views and calls f on each
// from its own goroutine. Every element belongs to exactly one sub-view.
func ForEachChunk[A any, D dimension.Dimension](ctx context.Context, a ndarray.DataMut[A, D], cfg Config, f func(context.Context, *ndarray.ArrayViewMut[A, D]) error) error {
	chunks, _, _, err := partition(ctx, a.ViewMut(), cfg)
	if err != nil {
		return err
	}
	return run(ctx, chunks, cfg, func(ctx context.Context, _ int, v *ndarray.ArrayViewMut[A, D]) error {
		return f(ctx, v)
	})
}

// MapInPlace replaces every element x of a with f(x). Dense arrays are split
// by memory range, others by axis.
func MapInPlace[A any, D dimension.Dimension](ctx context.Context, a ndarray.DataMut[A, D], cfg Config, f func(A) A) error {
	v := a.ViewMut()
	if flat, ok := v.AsSliceMemoryOrder(); ok {
		return run(ctx, Ranges(len(flat), cfg), cfg, func(_ context.Context, _ int, r [2]int) error {
			seg := flat[r[0]:r[1]]
			for i := range seg {
				seg[i] = f(seg[i])
			}
			return nil
		})
	}
	return ForEachChunk[A, D](ctx, v, cfg, func(_ context.Context, c *ndarray.ArrayViewMut[A, D]) error {
		c.MapvInPlace(f)
		return nil
	})
}

// Fill sets every element of a to x.
func Fill[A any, D dimension.Dimension](ctx context.Context, a ndarray.DataMut[A, D], cfg Config, x A) error {
	v := a.ViewMut()
	if flat, ok := v.AsSliceMemoryOrder(); ok {
		if err := ctx.Err(); err != nil {
			return err
		}
		For(len(flat), func(i int) { flat[i] = x }, cfg)
		return nil
	}
	return ForEachChunk[A, D](ctx, v, cfg, func(_ context.Context, c *ndarray.ArrayViewMut[A, D]) error {
		c.Fill(x)
		return nil
	})
}

// ZipMutWith calls f(&dst[i], src[i]) for every index of dst, with src
// broadcast to dst's shape. A src that shares memory with dst is copied
// before any worker starts.
func ZipMutWith[A, B any, D dimension.Dimension](ctx context.Context, dst ndarray.DataMut[A, D], src ndarray.Source[B], cfg Config, f func(*A, B)) error {
	v := dst.ViewMut()
	if ndarray.SharesMemory[A, B](v, src) {
		src = src.IntoDyn().ToOwned()
	}
	sv, err := src.IntoDyn().Broadcast(v.Shape()...)
	if err != nil {
		return err
	}
	chunks, axis, size, err := partition(ctx, v, cfg)
	if err != nil || len(chunks) == 0 {
		return err
	}
	srcChunks := []*ndarray.ArrayView[B, dimension.IxDyn]{sv}
	if v.NDim() > 0 {
		srcChunks = slices.Collect(sv.AxisChunksIter(axis, size))
	}
	return run(ctx, chunks, cfg, func(_ context.Context, i int, c *ndarray.ArrayViewMut[A, D]) error {
		return ndarray.ZipMutWith[A, B, D](c, srcChunks[i], f)
	})
}

// Fold reduces each chunk of a with f starting from init, then merges the
// partial results with combine. init must be an identity of combine, and the
// order in which elements and partials are visited is unspecified.
func Fold[A, B any, D dimension.Dimension](ctx context.Context, a ndarray.Data[A, D], cfg Config, init B, f func(B, A) B, combine func(B, B) B) (B, error) {
	v := a.View()
	if v.IsEmpty() {
		return init, ctx.Err()
	}
	var chunks []*ndarray.ArrayView[A, D]
	if v.NDim() == 0 {
		chunks = append(chunks, v)
	} else {
		axis, size := plan(v.Shape(), v.Strides(), cfg)
		chunks = slices.Collect(v.AxisChunksIter(axis, size))
		logutil.TraceContext(logutil.WithComponent(ctx, "parallel"), "fold partition",
			logutil.Layout(v.Shape(), v.Strides()), "axis", axis, "size", size, "chunks", len(chunks))
	}

	partials := make([]B, len(chunks))
	err := run(ctx, chunks, cfg, func(_ context.Context, i int, c *ndarray.ArrayView[A, D]) error {
		partials[i] = ndarray.Fold[A, B, D](c, init, f)
		return nil
	})
	if err != nil {
		return init, err
	}

	acc := init
	for _, p := range partials {
		acc = combine(acc, p)
	}
	return acc, nil
}

// Sum adds the elements of a, one partial sum per chunk.
func Sum[A ndarray.Number, D dimension.Dimension](ctx context.Context, a ndarray.Data[A, D], cfg Config) (A, error) {
	add := func(x, y A) A { return x + y }
	return Fold[A, A, D](ctx, a, cfg, 0, add, add)
}
