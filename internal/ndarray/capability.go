package ndarray

import "github.com/born-ml/ndarray/internal/dimension"

// Data is the read capability: every container can be viewed.
type Data[A any, D dimension.Dimension] interface {
	View() *ArrayView[A, D]
}

// DataMut is the write capability. Owned arrays, shared arrays (after
// EnsureUnique) and mutable views provide it.
type DataMut[A any, D dimension.Dimension] interface {
	Data[A, D]
	ViewMut() *ArrayViewMut[A, D]
}

// DataOwned is the owned capability: containers that own their buffer and
// can become shared without copying.
type DataOwned[A any, D dimension.Dimension] interface {
	DataMut[A, D]
	IntoShared() *ArcArray[A, D]
}

// Source is any container readable at dynamic rank. Operations that
// broadcast their input take a Source so that the ranks may differ.
type Source[A any] interface {
	IntoDyn() *ArrayView[A, dimension.IxDyn]
}

var (
	_ Data[float64, dimension.Ix2]      = (*ArrayView[float64, dimension.Ix2])(nil)
	_ DataMut[float64, dimension.Ix2]   = (*ArrayViewMut[float64, dimension.Ix2])(nil)
	_ DataOwned[float64, dimension.Ix2] = (*Array[float64, dimension.Ix2])(nil)
	_ DataOwned[float64, dimension.Ix2] = (*ArcArray[float64, dimension.Ix2])(nil)
	_ Source[float64]                   = (*ArrayView[float64, dimension.Ix3])(nil)
)
