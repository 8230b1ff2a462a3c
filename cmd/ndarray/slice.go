package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/born-ml/ndarray"
	"github.com/born-ml/ndarray/internal/dimension"
	"github.com/born-ml/ndarray/internal/serialization"
)

// maxElements bounds the source arrays the slice command allocates.
const maxElements = 1 << 20

func SliceHandler(cmd *cobra.Command, args []string) error {
	shape, err := parseShape(args[0])
	if err != nil {
		return err
	}
	order, err := orderFlag(cmd, "order")
	if err != nil {
		return err
	}
	info, err := ndarray.ParseSlice(args[1], len(shape))
	if err != nil {
		return err
	}

	strides := dimension.DefaultStrides(shape, order)
	newShape, newStrides, offset, err := dimension.SliceDims(shape, strides, info)
	if err != nil {
		return err
	}
	slog.Debug("slice", "spec", dimension.FormatSlice(info), "shape", newShape, "strides", newStrides, "offset", offset)

	out := cmd.OutOrStdout()
	if err := printLayout(out, newShape, newStrides, offset); err != nil {
		return err
	}

	n, err := dimension.SizeChecked(shape)
	if err != nil {
		return err
	}
	if n > maxElements {
		slog.Warn("source too large to show elements", "elements", n, "max", maxElements)
		return nil
	}

	// The buffer holds each element's own offset, so the values show which
	// slots the view reaches.
	data := make([]int, n)
	for i := range data {
		data[i] = i
	}
	a, err := ndarray.FromShapeVecOrder(shape, order, data)
	if err != nil {
		return err
	}
	v, err := a.Slice(info...)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	if format == "text" {
		fmt.Fprintln(out, v)
		return nil
	}
	codec, err := serialization.ParseCodec(format)
	if err != nil {
		return err
	}
	buf, err := serialization.Marshal[int, ndarray.IxDyn](codec, v)
	if err != nil {
		return err
	}
	if codec == serialization.CBOR {
		fmt.Fprintf(out, "%x\n", buf)
	} else {
		fmt.Fprintln(out, string(buf))
	}
	return nil
}
