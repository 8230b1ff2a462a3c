package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/born-ml/ndarray/internal/dimension"
)

func LayoutHandler(cmd *cobra.Command, args []string) error {
	shape, err := parseShape(args[0])
	if err != nil {
		return err
	}
	order, err := orderFlag(cmd, "order")
	if err != nil {
		return err
	}

	strides := dimension.DefaultStrides(shape, order)
	if s, _ := cmd.Flags().GetString("strides"); s != "" {
		if strides, err = parseInts(s); err != nil {
			return err
		}
	}
	slog.Debug("layout", "shape", shape, "strides", strides)

	return printLayout(cmd.OutOrStdout(), shape, strides, 0)
}

// printLayout writes one row per axis followed by the properties of the
// whole layout. offset is the position of the first element in its buffer.
func printLayout(out io.Writer, shape, strides []int, offset int) error {
	if _, err := dimension.MaxAbsOffset(shape, strides); err != nil {
		return err
	}

	axes := tablewriter.NewWriter(out)
	axes.SetHeader([]string{"Axis", "Len", "Stride"})
	axes.SetAlignment(tablewriter.ALIGN_RIGHT)
	for i := range shape {
		axes.Append([]string{strconv.Itoa(i), strconv.Itoa(shape[i]), strconv.Itoa(strides[i])})
	}
	axes.Render()

	footprint := "empty"
	if fp, ok := dimension.FootprintOf(shape, strides); ok {
		fp = fp.Shift(offset)
		footprint = fmt.Sprintf("[%d, %d] (%d slots)", fp.Min, fp.Max, fp.Len())
	}

	inner := "-"
	if len(shape) > 0 {
		inner = strconv.Itoa(dimension.MinStrideAxis(shape, strides))
	}

	props := tablewriter.NewWriter(out)
	props.SetAlignment(tablewriter.ALIGN_LEFT)
	props.SetHeaderLine(false)
	props.SetBorder(false)
	props.SetNoWhiteSpace(true)
	props.SetTablePadding(" ")
	props.AppendBulk([][]string{
		{"Shape:", formatInts(shape)},
		{"Strides:", formatInts(strides)},
		{"Offset:", strconv.Itoa(offset)},
		{"Elements:", strconv.Itoa(dimension.Shape(shape).NumElements())},
		{"Layout:", dimension.LayoutOf(shape, strides).String()},
		{"Inner axis:", inner},
		{"Dense:", strconv.FormatBool(dimension.IsDense(shape, strides))},
		{"Aliasing:", strconv.FormatBool(dimension.StrideOverlap(shape, strides))},
		{"Footprint:", footprint},
	})
	props.Render()
	return nil
}
