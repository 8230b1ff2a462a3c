package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/born-ml/ndarray/internal/dimension"
)

func BroadcastHandler(cmd *cobra.Command, args []string) error {
	shapes := make([][]int, len(args))
	for i, arg := range args {
		s, err := parseShape(arg)
		if err != nil {
			return err
		}
		shapes[i] = s
	}

	common, err := dimension.BroadcastAll(shapes...)
	if err != nil {
		return err
	}
	slog.Debug("broadcast", "inputs", shapes, "shape", common)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Shape: %s\n", formatInts(common))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Input", "Strides", "Broadcast Strides"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, s := range shapes {
		strides := dimension.DefaultStrides(s, dimension.RowMajor)
		up, err := dimension.UpcastStrides(common, s, strides)
		if err != nil {
			return err
		}
		table.Append([]string{formatInts(s), formatInts(strides), formatInts(up)})
	}
	table.Render()
	return nil
}

func ReshapeHandler(cmd *cobra.Command, args []string) error {
	from, err := parseShape(args[0])
	if err != nil {
		return err
	}
	to, err := parseShape(args[1])
	if err != nil {
		return err
	}
	order, err := orderFlag(cmd, "order")
	if err != nil {
		return err
	}
	readOrder, err := orderFlag(cmd, "read-order")
	if err != nil {
		return err
	}

	strides := dimension.DefaultStrides(from, order)
	if transpose, _ := cmd.Flags().GetBool("transpose"); transpose {
		from = dimension.Reversed(from)
		strides = dimension.Reversed(strides)
	}

	out := cmd.OutOrStdout()
	newStrides, err := dimension.ReshapeStrides(from, strides, to, readOrder)
	switch {
	case errors.Is(err, dimension.ErrIncompatibleLayout):
		slog.Debug("reshape needs a copy", "error", err)
		fmt.Fprintf(out, "%s %s -> %s: requires a copy\n", formatInts(from), formatInts(strides), formatInts(to))
		return nil
	case err != nil:
		return err
	}

	fmt.Fprintf(out, "%s %s -> %s: view with strides %s\n", formatInts(from), formatInts(strides), formatInts(to), formatInts(newStrides))
	return nil
}
