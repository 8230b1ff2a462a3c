package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/born-ml/ndarray/internal/envconfig"
	"github.com/born-ml/ndarray/internal/logutil"
)

const version = "v0.1.0"

// NewCLI builds the command tree.
func NewCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ndarray",
		Short: "Inspect n-dimensional array layouts",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Disable usage printing on errors
			cmd.SilenceUsage = true

			level := envconfig.LogLevel()
			if debug, _ := cmd.Flags().GetBool("debug"); debug && level > slog.LevelDebug {
				level = slog.LevelDebug
			}
			slog.SetDefault(logutil.NewLogger(cmd.ErrOrStderr(), level))
		},
	}

	rootCmd.PersistentFlags().Bool("debug", false, "Log at debug level")

	cobra.EnableCommandSorting = false

	layoutCmd := &cobra.Command{
		Use:   "layout SHAPE",
		Short: "Show strides and contiguity of a shape",
		Long:  "Show the strides, contiguity flags and memory footprint of SHAPE (e.g. 2,3,4) laid out in the given order or with explicit strides.",
		Args:  cobra.ExactArgs(1),
		RunE:  LayoutHandler,
	}
	layoutCmd.Flags().StringP("order", "o", "c", "Memory order: c (row-major) or f (column-major)")
	layoutCmd.Flags().StringP("strides", "s", "", "Explicit strides, overriding --order")

	sliceCmd := &cobra.Command{
		Use:   "slice SHAPE SPEC",
		Short: "Slice a shape and show the resulting view",
		Long:  "Apply SPEC (Python notation, e.g. \"::-1, 1:3, newaxis\") to an array of SHAPE holding 0, 1, 2, ... and show the view's layout.",
		Args:  cobra.ExactArgs(2),
		RunE:  SliceHandler,
	}
	sliceCmd.Flags().StringP("order", "o", "c", "Memory order of the source: c or f")
	sliceCmd.Flags().StringP("format", "f", "text", "Element output: text, json or cbor (hex)")

	broadcastCmd := &cobra.Command{
		Use:   "broadcast SHAPE SHAPE...",
		Short: "Broadcast shapes together",
		Long:  "Compute the common shape of the given shapes and the strides each row-major operand gets when stretched to it.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  BroadcastHandler,
	}

	reshapeCmd := &cobra.Command{
		Use:   "reshape SHAPE NEWSHAPE",
		Short: "Check whether a reshape can be done without copying",
		Args:  cobra.ExactArgs(2),
		RunE:  ReshapeHandler,
	}
	reshapeCmd.Flags().StringP("order", "o", "c", "Memory order of the source: c or f")
	reshapeCmd.Flags().Bool("transpose", false, "Reverse the source axes first")
	reshapeCmd.Flags().String("read-order", "c", "Order in which elements are read and placed: c or f")

	envCmd := &cobra.Command{
		Use:   "env",
		Short: "Show the environment configuration",
		Args:  cobra.NoArgs,
		RunE:  EnvHandler,
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ndarray %s\n", version)
		},
	}

	rootCmd.AddCommand(
		layoutCmd,
		sliceCmd,
		broadcastCmd,
		reshapeCmd,
		envCmd,
		versionCmd,
	)

	return rootCmd
}
