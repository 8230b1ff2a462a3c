// Command ndarray inspects array memory layouts: strides, contiguity,
// slicing, broadcasting and reshaping.
package main

import (
	"context"

	"github.com/spf13/cobra"
)

func main() {
	cobra.CheckErr(NewCLI().ExecuteContext(context.Background()))
}
