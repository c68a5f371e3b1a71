// Command docflowctl signs in to the document backend and lists or decides
// pending approvals.
package main

import (
	"fmt"
	"os"

	"github.com/jsamuelsen11/docflow-bff/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
