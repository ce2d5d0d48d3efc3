// Command analyst inspects Python source files and writes analysis reports.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := New().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
