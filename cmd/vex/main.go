// vex compiles .jsx files containing JavaScript + JSX syntax into plain
// .js files of virtual-DOM constructor calls.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "vex: %v\n", err)
		os.Exit(1)
	}
}
