// Command hexer prints a hex dump of a file or of standard input.
//
//	hexer [flags] [FILE]
//
// The default layout matches hexdump -C. Run hexer -h for the flags.
package main

import (
	"os"

	"github.com/bjaus/hexer/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
