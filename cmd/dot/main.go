// Command dot works with dotconf documents: sysctl.conf-style
// "dotted.key = value" files.
package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}
