// Package main is the entry point for the hexvar application.
package main

import (
	"github.com/hexvar-cli/hexvar/cmd"
	"github.com/hexvar-cli/hexvar/config"
	"github.com/hexvar-cli/hexvar/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
