package main

import (
	"context"
	"os"
	_ "time/tzdata"

	"github.com/bussola-app/bussola/pkg/cli"
)

var version = "dev"

func main() {
	if err := cli.Run(context.Background(), os.Args, version); err != nil {
		os.Exit(1)
	}
}
