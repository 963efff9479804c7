package main

import (
	"os"

	"biomine/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
