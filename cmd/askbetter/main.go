package main

import (
	"os"

	"github.com/ikTheProgrammer1/askbetter/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
