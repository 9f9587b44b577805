package main

import (
	"os"

	"github.com/malbeclabs/ntptimestamp/internal/cli"
)

func main() {
	os.Exit(int(cli.Run()))
}
