package main

import (
	"github.com/invoicehq/invoicer-client/internal/cli"
)

func main() {
	cli.Execute()
}
