package main

import (
	"github.com/kmills/hstat/pkg/cli"
)

func main() {
	cli.Execute()
}
