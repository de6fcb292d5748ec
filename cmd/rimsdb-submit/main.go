package main

import "github.com/RIMS-Code/rimsdb-scheme-submission/internal/cli"

func main() {
	cli.Execute()
}
