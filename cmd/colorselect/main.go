package main

import "github.com/eni-rainstop/colorselect/internal/cli"

func main() {
	cli.Execute()
}
