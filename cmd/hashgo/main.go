package main

import "github.com/lookbusy1344/hashgo/internal/cli"

func main() {
	cli.Execute()
}
