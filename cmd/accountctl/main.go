package main

import "accountd/internal/cli"

func main() {
	cli.Execute()
}
