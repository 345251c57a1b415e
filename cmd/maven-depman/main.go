package main

import "maven-depman/internal/cli"

func main() {
	cli.Execute()
}
