package main

import "github.com/papapumpkin/nightsky/cmd"

func main() {
	cmd.Execute()
}
