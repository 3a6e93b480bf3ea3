package main

import "github.com/whiteelite/garage/cmd/garage/cmd"

func main() {
	cmd.Execute()
}
