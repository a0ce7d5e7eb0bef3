package main

import "github.com/gowire/protolite/cmd/protolite/cmd"

func main() {
	cmd.Execute()
}
