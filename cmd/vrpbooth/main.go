package main

import "github.com/philipparndt/vrpbooth/cmd"

func main() {
	cmd.Execute()
}
