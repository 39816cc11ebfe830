package main

import "github.com/Rorical/CalcPad/cmd"

func main() {
	cmd.Execute()
}
