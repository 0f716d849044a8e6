package main

import "orth-check/cmd"

func main() {
	cmd.Execute()
}
