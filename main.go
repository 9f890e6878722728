package main

import "kitinventory/cmd"

func main() {
	cmd.Execute()
}
