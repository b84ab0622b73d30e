package main

import "nbcli/cmd"

func main() {
	cmd.Execute()
}
