package main

import "console-server/cmd"

func main() {
	cmd.Execute()
}
