package main

import "theme-sync/cmd"

func main() {
	cmd.Execute()
}
