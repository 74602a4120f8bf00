package main

import "chronopick/cmd"

func main() {
	cmd.Execute()
}
