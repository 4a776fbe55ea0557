package main

import "github.com/jfmyers9/pandora/cmd"

func main() {
	cmd.Execute()
}
