package main

import "github.com/chriserin/traitseed/cmd"

func main() {
	cmd.Execute()
}
