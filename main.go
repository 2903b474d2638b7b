package main

import "github.com/diversample/diversample/cmd"

func main() {
	cmd.Execute()
}
