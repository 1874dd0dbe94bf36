package main

import "github.com/tickertalk/tickertalk/cmd"

func main() {
	cmd.Execute()
}
