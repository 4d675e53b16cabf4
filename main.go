package main

import "github.com/mouse-blink/fretwork/cmd"

func main() {
	cmd.Execute()
}
