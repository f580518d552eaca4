package main

import "github.com/mouse-blink/opcheck/cmd"

func main() {
	cmd.Execute()
}
