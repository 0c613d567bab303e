package main

import "github.com/rspur/sampleportal/cmd"

func main() {
	cmd.Execute()
}
