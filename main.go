package main

import "github.com/juanibiapina/zombie/cmd"

func main() {
	cmd.Execute()
}
