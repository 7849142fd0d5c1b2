package main

import "github.com/gaurav-prasanna/ragpipe/cmd"

func main() {
	cmd.Execute()
}
