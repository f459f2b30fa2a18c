package main

import (
	cmd "github.com/azoradev/azoradown/cmd/azoradown"
)

func main() {
	cmd.Execute()
}
