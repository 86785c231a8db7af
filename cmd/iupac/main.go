package main

import "github.com/OpenTraceLab/iupac/cmd/iupac/cmd"

func main() {
	cmd.Execute()
}
