package main

import "github.com/alexiusacademia/stringlift/cmd"

func main() {
	cmd.Execute()
}
