package main

import "retirement-calc/cmd"

func main() {
	cmd.Execute()
}
