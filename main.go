package main

import "balebridge/cmd"

func main() {
	cmd.Execute()
}
