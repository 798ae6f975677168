package main

import "connect4/cli"

func main() {
	cli.Execute()
}
