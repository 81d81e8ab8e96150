package main

import "github.com/saadjs/dietman/cmd/dietman"

func main() {
	dietman.Execute()
}
