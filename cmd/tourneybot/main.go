package main

import "github.com/okrensky/tourneybot/internal/cli"

func main() {
	cli.Execute()
}
