package main

import "github.com/ZacxDev/go-docs-site/cmd"

func main() {
	cmd.Execute()
}
