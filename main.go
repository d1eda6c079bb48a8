package main

import "github.com/workling/portal/cmd"

func main() {
	cmd.Execute()
}
