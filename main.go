package main

import "github.com/notargets/goocean/cmd"

func main() {
	cmd.Execute()
}
