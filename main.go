package main

import "github.com/twiced-technology-gmbh/nhmoon/cmd"

func main() {
	cmd.Execute()
}
