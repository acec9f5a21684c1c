package main

import "github.com/notargets/eulerfv/cmd"

func main() {
	cmd.Execute()
}
