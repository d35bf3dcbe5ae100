package main

import "github.com/spacetelescope/awesimsoss/cmd"

func main() {
	cmd.Execute()
}
