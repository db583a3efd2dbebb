package main

import "github.com/loomcms/cli/cmd"

func main() {
	cmd.Execute()
}
