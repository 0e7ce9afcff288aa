package main

import "sermonvault/cmd/sermonvault-cli/cmd"

func main() {
	cmd.Execute()
}
