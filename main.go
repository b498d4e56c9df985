package main

import "roster-importer/cmd"

func main() {
	cmd.Execute()
}
