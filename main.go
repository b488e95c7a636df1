package main

import "github.com/cmmoran/ctorlite/cmd"

func main() {
	cmd.Execute()
}
