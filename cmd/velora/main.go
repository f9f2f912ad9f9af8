package main

import "github.com/velora-store/velora/internal/cmd"

func main() {
	cmd.Execute()
}
