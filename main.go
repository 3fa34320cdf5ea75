package main

import "github.com/runehealth/rune_backend/cmd"

func main() {
	cmd.Execute()
}
