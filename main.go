package main

import "github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/cmd"

func main() {
	cmd.Execute()
}
