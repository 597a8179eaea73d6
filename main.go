package main

import "github.com/emrgen/cabinet/cmd"

func main() {
	cmd.Execute()
}
