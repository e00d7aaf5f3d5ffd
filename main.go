package main

import "cos-manager/cmd"

func main() {
	cmd.Execute()
}
