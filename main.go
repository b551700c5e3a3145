package main

import "workend/cmd"

func main() {
	cmd.Execute()
}
