package main

import "playero-reconciler/cmd"

func main() {
	cmd.Execute()
}
