package main

import "levelforge/cmd/lf/root"

func main() {
	root.Execute()
}
