package main

import "github.com/fitquest/fitquest/cmd/fitquest/root"

func main() {
	root.Execute()
}
