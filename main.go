package main

import "github.com/bgraf/kmroute/cmd"

func main() {
	cmd.Execute()
}
