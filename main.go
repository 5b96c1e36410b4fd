package main

import "github.com/sysprobe/cpusnap/cmd"

func main() {
	cmd.Execute()
}
