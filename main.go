package main

import "github.com/theirongolddev/ramtrack/cmd"

func main() {
	cmd.Execute()
}
