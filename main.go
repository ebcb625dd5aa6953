package main

import "github.com/beepboop/punchclock/cmd"

func main() {
	cmd.Execute()
}
