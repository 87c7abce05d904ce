package main

import "nathanbeddoewebdev/wlsync/cmd"

func main() {
	cmd.Execute()
}
