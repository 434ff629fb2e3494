package main

import "github.com/undextrois/techdebt-reviewer/src/handler/cli"

func main() {
	cli.Run()
}
