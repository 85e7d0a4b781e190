package main

import (
	stationd "github.com/edgeflare/stationd/cmd/stationd"
)

func main() {
	stationd.Main()
}
