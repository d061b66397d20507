package main

import "github.com/yeremiapane/laundry-app/cmd"

func main() {
	cmd.Execute()
}
