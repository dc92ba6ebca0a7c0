package main

import "github.com/vietfit/nutrichat/cmd"

func main() {
	cmd.Execute()
}
