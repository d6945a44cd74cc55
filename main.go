package main

import "github.com/quickeats/dispatchsim/cmd"

func main() {
	cmd.Execute()
}
