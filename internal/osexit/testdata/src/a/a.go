package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("start")
	os.Exit(1) // want "direct call to os.Exit in main function of main package"

	defer func() {
		os.Exit(2) // want "direct call to os.Exit in main function of main package"
	}()
}

func exit() {
	os.Exit(3)
}
