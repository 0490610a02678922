// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"os/user"

	"smir/internal/host"
	"smir/repl"
)

func main() {
	currentUser, err := user.Current()
	if err != nil {
		fmt.Printf("Error getting current user: %v\n", err)
		return
	}

	fmt.Printf("Welcome to the smir explorer, %s!\n", currentUser.Username)
	fmt.Println("Loaded the demo context; try: items, print double, ty double _1")
	repl.Start(os.Stdin, os.Stdout, host.DemoFixture())
}
