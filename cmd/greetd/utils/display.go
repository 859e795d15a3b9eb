// Package utils contains utility functions for the greet daemon.
package utils

import (
	"fmt"
)

// DisplayLogo prints the Greet ASCII logo with version information
func DisplayLogo(version string) {
	fmt.Println()
	fmt.Println(` ░░░░░░░░░░░░░░░░░░░░░
 ░█▀▀░█▀▄░█▀▀░█▀▀░▀█▀░
 ░█░█░█▀▄░█▀▀░█▀▀░░█░░
 ░▀▀▀░▀░▀░▀▀▀░▀▀▀░░▀░░
 ░░░░░░░░░░░░░░░░░░░░░`)
	fmt.Printf("\n Greet v%s - Hello World HTTP Service\n", version)
	fmt.Println(" Tiny greeting server with port retry and fallback")
	fmt.Println()
}
