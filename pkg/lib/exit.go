package lib

import (
	"fmt"
	"os"
)

// Exit prints the error and exits the program with code 1
func Exit(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}

// Exitf is Exit with extra hint lines printed after the error.
func Exitf(err error, hints ...string) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	for _, h := range hints {
		fmt.Fprintln(os.Stderr, h)
	}
	os.Exit(1)
}
