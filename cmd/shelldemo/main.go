// Command shelldemo runs a stock chart shell in an SDL window.
//
// It launches into the chart page with the first symbol, opens the remaining
// symbols on top of it and walks back through them on Alt+Left, the back key,
// a controller back button or the hardware back button of a handheld.
package main

import (
	"fmt"
	"os"
	"runtime"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
