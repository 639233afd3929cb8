// Command timerdemo sleeps for two seconds and prints how long it took.
//
// Usage:
//
//	timerdemo
//
// Output:
//
//	Execution time: 2.00011 seconds
package main

import (
	"log"
	"os"

	"github.com/katalvlaran/labworks/timer"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("timerdemo: ")

	if err := timer.Run(os.Stdout); err != nil {
		log.Fatalf("run: %v", err)
	}
}
