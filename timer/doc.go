// Package timer implements the sleep-and-measure demo: take a monotonic
// start time, block for a fixed duration (2 seconds by default), take the
// end time and print the difference in seconds.
//
// The report line is available in English (default) and Ukrainian:
//
//	Execution time: 2.00012 seconds
//	Час виконання: 2.00012 секунд
package timer
