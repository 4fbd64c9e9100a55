// Command palfind is the command-line front end of the palindromes module.
//
// Usage:
//
//	palfind string racecar level            # one result per argument
//	palfind grid --file board.txt           # rows, columns and both diagonals
//	palfind grid --random 100x100 --seed 7 --workers 4
//	palfind bench --max 10000000            # timing table + linear fit
//
// Global flags select the output format (text, json, yaml), the log level
// and an optional YAML config file that supplies flag defaults.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(exitUsage)
	}
}
