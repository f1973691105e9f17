// Command quotes is the dataset maintenance CLI.
//
// Usage:
//
//	quotes                         Show help
//	quotes validate <file>         Parse a text dataset and report what loads
//	quotes import <file> <db>      Import a text dataset into a quote database
//	quotes stats <db>              Record/slot/tag statistics
//	quotes lookup <path> <HH:MM>   Resolve the quote shown at a given time
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const usage = `quotes - inkclock dataset maintenance CLI

Usage:
  quotes <command> [args]

Commands:
  validate <file>        Parse a text dataset and report what loads
  import <file> <db>     Import a text dataset into a quote database
  stats <db>             Record/slot/tag statistics for a database
  lookup <path> <HH:MM>  Resolve the quote shown at a given time

The dataset format is one record per line:
  HHMM_or_HH:MM|quote text with optional ^highlight^|work|author|tag
Lines starting with '#' and blank lines are ignored.
`

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(0)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "validate":
		err = runValidate(args)
	case "import":
		err = runImport(args)
	case "stats":
		err = runStats(args)
	case "lookup":
		err = runLookup(args)
	case "-h", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "quotes: unknown command %q\n\n", cmd)
		fmt.Print(usage)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "quotes: %v\n", err)
		os.Exit(1)
	}
}
