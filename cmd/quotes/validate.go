package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/akerr/inkclock/internal/dataset"
)

// runValidate reports how much of a text dataset actually loads, and
// which lines the loader would drop.
func runValidate(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: quotes validate <file>")
	}
	path := args[0]

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var total, blank, dropped int
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" || strings.HasPrefix(line, "#") {
			blank++
			continue
		}
		total++
		parts := strings.SplitN(line, "|", 5)
		if len(parts) < 5 {
			dropped++
			fmt.Printf("line %d: dropped (%d fields, want 5)\n", lineNo, len(parts))
			continue
		}
		if _, ok := dataset.NormalizeTime(parts[0]); !ok {
			dropped++
			fmt.Printf("line %d: dropped (bad time %q)\n", lineNo, parts[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	ix := dataset.LoadFile(path)
	fmt.Printf("\n%d records on %d slots (%d candidate lines, %d dropped, %d blank/comment)\n",
		ix.Len(), len(ix.Keys()), total, dropped, blank)
	if ix.Len() == 0 {
		fmt.Println("warning: nothing loaded; the device would fall back to the built-in index")
	}
	return nil
}
