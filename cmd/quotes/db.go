package main

import (
	"fmt"
	"sort"

	"github.com/akerr/inkclock/internal/dataset"
	"github.com/akerr/inkclock/internal/store"
)

// runImport loads a text dataset and writes it into a quote database,
// replacing whatever the database held.
func runImport(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: quotes import <file> <db>")
	}
	src, dbPath := args[0], args[1]

	ix := dataset.LoadFile(src)
	if ix.Len() == 0 {
		return fmt.Errorf("nothing loaded from %s", src)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	n, err := st.Import(ix)
	if err != nil {
		return err
	}
	fmt.Printf("imported %d records on %d slots into %s\n", n, len(ix.Keys()), dbPath)
	return nil
}

// runStats prints record/slot counts and the tag distribution.
func runStats(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: quotes stats <db>")
	}

	st, err := store.Open(args[0])
	if err != nil {
		return err
	}
	defer st.Close()

	stats, err := st.Stats()
	if err != nil {
		return err
	}

	fmt.Printf("records: %d\nslots:   %d\n", stats.Records, stats.Slots)
	if len(stats.ByTag) > 0 {
		tags := make([]string, 0, len(stats.ByTag))
		for tag := range stats.ByTag {
			tags = append(tags, tag)
		}
		sort.Strings(tags)
		fmt.Println("tags:")
		for _, tag := range tags {
			fmt.Printf("  %-16s %d\n", tag, stats.ByTag[tag])
		}
	}
	return nil
}
