package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akerr/inkclock/internal/app"
	"github.com/akerr/inkclock/internal/config"
	"github.com/akerr/inkclock/internal/dataset"
	"github.com/akerr/inkclock/internal/markup"
	"github.com/akerr/inkclock/internal/render"
)

// runLookup resolves and prints the quote the clock would show at the
// given time, including which fallback path (if any) was taken.
func runLookup(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: quotes lookup <path> <HH:MM>")
	}
	path, at := args[0], args[1]

	key, ok := dataset.NormalizeTime(at)
	if !ok {
		return fmt.Errorf("bad time %q, want HH:MM", at)
	}
	hour, _ := strconv.Atoi(key[:2])
	minute, _ := strconv.Atoi(key[3:])

	cfg := config.Load()
	ix := app.LoadDataset(path)
	rec := ix.Pick(hour, minute, cfg.UpdateMinutes)

	bucketKey := dataset.TimeKey(hour, render.Bucket(minute, cfg.UpdateMinutes))
	switch {
	case len(ix.At(key)) > 0:
		fmt.Printf("%s: exact match\n", key)
	case len(ix.At(bucketKey)) > 0:
		fmt.Printf("%s: bucket fallback to %s\n", key, bucketKey)
	default:
		fmt.Printf("%s: last-resort fallback\n", key)
	}

	pre, mid, post, found := markup.Split(rec.Text)
	if found {
		fmt.Printf("quote:  %s[%s]%s\n", markup.Sanitize(pre), markup.Sanitize(mid), markup.Sanitize(post))
	} else {
		fmt.Printf("quote:  %s\n", markup.Sanitize(strings.TrimSpace(pre)))
	}
	fmt.Printf("work:   %s\nauthor: %s\ntag:    %s\n", rec.Work, rec.Author, rec.Tag)
	return nil
}
