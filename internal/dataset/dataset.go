// Package dataset loads the pipe-delimited quote file and resolves which
// quote belongs to a given wall-clock time.
//
// A dataset line is `time|text|work|author|tag` where time is HHMM, H:MM
// or HH:MM. Blank lines and lines starting with '#' are ignored, and a
// malformed line never fails the load; it is simply dropped. A source
// that yields nothing at all is answered with a tiny built-in index so
// callers can rely on the index never being empty.
package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// fieldCount is the number of pipe-delimited fields per record.
const fieldCount = 5

// Record is one quote and its attribution. Text may still contain the
// caret highlight markup; it is preserved so the layout engine can bold
// the time phrase later.
type Record struct {
	Text   string
	Work   string
	Author string
	Tag    string
}

// Index maps normalized "HH:MM" keys to the quotes filed under them.
// Built once at load time and read-only afterwards. Records keep dataset
// file order within a key.
type Index struct {
	byTime map[string][]Record
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{byTime: make(map[string][]Record)}
}

// Add files rec under the given key. The key must already be normalized;
// anything that does not parse as HH:MM is rejected.
func (ix *Index) Add(key string, rec Record) error {
	norm, ok := NormalizeTime(key)
	if !ok {
		return fmt.Errorf("invalid time key %q", key)
	}
	ix.byTime[norm] = append(ix.byTime[norm], rec)
	return nil
}

// Len returns the total number of records across all keys.
func (ix *Index) Len() int {
	n := 0
	for _, recs := range ix.byTime {
		n += len(recs)
	}
	return n
}

// Keys returns all time keys in lexicographic (= chronological) order.
func (ix *Index) Keys() []string {
	keys := make([]string, 0, len(ix.byTime))
	for k := range ix.byTime {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// At returns the records filed under key, in dataset order.
func (ix *Index) At(key string) []Record {
	return ix.byTime[key]
}

// Walk visits every record in chronological key order, dataset order
// within a key.
func (ix *Index) Walk(fn func(key string, rec Record)) {
	for _, k := range ix.Keys() {
		for _, rec := range ix.byTime[k] {
			fn(k, rec)
		}
	}
}

// Pick resolves the quote for the given time. Lookup order:
//
//  1. exact "HH:MM" match
//  2. the minute quantized down to the bucket width
//  3. the lexicographically smallest key as a last resort
//
// Step 3 should be unreachable while the never-empty invariant holds,
// but Pick must not fail, so it is deterministic rather than whatever
// map iteration happens to yield. When a key holds several records the
// hour rotates among them, so the same slot shows a different quote at
// 09:47 than at 10:47.
func (ix *Index) Pick(hour, minute, bucketMinutes int) Record {
	key := TimeKey(hour, minute)
	recs := ix.byTime[key]
	if len(recs) == 0 && bucketMinutes > 0 {
		recs = ix.byTime[TimeKey(hour, minute/bucketMinutes*bucketMinutes)]
	}
	if len(recs) == 0 {
		keys := ix.Keys()
		if len(keys) == 0 {
			return Record{}
		}
		recs = ix.byTime[keys[0]]
	}
	return recs[hour%len(recs)]
}

// TimeKey formats an hour/minute pair as a zero-padded "HH:MM" key.
func TimeKey(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// NormalizeTime turns HHMM, H:MM or HH:MM into a zero-padded "HH:MM"
// key. It reports false for anything that does not name a valid
// 24-hour time.
func NormalizeTime(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 4 && !strings.Contains(s, ":") {
		s = s[:2] + ":" + s[2:]
	}
	if len(s) == 4 && s[1] == ':' {
		s = "0" + s
	}
	if len(s) != 5 || s[2] != ':' {
		return "", false
	}
	hour, err := strconv.Atoi(s[:2])
	if err != nil {
		return "", false
	}
	minute, err := strconv.Atoi(s[3:])
	if err != nil {
		return "", false
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return "", false
	}
	return TimeKey(hour, minute), true
}

// Load reads pipe-delimited records from r. Malformed lines are dropped;
// Load itself never fails. The caller decides whether an empty result
// warrants the fallback index.
func Load(r io.Reader) *Index {
	ix := NewIndex()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "|", fieldCount)
		if len(parts) < fieldCount {
			continue
		}
		key, ok := NormalizeTime(parts[0])
		if !ok {
			continue
		}
		ix.byTime[key] = append(ix.byTime[key], Record{
			Text:   parts[1],
			Work:   parts[2],
			Author: parts[3],
			Tag:    parts[4],
		})
	}
	// Scanner errors leave us with whatever parsed so far; a partial
	// index still beats a blank screen.
	return ix
}

// LoadFile reads a dataset from disk. A missing or unreadable file
// yields an empty index, never an error; the device has no better place
// to report one than the display itself.
func LoadFile(path string) *Index {
	f, err := os.Open(path)
	if err != nil {
		return NewIndex()
	}
	defer f.Close()
	return Load(f)
}

// Fallback is the hard-coded index substituted when the real dataset is
// missing or fully malformed. Two entries keep the clock alive around
// the clock face.
func Fallback() *Index {
	ix := NewIndex()
	ix.byTime["00:00"] = []Record{{Text: "^Midnight^.", Work: "Fallback", Author: "System", Tag: "unknown"}}
	ix.byTime["12:00"] = []Record{{Text: "High ^noon^.", Work: "Fallback", Author: "System", Tag: "unknown"}}
	return ix
}

// LoadFileOrFallback loads path and substitutes the fallback index when
// the result is empty, upholding the never-empty invariant in one call.
func LoadFileOrFallback(path string) *Index {
	ix := LoadFile(path)
	if ix.Len() == 0 {
		return Fallback()
	}
	return ix
}
