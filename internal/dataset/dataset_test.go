package dataset

import (
	"strings"
	"testing"
)

const sampleData = `# literary quote dataset
0900|Hello ^world^.|Book|Author|tag
9:05|Five past ^nine^.|Another Book|Someone|morning
09:45|Quarter to ten, ^nearly^.|Third Book|Else|morning

# duplicate slot: rotates by hour
12:00|First ^noon^ quote.|Noon One|A|noon
12:00|Second ^noon^ quote.|Noon Two|B|noon
bad line without enough fields
25:00|Impossible hour.|X|Y|z
09:99|Impossible minute.|X|Y|z
notatime|Nope.|X|Y|z
`

func TestLoad(t *testing.T) {
	ix := Load(strings.NewReader(sampleData))

	if got, want := ix.Len(), 5; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}

	wantKeys := []string{"09:00", "09:05", "09:45", "12:00"}
	gotKeys := ix.Keys()
	if len(gotKeys) != len(wantKeys) {
		t.Fatalf("Keys() = %v, want %v", gotKeys, wantKeys)
	}
	for i, k := range wantKeys {
		if gotKeys[i] != k {
			t.Errorf("Keys()[%d] = %q, want %q", i, gotKeys[i], k)
		}
	}

	if recs := ix.At("12:00"); len(recs) != 2 {
		t.Errorf("At(12:00) has %d records, want 2 (file order preserved)", len(recs))
	} else if recs[0].Work != "Noon One" || recs[1].Work != "Noon Two" {
		t.Errorf("At(12:00) order = %q, %q; want Noon One, Noon Two", recs[0].Work, recs[1].Work)
	}
}

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"0900", "09:00", true},
		{"9:05", "09:05", true},
		{"09:05", "09:05", true},
		{" 23:59 ", "23:59", true},
		{"00:00", "00:00", true},
		{"24:00", "", false},
		{"12:60", "", false},
		{"1234x", "", false},
		{"12345", "", false},
		{"", "", false},
		{"ab:cd", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := NormalizeTime(tt.in)
			if got != tt.want || ok != tt.ok {
				t.Errorf("NormalizeTime(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	ix := LoadFile("testdata/does-not-exist.txt")
	if ix.Len() != 0 {
		t.Errorf("missing file should load as empty index, got %d records", ix.Len())
	}
}

func TestLoadFileOrFallback(t *testing.T) {
	ix := LoadFileOrFallback("testdata/does-not-exist.txt")
	if ix.Len() == 0 {
		t.Fatal("fallback index must never be empty")
	}
	keys := ix.Keys()
	if len(keys) != 2 || keys[0] != "00:00" || keys[1] != "12:00" {
		t.Errorf("fallback keys = %v, want [00:00 12:00]", keys)
	}
}

func TestPickExact(t *testing.T) {
	ix := Load(strings.NewReader(sampleData))
	rec := ix.Pick(9, 0, 5)
	if rec.Text != "Hello ^world^." {
		t.Errorf("Pick(9, 0) = %q, want the 09:00 record", rec.Text)
	}
}

func TestPickBucketFallback(t *testing.T) {
	ix := Load(strings.NewReader(sampleData))
	// No record at 09:47; quantized to the 5-minute bucket 09:45.
	rec := ix.Pick(9, 47, 5)
	if rec.Work != "Third Book" {
		t.Errorf("Pick(9, 47) = %+v, want the 09:45 record", rec)
	}
}

func TestPickLastResort(t *testing.T) {
	ix := Load(strings.NewReader(sampleData))
	// Nothing at 03:17 or 03:15: falls through to the smallest key, 09:00.
	rec := ix.Pick(3, 17, 5)
	if rec.Work != "Book" {
		t.Errorf("Pick(3, 17) = %+v, want the 09:00 record", rec)
	}
}

func TestPickHourlyRotation(t *testing.T) {
	ix := Load(strings.NewReader(sampleData))
	even := ix.Pick(12, 0, 5)
	odd := ix.Pick(13, 0, 5)
	if even.Work != "Noon One" {
		t.Errorf("even hour at 12:00 = %q, want Noon One", even.Work)
	}
	if odd.Work != "Noon Two" {
		t.Errorf("odd hour at 12:00 = %q, want Noon Two", odd.Work)
	}
	// The rotation is hour-only: the same hour always yields the same record.
	if again := ix.Pick(12, 0, 5); again.Work != even.Work {
		t.Errorf("rotation not deterministic: %q vs %q", again.Work, even.Work)
	}
}

func TestPickNeverFails(t *testing.T) {
	ix := NewIndex()
	// Even a (forbidden) empty index must not panic.
	_ = ix.Pick(10, 30, 5)

	ix = Fallback()
	for hour := 0; hour < 24; hour++ {
		for _, minute := range []int{0, 13, 47, 59} {
			_ = ix.Pick(hour, minute, 5)
		}
	}
}

func TestAddRejectsBadKey(t *testing.T) {
	ix := NewIndex()
	if err := ix.Add("26:00", Record{Text: "x"}); err == nil {
		t.Error("Add(26:00) should fail")
	}
	if err := ix.Add("0900", Record{Text: "x"}); err != nil {
		t.Errorf("Add(0900) should normalize, got %v", err)
	}
	if got := ix.At("09:00"); len(got) != 1 {
		t.Errorf("record not filed under normalized key: %v", ix.Keys())
	}
}
