package fontbook

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// fixtureFamily describes one synthetic family for buildFixture.
type fixtureFamily struct {
	id        string
	scripts   []string
	shaping   string
	resources map[string][]byte // weight -> bytes
	badHash   bool              // declare a corrupted content hash
	badSize   bool              // declare a wrong byte size
}

// buildFixture writes resource files and a manifest into a temp dir and
// returns the loaded manifest.
func buildFixture(t *testing.T, defaultID string, families ...fixtureFamily) *Manifest {
	t.Helper()
	dir := t.TempDir()
	m := &Manifest{DefaultFamily: defaultID, baseDir: dir}
	for _, ff := range families {
		rec := FamilyRecord{
			FamilyID: ff.id,
			Scripts:  ff.scripts,
			Shaping:  ff.shaping,
		}
		hasher := sha256.New()
		// Deterministic resource order: sort weights for stable hashing.
		weights := make([]string, 0, len(ff.resources))
		for w := range ff.resources {
			weights = append(weights, w)
		}
		for i := 0; i < len(weights); i++ {
			for j := i + 1; j < len(weights); j++ {
				if weights[j] < weights[i] {
					weights[i], weights[j] = weights[j], weights[i]
				}
			}
		}
		for _, w := range weights {
			data := ff.resources[w]
			name := fmt.Sprintf("%s-%s.ttf", ff.id, w)
			if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
				t.Fatal(err)
			}
			hasher.Write(data)
			rec.SizeBytes += int64(len(data))
			rec.Resources = append(rec.Resources, Resource{Weight: w, Path: name})
		}
		rec.SHA256 = hex.EncodeToString(hasher.Sum(nil))
		if ff.badHash {
			rec.SHA256 = "deadbeef" + rec.SHA256[8:]
		}
		if ff.badSize {
			rec.SizeBytes += 1000
		}
		m.Families = append(m.Families, rec)
	}
	return m
}

func defaultFixture(t *testing.T, extra ...fixtureFamily) *Manifest {
	t.Helper()
	families := append([]fixtureFamily{{
		id:        "thai-latin-primary",
		scripts:   []string{"Thai", "Latin"},
		shaping:   ShapingComplex,
		resources: map[string][]byte{"regular": []byte("thai-latin regular bytes")},
	}}, extra...)
	return buildFixture(t, "thai-latin-primary", families...)
}

func TestBookLoadsVerifiedFamily(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textprep.fonts")
	defer teardown()
	//
	m := defaultFixture(t)
	bk, err := NewBook(m, WithoutTableChecks())
	if err != nil {
		t.Fatal(err)
	}
	fam, report, err := bk.Family("thai-latin-primary")
	if err != nil {
		t.Fatalf("family load failed: %v", err)
	}
	if fam.ID != "thai-latin-primary" {
		t.Errorf("unexpected family id %q", fam.ID)
	}
	if report.HasCritical() {
		t.Errorf("unexpected critical findings: %v", report.Findings())
	}
	if len(fam.Resources) != 1 || string(fam.Resources[0].Data) != "thai-latin regular bytes" {
		t.Errorf("resource bytes not loaded verbatim")
	}
}

func TestBookExcludesCorruptedFamily(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "textprep.fonts")
	defer teardown()
	//
	m := defaultFixture(t, fixtureFamily{
		id:        "hangul",
		scripts:   []string{"Hangul"},
		resources: map[string][]byte{"regular": []byte("hangul bytes")},
		badHash:   true,
	})
	bk, err := NewBook(m, WithoutTableChecks())
	if err != nil {
		t.Fatal(err)
	}
	fam, report, err := bk.Family("hangul")
	if !errors.Is(err, ErrFamilyExcluded) {
		t.Fatalf("expected ErrFamilyExcluded, got %v", err)
	}
	if fam != nil {
		t.Errorf("excluded family must not be returned")
	}
	if !report.HasCritical() {
		t.Errorf("expected a critical hash finding, got %v", report.Findings())
	}
	// The rest of the manifest stays usable.
	if !bk.Usable("thai-latin-primary") {
		t.Errorf("default family should remain usable")
	}
}

func TestBookSizeMismatchIsMajorNotFatal(t *testing.T) {
	m := defaultFixture(t, fixtureFamily{
		id:        "hangul",
		scripts:   []string{"Hangul"},
		resources: map[string][]byte{"regular": []byte("hangul bytes")},
		badSize:   true,
	})
	bk, err := NewBook(m, WithoutTableChecks())
	if err != nil {
		t.Fatal(err)
	}
	fam, report, err := bk.Family("hangul")
	if err != nil || fam == nil {
		t.Fatalf("size mismatch must not exclude the family: %v", err)
	}
	var sawMajor bool
	for _, f := range report.Findings() {
		if f.Severity == SeverityMajor {
			sawMajor = true
		}
	}
	if !sawMajor {
		t.Errorf("expected a major size finding, got %v", report.Findings())
	}
}

func TestBookSizeCeiling(t *testing.T) {
	m := defaultFixture(t)
	bk, err := NewBook(m, WithoutTableChecks(), WithSizeCeiling(4))
	if err != nil {
		t.Fatal(err)
	}
	_, report, err := bk.Family("thai-latin-primary")
	if !errors.Is(err, ErrFamilyExcluded) {
		t.Fatalf("oversized resource should exclude the family, got %v", err)
	}
	if !report.HasCritical() {
		t.Errorf("expected critical finding for oversized resource")
	}
}

func TestBookUnknownFamily(t *testing.T) {
	m := defaultFixture(t)
	bk, err := NewBook(m, WithoutTableChecks())
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := bk.Family("ghost"); err == nil {
		t.Errorf("expected error for unknown family id")
	}
}

func TestBookVerifiesOnceUnderConcurrentFirstUse(t *testing.T) {
	m := defaultFixture(t)
	bk, err := NewBook(m, WithoutTableChecks())
	if err != nil {
		t.Fatal(err)
	}
	var wg sync.WaitGroup
	fams := make([]*Family, 16)
	for i := range fams {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			fams[i], _, _ = bk.Family("thai-latin-primary")
		}(i)
	}
	wg.Wait()
	for i := 1; i < len(fams); i++ {
		if fams[i] != fams[0] {
			t.Fatalf("concurrent first use produced distinct family records")
		}
	}
}

func TestBookReset(t *testing.T) {
	m := defaultFixture(t)
	bk, err := NewBook(m, WithoutTableChecks())
	if err != nil {
		t.Fatal(err)
	}
	first, _, _ := bk.Family("thai-latin-primary")
	bk.Reset()
	second, _, _ := bk.Family("thai-latin-primary")
	if first == second {
		t.Errorf("Reset should force reverification")
	}
}

func TestVerifyAllCombinesReports(t *testing.T) {
	m := defaultFixture(t, fixtureFamily{
		id:        "hangul",
		scripts:   []string{"Hangul"},
		resources: map[string][]byte{"regular": []byte("hangul bytes")},
		badHash:   true,
	})
	bk, err := NewBook(m, WithoutTableChecks())
	if err != nil {
		t.Fatal(err)
	}
	report := bk.VerifyAll()
	if !report.HasCritical() {
		t.Errorf("combined report should carry the hangul hash finding")
	}
	if len(report.Critical()) != 1 {
		t.Errorf("expected exactly one critical finding, got %v", report.Critical())
	}
}
