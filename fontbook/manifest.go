package fontbook

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
	"github.com/glyphwise/textprep/script"
)

// ErrManifestLoad wraps every failure to read or decode a manifest file.
// It is fatal at process startup — the engine cannot operate without a
// manifest — but never fatal for an in-flight request once a manifest
// has been loaded.
var ErrManifestLoad = errors.New("font manifest unusable")

// Shaping values for FamilyRecord.Shaping.
const (
	// ShapingNone marks families without contextual shaping requirements.
	ShapingNone = "none"
	// ShapingComplex marks families whose scripts need positioning and
	// substitution tables (Thai mark stacking, Arabic joining). Resources
	// of such families must carry intact GSUB and GPOS tables.
	ShapingComplex = "complex"
)

// Resource references one font file of a family, typically one per weight.
type Resource struct {
	Weight string `json:"weight"`
	Path   string `json:"path"`
}

// FamilyRecord is one manifest entry: a font family, the scripts it
// serves, and the integrity data its resources are verified against.
type FamilyRecord struct {
	FamilyID  string     `json:"family_id"`
	Scripts   []string   `json:"scripts"`
	Shaping   string     `json:"shaping,omitempty"` // ShapingNone (default) or ShapingComplex
	SHA256    string     `json:"sha256"`            // hex digest over resource bytes, in listed order
	SizeBytes int64      `json:"size_bytes"`        // declared total size of all resources
	Resources []Resource `json:"resources"`
}

// ScriptSet parses the record's script names into a category set.
// Unknown names are skipped; Validate reports them.
func (rec *FamilyRecord) ScriptSet() script.Set {
	var s script.Set
	for _, name := range rec.Scripts {
		if cat, ok := script.ParseCategory(name); ok {
			s = s.Add(cat)
		}
	}
	return s
}

// Manifest is the at-rest registry of font families. Record order is
// significant: when several families cover a script, the earlier one is
// preferred.
type Manifest struct {
	DefaultFamily string         `json:"default_family"`
	Families      []FamilyRecord `json:"families"`

	baseDir string // resource paths resolve relative to the manifest file
}

// Load reads and decodes a manifest file. Relative resource paths in the
// manifest resolve against the manifest file's directory.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifestLoad, err)
	}
	m, err := Decode(data)
	if err != nil {
		return nil, err
	}
	m.baseDir = filepath.Dir(path)
	return m, nil
}

// Decode parses manifest JSON. Resource paths are taken as given; use
// Load to anchor relative paths at the manifest location.
func Decode(data []byte) (*Manifest, error) {
	var m Manifest
	if err := sonic.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifestLoad, err)
	}
	return &m, nil
}

// Record returns the manifest entry for a family id, or nil.
func (m *Manifest) Record(familyID string) *FamilyRecord {
	for i := range m.Families {
		if m.Families[i].FamilyID == familyID {
			return &m.Families[i]
		}
	}
	return nil
}

// resourcePath resolves a resource reference against the manifest location.
func (m *Manifest) resourcePath(res Resource) string {
	if m.baseDir == "" || filepath.IsAbs(res.Path) {
		return res.Path
	}
	return filepath.Join(m.baseDir, res.Path)
}

// Validate checks manifest invariants before any resource is touched:
// a declared and present default family, unique family ids, resources
// and known script names on every record, and a default that carries the
// scripts every uncovered category falls back to.
func (m *Manifest) Validate() error {
	if m.DefaultFamily == "" {
		return fmt.Errorf("%w: no default family declared", ErrManifestLoad)
	}
	def := m.Record(m.DefaultFamily)
	if def == nil {
		return fmt.Errorf("%w: default family %q has no record", ErrManifestLoad, m.DefaultFamily)
	}
	if s := def.ScriptSet(); !s.Has(script.Latin) || !s.Has(script.Thai) {
		return fmt.Errorf("%w: default family %q must cover Thai and Latin, covers %v",
			ErrManifestLoad, m.DefaultFamily, s)
	}
	seen := make(map[string]bool, len(m.Families))
	for i := range m.Families {
		rec := &m.Families[i]
		if rec.FamilyID == "" {
			return fmt.Errorf("%w: record %d has no family id", ErrManifestLoad, i)
		}
		if seen[rec.FamilyID] {
			return fmt.Errorf("%w: duplicate family id %q", ErrManifestLoad, rec.FamilyID)
		}
		seen[rec.FamilyID] = true
		if len(rec.Resources) == 0 {
			return fmt.Errorf("%w: family %q lists no resources", ErrManifestLoad, rec.FamilyID)
		}
		if rec.Shaping != "" && rec.Shaping != ShapingNone && rec.Shaping != ShapingComplex {
			return fmt.Errorf("%w: family %q has unknown shaping mode %q",
				ErrManifestLoad, rec.FamilyID, rec.Shaping)
		}
		for _, name := range rec.Scripts {
			if _, ok := script.ParseCategory(name); !ok {
				return fmt.Errorf("%w: family %q lists unknown script %q",
					ErrManifestLoad, rec.FamilyID, name)
			}
		}
		if rec.ScriptSet().IsEmpty() {
			return fmt.Errorf("%w: family %q serves no scripts", ErrManifestLoad, rec.FamilyID)
		}
	}
	return nil
}
