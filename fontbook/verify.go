package fontbook

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/glyphwise/textprep/internal/fontload"
)

// MinComplexResourceBytes is the size below which a resource of a
// complex-shaping family is considered suspect: rich positioning and
// substitution tables do not fit into a file this small.
const MinComplexResourceBytes = 40 * 1024

// LoadedResource is one verified, in-memory font resource.
type LoadedResource struct {
	Weight   string
	Path     string
	Data     []byte
	FullName string // from the font's name table, empty if unavailable
	Suspect  bool   // undersized for a complex-shaping family
}

// verifyRecord loads and verifies every resource of one manifest record.
// It returns the verified family, or nil when a critical finding
// excludes the record. All findings, critical or not, land in the report.
func verifyRecord(m *Manifest, rec *FamilyRecord, sizeCeiling int64, tableChecks bool) (*Family, *Report) {
	report := &Report{}
	resources := make([]LoadedResource, 0, len(rec.Resources))
	hasher := sha256.New()
	var totalSize int64
	for _, res := range rec.Resources {
		path := m.resourcePath(res)
		data, err := fontload.ReadResource(path, sizeCeiling)
		if err != nil {
			report.add(rec.FamilyID, path, fmt.Sprintf("cannot read resource: %v", err), SeverityCritical)
			return nil, report
		}
		hasher.Write(data)
		totalSize += int64(len(data))
		resources = append(resources, LoadedResource{
			Weight: res.Weight,
			Path:   path,
			Data:   data,
		})
	}

	if rec.SizeBytes > 0 && totalSize != rec.SizeBytes {
		report.add(rec.FamilyID, "",
			fmt.Sprintf("declared size %d differs from actual %d", rec.SizeBytes, totalSize),
			SeverityMajor)
	}
	digest := hex.EncodeToString(hasher.Sum(nil))
	if !strings.EqualFold(digest, rec.SHA256) {
		report.add(rec.FamilyID, "",
			fmt.Sprintf("content hash mismatch: manifest declares %s, resources hash to %s",
				rec.SHA256, digest),
			SeverityCritical)
		return nil, report
	}

	needsShaping := rec.Shaping == ShapingComplex
	for i := range resources {
		res := &resources[i]
		if tableChecks {
			if err := checkTables(res.Data, needsShaping); err != nil {
				report.add(rec.FamilyID, res.Path, err.Error(), SeverityCritical)
				return nil, report
			}
		}
		if needsShaping && int64(len(res.Data)) < MinComplexResourceBytes {
			res.Suspect = true
			report.add(rec.FamilyID, res.Path,
				fmt.Sprintf("suspiciously small (%d bytes) for a complex-shaping script", len(res.Data)),
				SeverityMajor)
		}
		if name, err := fontload.FullName(res.Data); err == nil {
			res.FullName = name
		} else {
			report.add(rec.FamilyID, res.Path,
				fmt.Sprintf("font name unavailable: %v", err), SeverityMinor)
		}
	}

	fam := &Family{
		ID:        rec.FamilyID,
		Scripts:   rec.ScriptSet(),
		Shaping:   rec.Shaping,
		Resources: resources,
	}
	return fam, report
}

// checkTables verifies that resource bytes parse as an SFNT stream and,
// for complex-shaping families, that the GSUB and GPOS tables are present
// and non-empty. Stripped shaping tables are the single most common cause
// of overlapping-marks defects, so their absence is a hard failure.
func checkTables(data []byte, needsShaping bool) error {
	loader, err := ot.NewLoader(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("not a parseable font resource: %v", err)
	}
	if !needsShaping {
		return nil
	}
	for _, tag := range []string{"GSUB", "GPOS"} {
		table, err := loader.RawTable(ot.MustNewTag(tag))
		if err != nil || len(table) == 0 {
			return fmt.Errorf("shaping table %s missing or empty; tables must not be stripped", tag)
		}
	}
	return nil
}

// PreferredResource returns the resource to embed for a weight. When the
// weight's primary resource is suspect and the record lists a non-suspect
// alternate for the same weight, the alternate wins.
func (fam *Family) PreferredResource(weight string) *LoadedResource {
	var fallback *LoadedResource
	for i := range fam.Resources {
		res := &fam.Resources[i]
		if res.Weight != weight {
			continue
		}
		if !res.Suspect {
			return res
		}
		if fallback == nil {
			fallback = res
		}
	}
	return fallback
}
