package fontbook

import (
	"errors"
	"fmt"
	"sync"

	"github.com/glyphwise/textprep/script"
)

// ErrFamilyExcluded marks a family that failed verification and was
// removed from the usable set for the process lifetime.
var ErrFamilyExcluded = errors.New("font family excluded by verification")

// Family is one verified font family, immutable after population.
type Family struct {
	ID        string
	Scripts   script.Set
	Shaping   string // ShapingNone or ShapingComplex
	Resources []LoadedResource
}

// Option configures a Book.
type Option func(*bookOptions)

type bookOptions struct {
	sizeCeiling int64
	tableChecks bool
}

// WithSizeCeiling bounds the number of bytes read per font resource.
func WithSizeCeiling(n int64) Option {
	return func(o *bookOptions) {
		o.sizeCeiling = n
	}
}

// WithoutTableChecks disables SFNT parsing and shaping-table inspection
// during verification. Hash and size checks remain active. Intended for
// tests that exercise the manifest plumbing with synthetic resources.
func WithoutTableChecks() Option {
	return func(o *bookOptions) {
		o.tableChecks = false
	}
}

// Book is the process-wide font registry: a validated manifest plus a
// cache of verified families, populated lazily on first use.
//
// Population follows a single-writer discipline: the first request for a
// family performs load + verification once, concurrent requests for the
// same family block on that one population, and every later request
// reads the immutable cached outcome without redundant work. A Book is
// an explicit, injectable object — create one per process, or one per
// test, and pass it to callers; there is no ambient singleton.
type Book struct {
	manifest *Manifest
	opts     bookOptions

	mu    sync.Mutex
	loads map[string]*familyLoad
}

type familyLoad struct {
	once   sync.Once
	family *Family
	report *Report
	err    error
}

// NewBook validates the manifest and returns an empty Book over it.
// No font resource is touched until a family is first requested.
func NewBook(m *Manifest, opts ...Option) (*Book, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	options := bookOptions{tableChecks: true}
	for _, opt := range opts {
		opt(&options)
	}
	return &Book{
		manifest: m,
		opts:     options,
		loads:    make(map[string]*familyLoad),
	}, nil
}

// Open loads a manifest file and builds a Book over it.
func Open(path string, opts ...Option) (*Book, error) {
	m, err := Load(path)
	if err != nil {
		return nil, err
	}
	return NewBook(m, opts...)
}

// Manifest returns the validated manifest the Book serves.
func (bk *Book) Manifest() *Manifest {
	return bk.manifest
}

// DefaultFamily returns the id of the fallback family.
func (bk *Book) DefaultFamily() string {
	return bk.manifest.DefaultFamily
}

// Family returns the verified family for an id, loading and verifying it
// on first use. A family that failed verification returns
// ErrFamilyExcluded together with the verification report; the outcome
// is cached either way and stable for the process lifetime.
func (bk *Book) Family(id string) (*Family, *Report, error) {
	rec := bk.manifest.Record(id)
	if rec == nil {
		return nil, nil, fmt.Errorf("no manifest record for family %q", id)
	}
	load := bk.loadSlot(id)
	load.once.Do(func() {
		tracer().Debugf("verifying font family %q", id)
		load.family, load.report = verifyRecord(bk.manifest, rec, bk.opts.sizeCeiling, bk.opts.tableChecks)
		for _, f := range load.report.Findings() {
			switch f.Severity {
			case SeverityCritical:
				tracer().Errorf("%s", f.Error())
			case SeverityMajor:
				tracer().Infof("%s", f.Error())
			default:
				tracer().Debugf("%s", f.Error())
			}
		}
		if load.family == nil {
			load.err = fmt.Errorf("%w: %s", ErrFamilyExcluded, id)
		}
	})
	return load.family, load.report, load.err
}

func (bk *Book) loadSlot(id string) *familyLoad {
	bk.mu.Lock()
	defer bk.mu.Unlock()
	load, ok := bk.loads[id]
	if !ok {
		load = &familyLoad{}
		bk.loads[id] = load
	}
	return load
}

// VerifyAll eagerly loads and verifies every family in the manifest and
// returns the combined report. Used by standalone verification tooling;
// the library path prefers lazy per-family loading.
func (bk *Book) VerifyAll() *Report {
	combined := &Report{}
	for i := range bk.manifest.Families {
		_, report, _ := bk.Family(bk.manifest.Families[i].FamilyID)
		if report != nil {
			combined.merge(report)
		}
	}
	return combined
}

// Reset drops all cached verification outcomes, forcing reverification
// on next use. For tests; production books live as long as the process.
func (bk *Book) Reset() {
	bk.mu.Lock()
	defer bk.mu.Unlock()
	bk.loads = make(map[string]*familyLoad)
}

// Usable reports whether a family is loadable and passed verification.
func (bk *Book) Usable(id string) bool {
	fam, _, err := bk.Family(id)
	return err == nil && fam != nil
}
