package olk

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/hshore29/pyolk/decoder"
	"github.com/hshore29/pyolk/schema"
)

// ExportSet aggregates decoded records the way the (external) index loader
// would merge them before handing them to folder reconstruction or an
// emitter: one bucket per entity class name, plus a separate bucket for
// blocks. It doesn't implement that merge itself — it only models the
// shape the decoder hands off to it.
type ExportSet struct {
	ByClass map[string][]*Record
	Blocks  []*Record

	// Errors records, per source path, any error LoadDir hit decoding that
	// file. A malformed record file is skipped rather than aborting the
	// whole directory load.
	Errors map[string]error
}

// NewExportSet returns an empty set ready for Add.
func NewExportSet() *ExportSet {
	return &ExportSet{
		ByClass: make(map[string][]*Record),
		Errors:  make(map[string]error),
	}
}

// Add files a decoded record into its class bucket (entities) or the block
// bucket, keyed by the class name carried on its schema.
func (s *ExportSet) Add(className string, rec *Record) {
	if className == "" {
		s.Blocks = append(s.Blocks, rec)
		return
	}
	s.ByClass[className] = append(s.ByClass[className], rec)
}

// LoadDir decodes every regular file in dir (non-recursive) and returns
// the aggregated set. Per-file decode failures are recorded in
// set.Errors and otherwise don't stop the walk.
func LoadDir(dir string) (*ExportSet, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("olk: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	set := NewExportSet()
	for _, name := range names {
		path := filepath.Join(dir, name)
		rec, err := LoadFile(path)
		if err != nil {
			set.Errors[path] = err
			continue
		}
		set.Add(classNameForRecord(rec), rec)
	}
	return set, nil
}

// classNameForRecord returns the schema class name for an entity record,
// or "" for a block record (blocks carry no class-id).
func classNameForRecord(rec *Record) string {
	if rec.Kind != decoder.KindEntity {
		return ""
	}
	if sch, ok := schema.ClassToSchema[rec.ClassID]; ok {
		return sch.Class
	}
	return ""
}
