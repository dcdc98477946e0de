package ruleconv

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/kelsenlab/ruleconv/blobstore"
	"github.com/kelsenlab/ruleconv/export"
	"github.com/kelsenlab/ruleconv/pattern"
	"github.com/kelsenlab/ruleconv/zdd"
)

// corpusFileRe matches corpus blobs: zdd_<n>.bin with an optional
// compression extension.
var corpusFileRe = regexp.MustCompile(`^zdd_(\d+)\.bin(?:\.zst|\.lz4)?$`)

// File is one decoded corpus member.
type File struct {
	ID        int
	Name      string
	Structure *zdd.Structure
}

// Corpus is an immutable set of decoded ZDD files, ordered by numeric ID.
type Corpus struct {
	files     []File
	thesisMap map[int]string
	logger    *Logger
}

// Open discovers and decodes every zdd_<n>.bin blob in the store.
func Open(ctx context.Context, store blobstore.Store, opts ...Option) (*Corpus, error) {
	o := options{
		logger:      NoopLogger(),
		concurrency: 1,
	}
	for _, opt := range opts {
		opt(&o)
	}

	names, err := store.List(ctx, "zdd_")
	if err != nil {
		return nil, err
	}

	type member struct {
		id   int
		name string
	}
	var members []member
	for _, name := range names {
		m := corpusFileRe.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		id, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		members = append(members, member{id: id, name: name})
	}
	if len(members) == 0 {
		return nil, fmt.Errorf("%w in store", ErrNoFiles)
	}
	sort.Slice(members, func(i, j int) bool { return members[i].id < members[j].id })

	files := make([]File, len(members))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for i, m := range members {
		i, m := i, m
		g.Go(func() error {
			data, err := blobstore.ReadAll(gctx, store, m.name)
			if err != nil {
				return fmt.Errorf("read %s: %w", m.name, err)
			}
			s, err := zdd.DecodeNamed(m.name, bytes.NewReader(data))
			if err != nil {
				return &ErrDecodeFile{Name: m.name, cause: err}
			}
			o.logger.WithFile(m.name).Debug("decoded corpus file",
				"magic", s.MagicNumber,
				"arrays", s.NumArrays(),
			)
			files[i] = File{ID: m.id, Name: m.name, Structure: s}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	o.logger.Info("corpus opened", "files", len(files))
	return &Corpus{
		files:     files,
		thesisMap: o.thesisMap,
		logger:    o.logger,
	}, nil
}

// OpenDir opens a corpus from a local directory.
func OpenDir(ctx context.Context, dir string, opts ...Option) (*Corpus, error) {
	return Open(ctx, blobstore.NewLocalStore(dir), opts...)
}

// Files returns the corpus members ordered by ID.
func (c *Corpus) Files() []File { return c.files }

// Len returns the number of corpus files.
func (c *Corpus) Len() int { return len(c.files) }

// Sources adapts the corpus for the export package, labeling each file with
// its thesis number where mapped.
func (c *Corpus) Sources() []export.Source {
	out := make([]export.Source, len(c.files))
	for i, f := range c.files {
		out[i] = export.Source{
			ID:        f.ID,
			Thesis:    c.thesisMap[f.ID],
			Structure: f.Structure,
		}
	}
	return out
}

// Summary computes corpus-level statistics.
func (c *Corpus) Summary() export.Summary {
	return export.Summarize(c.Sources())
}

// Patterns aggregates every array into the cross-file signature table.
func (c *Corpus) Patterns() *pattern.Analyzer {
	a := pattern.NewAnalyzer()
	for _, f := range c.files {
		a.Add(f.ID, f.Structure)
	}
	return a
}

// WriteCompleteCSV writes one CSV row per array element.
func (c *Corpus) WriteCompleteCSV(w io.Writer) error {
	return export.WriteCompleteCSV(w, c.Sources())
}

// WriteArraySummaryCSV writes one CSV row per array.
func (c *Corpus) WriteArraySummaryCSV(w io.Writer) error {
	return export.WriteArraySummaryCSV(w, c.Sources())
}

// WritePatternCSV writes one CSV row per distinct signature, most frequent
// first.
func (c *Corpus) WritePatternCSV(w io.Writer) error {
	return export.WritePatternCSV(w, c.Sources())
}

// WriteText writes all corpus arrays as one text document with per-file
// separator blocks.
func (c *Corpus) WriteText(w io.Writer) error {
	names := make([]string, len(c.files))
	structures := make([]*zdd.Structure, len(c.files))
	for i, f := range c.files {
		names[i] = f.Name
		structures[i] = f.Structure
	}
	return zdd.WriteTextMulti(w, names, structures)
}
