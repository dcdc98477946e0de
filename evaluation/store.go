package evaluation

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/kelsenlab/ruleconv/codec"
	"github.com/kelsenlab/ruleconv/internal/fs"
)

const (
	// IndexFileName is the bookkeeping file at the evaluations root.
	IndexFileName = "batch_index.json"

	filePerm = os.FileMode(0o644)
	dirPerm  = os.FileMode(0o755)
)

var (
	// ErrBatchNotFound is returned when a batch number is absent from the index.
	ErrBatchNotFound = errors.New("batch not found")
	// ErrNoPending is returned when an evaluator has completed every batch.
	ErrNoPending = errors.New("no pending batch")
)

var batchFileRe = regexp.MustCompile(`^batch_(\d+)\.json$`)

// Store manages the evaluations directory and atomic updates to its JSON
// artifacts. Safe for concurrent use.
type Store struct {
	fs    fs.FileSystem
	codec codec.Codec
	dir   string
	mu    sync.Mutex

	now func() time.Time // for tests
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithFileSystem overrides the file system (tests).
func WithFileSystem(fsys fs.FileSystem) StoreOption {
	return func(s *Store) { s.fs = fsys }
}

// WithCodec overrides the JSON codec. Nil selects codec.Default.
func WithCodec(c codec.Codec) StoreOption {
	return func(s *Store) {
		if c == nil {
			c = codec.Default
		}
		s.codec = c
	}
}

// NewStore creates a store rooted at the evaluations directory.
func NewStore(dir string, opts ...StoreOption) *Store {
	s := &Store{
		fs:    fs.Default,
		codec: codec.Default,
		dir:   dir,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) readJSON(path string, v any) error {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return err
	}
	if err := s.codec.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func (s *Store) writeJSON(path string, v any) error {
	data, err := s.codec.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return s.fs.WriteFileAtomic(path, append(data, '\n'), filePerm)
}

// LoadIndex reads batch_index.json.
func (s *Store) LoadIndex() (*Index, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadIndexLocked()
}

func (s *Store) loadIndexLocked() (*Index, error) {
	var idx Index
	if err := s.readJSON(filepath.Join(s.dir, IndexFileName), &idx); err != nil {
		return nil, err
	}
	return &idx, nil
}

// SaveIndex writes batch_index.json atomically.
func (s *Store) SaveIndex(idx *Index) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeJSON(filepath.Join(s.dir, IndexFileName), idx)
}

// LoadBatch reads one evaluator's batch file.
func (s *Store) LoadBatch(evaluator string, number int) (*Batch, error) {
	var b Batch
	path := filepath.Join(s.dir, evaluator, fmt.Sprintf("batch_%d.json", number))
	if err := s.readJSON(path, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// SaveBatch writes a completed batch under the evaluator's directory and
// marks the batch completed in the index.
func (s *Store) SaveBatch(evaluator string, b *Batch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Join(s.dir, evaluator)
	if err := s.fs.MkdirAll(dir, dirPerm); err != nil {
		return err
	}
	path := filepath.Join(dir, fmt.Sprintf("batch_%d.json", b.BatchNumber))
	if err := s.writeJSON(path, b); err != nil {
		return err
	}

	idx, err := s.loadIndexLocked()
	if err != nil {
		return err
	}
	info, ok := idx.Batch(b.BatchNumber)
	if !ok {
		return fmt.Errorf("%w: %d", ErrBatchNotFound, b.BatchNumber)
	}
	if info.Status == nil {
		info.Status = make(map[string]Status)
	}
	info.Status[evaluator] = StatusCompleted
	return s.writeJSON(filepath.Join(s.dir, IndexFileName), idx)
}

// SaveSkeleton writes a batch file without touching the index, used for
// templates and generated skeletons the evaluator has yet to fill in.
func (s *Store) SaveSkeleton(evaluator string, b *Batch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Join(s.dir, evaluator)
	if err := s.fs.MkdirAll(dir, dirPerm); err != nil {
		return err
	}
	path := filepath.Join(dir, fmt.Sprintf("batch_%d.json", b.BatchNumber))
	return s.writeJSON(path, b)
}

// NextPending returns the lowest-numbered batch the evaluator has not
// completed, or ErrNoPending.
func (s *Store) NextPending(evaluator string) (int, error) {
	idx, err := s.LoadIndex()
	if err != nil {
		return 0, err
	}
	for _, b := range idx.Batches {
		if b.Status[evaluator] != StatusCompleted {
			return b.BatchNumber, nil
		}
	}
	return 0, ErrNoPending
}

// Template builds a placeholder batch for an evaluator with one empty thesis
// evaluation per thesis in the batch.
func (s *Store) Template(number int, evaluator string) (*Batch, error) {
	idx, err := s.LoadIndex()
	if err != nil {
		return nil, err
	}
	info, ok := idx.Batch(number)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrBatchNotFound, number)
	}

	b := &Batch{
		BatchNumber:    number,
		Evaluator:      evaluator,
		EvaluationDate: s.now().Format("2006-01-02"),
		ThesisIDs:      info.ThesisIDs,
	}
	for _, id := range info.ThesisIDs {
		b.ThesisEvaluations = append(b.ThesisEvaluations, ThesisEvaluation{
			ThesisID:    id,
			ThesisTitle: "TODO",
			SourceText:  fmt.Sprintf("texts/tesis%d.txt", id),
			WITLines:    "TODO",
			Clauses:     []ClauseEvaluation{},
		})
	}
	return b, nil
}

// LoadEvaluatorBatches reads every batch_<n>.json under the evaluator's
// directory, ordered by batch number.
func (s *Store) LoadEvaluatorBatches(evaluator string) ([]*Batch, error) {
	dir := filepath.Join(s.dir, evaluator)
	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	numbers := make([]int, 0, len(entries))
	for _, e := range entries {
		m := batchFileRe.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)

	batches := make([]*Batch, 0, len(numbers))
	for _, n := range numbers {
		b, err := s.LoadBatch(evaluator, n)
		if err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}
	return batches, nil
}

// MergeAll concatenates the evaluator's batch files in batch order into
// <evaluator>_complete.json and returns the merged document.
func (s *Store) MergeAll(evaluator string) (*Merged, error) {
	batches, err := s.LoadEvaluatorBatches(evaluator)
	if err != nil {
		return nil, err
	}

	merged := &Merged{
		Metadata: MergeMetadata{
			Evaluator:      evaluator,
			EvaluationDate: s.now().Format("2006-01-02"),
			Source:         "merged from batch evaluations",
		},
	}
	for _, b := range batches {
		merged.ThesisEvaluations = append(merged.ThesisEvaluations, b.ThesisEvaluations...)
	}
	merged.Metadata.TotalThesesEvaluated = len(merged.ThesisEvaluations)

	s.mu.Lock()
	defer s.mu.Unlock()
	path := filepath.Join(s.dir, evaluator+"_complete.json")
	if err := s.writeJSON(path, merged); err != nil {
		return nil, err
	}
	return merged, nil
}
