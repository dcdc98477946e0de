package evaluation

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelsenlab/ruleconv/wit"
)

func fixedClock() time.Time {
	return time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
}

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	s := NewStore(dir)
	s.now = fixedClock

	idx := &Index{
		TotalBatches: 2,
		TotalTheses:  3,
		Batches: []*BatchInfo{
			{BatchNumber: 1, ThesisIDs: []int{2, 5}, Status: map[string]Status{
				"evaluator_1": StatusPending, "evaluator_2": StatusPending,
			}},
			{BatchNumber: 2, ThesisIDs: []int{9}, Status: map[string]Status{
				"evaluator_1": StatusPending, "evaluator_2": StatusPending,
			}},
		},
	}
	require.NoError(t, s.SaveIndex(idx))
	return s, dir
}

func ratedBatch(number int, thesisIDs []int, rating Rating) *Batch {
	b := &Batch{BatchNumber: number, Evaluator: "evaluator_1", EvaluationDate: "2026-03-14", ThesisIDs: thesisIDs}
	for _, id := range thesisIDs {
		b.ThesisEvaluations = append(b.ThesisEvaluations, ThesisEvaluation{
			ThesisID: id,
			Clauses: []ClauseEvaluation{
				{ClauseID: "tesis" + string(rune('0'+id)) + "_a", Rating: rating, Justification: "ok"},
			},
		})
	}
	return b
}

func TestIndexRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)

	idx, err := s.LoadIndex()
	require.NoError(t, err)
	assert.Equal(t, 2, idx.TotalBatches)
	assert.Equal(t, 3, idx.TotalTheses)

	info, ok := idx.Batch(2)
	require.True(t, ok)
	assert.Equal(t, []int{9}, info.ThesisIDs)

	_, ok = idx.Batch(7)
	assert.False(t, ok)
}

func TestSaveBatchMarksCompleted(t *testing.T) {
	s, dir := newTestStore(t)

	require.NoError(t, s.SaveBatch("evaluator_1", ratedBatch(1, []int{2, 5}, RatingAccept)))

	idx, err := s.LoadIndex()
	require.NoError(t, err)
	info, _ := idx.Batch(1)
	assert.Equal(t, StatusCompleted, info.Status["evaluator_1"])
	assert.Equal(t, StatusPending, info.Status["evaluator_2"])
	assert.Equal(t, 1, idx.Completed("evaluator_1"))

	// File landed under the evaluator directory.
	_, err = os.Stat(filepath.Join(dir, "evaluator_1", "batch_1.json"))
	assert.NoError(t, err)

	loaded, err := s.LoadBatch("evaluator_1", 1)
	require.NoError(t, err)
	assert.Equal(t, RatingAccept, loaded.ThesisEvaluations[0].Clauses[0].Rating)
}

func TestSaveBatchUnknownNumber(t *testing.T) {
	s, _ := newTestStore(t)
	err := s.SaveBatch("evaluator_1", ratedBatch(42, []int{1}, RatingAccept))
	assert.ErrorIs(t, err, ErrBatchNotFound)
}

func TestNextPending(t *testing.T) {
	s, _ := newTestStore(t)

	n, err := s.NextPending("evaluator_1")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, s.SaveBatch("evaluator_1", ratedBatch(1, []int{2, 5}, RatingAccept)))
	n, err = s.NextPending("evaluator_1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.NoError(t, s.SaveBatch("evaluator_1", ratedBatch(2, []int{9}, RatingRevise)))
	_, err = s.NextPending("evaluator_1")
	assert.ErrorIs(t, err, ErrNoPending)

	// Other evaluator unaffected.
	n, err = s.NextPending("evaluator_2")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestTemplate(t *testing.T) {
	s, _ := newTestStore(t)

	b, err := s.Template(1, "evaluator_2")
	require.NoError(t, err)
	assert.Equal(t, "evaluator_2", b.Evaluator)
	assert.Equal(t, "2026-03-14", b.EvaluationDate)
	require.Len(t, b.ThesisEvaluations, 2)
	assert.Equal(t, "TODO", b.ThesisEvaluations[0].ThesisTitle)
	assert.Equal(t, "texts/tesis2.txt", b.ThesisEvaluations[0].SourceText)
	assert.Empty(t, b.ThesisEvaluations[0].Clauses)

	_, err = s.Template(42, "evaluator_2")
	assert.ErrorIs(t, err, ErrBatchNotFound)
}

func TestMergeAll(t *testing.T) {
	s, dir := newTestStore(t)

	require.NoError(t, s.SaveBatch("evaluator_1", ratedBatch(2, []int{9}, RatingReject)))
	require.NoError(t, s.SaveBatch("evaluator_1", ratedBatch(1, []int{2, 5}, RatingAccept)))

	merged, err := s.MergeAll("evaluator_1")
	require.NoError(t, err)

	// Batch order, not save order.
	require.Len(t, merged.ThesisEvaluations, 3)
	assert.Equal(t, 2, merged.ThesisEvaluations[0].ThesisID)
	assert.Equal(t, 9, merged.ThesisEvaluations[2].ThesisID)
	assert.Equal(t, 3, merged.Metadata.TotalThesesEvaluated)
	assert.Equal(t, "merged from batch evaluations", merged.Metadata.Source)

	_, err = os.Stat(filepath.Join(dir, "evaluator_1_complete.json"))
	assert.NoError(t, err)
}

func TestGenerateSkeletons(t *testing.T) {
	s, dir := newTestStore(t)

	const sampleWIT = `// THESIS 2: Responsabilidad objetiva
clause tesis2_a = p AND q;
clause tesis2_b = r;
// THESIS 5: Legalidad tributaria
clause tesis5_a = s;
`
	witFile, err := wit.Parse(strings.NewReader(sampleWIT))
	require.NoError(t, err)

	evaluators := []Evaluator{
		{Key: "evaluator_1", Name: "Rater A"},
		{Key: "evaluator_2", Name: "Rater B"},
	}
	res, err := s.GenerateSkeletons(witFile, evaluators)
	require.NoError(t, err)

	// 2 batches x 2 evaluators.
	assert.Equal(t, 4, res.Files)
	// Batch 1 holds theses 2 (2 clauses) and 5 (1 clause); batch 2 holds
	// thesis 9, absent from the WIT file. Doubled across evaluators.
	assert.Equal(t, 6, res.Clauses)

	b, err := s.LoadBatch("evaluator_1", 1)
	require.NoError(t, err)
	assert.Equal(t, "Rater A", b.Evaluator)
	require.Len(t, b.ThesisEvaluations, 2)
	assert.Equal(t, "Responsabilidad objetiva", b.ThesisEvaluations[0].ThesisTitle)
	require.Len(t, b.ThesisEvaluations[0].Clauses, 2)
	assert.Equal(t, "tesis2_a", b.ThesisEvaluations[0].Clauses[0].ClauseID)
	assert.Empty(t, b.ThesisEvaluations[0].Clauses[0].Rating)

	// Missing thesis falls back instead of failing.
	b2, err := s.LoadBatch("evaluator_2", 2)
	require.NoError(t, err)
	assert.Equal(t, "Thesis 9 (not found in WIT)", b2.ThesisEvaluations[0].ThesisTitle)
	assert.Equal(t, "unknown", b2.ThesisEvaluations[0].WITLines)

	// Skeletons never flip index status.
	idx, err := s.LoadIndex()
	require.NoError(t, err)
	assert.Equal(t, 0, idx.Completed("evaluator_1"))

	_, err = os.Stat(filepath.Join(dir, "evaluator_2", "batch_2.json"))
	assert.NoError(t, err)
}

func TestRatingValid(t *testing.T) {
	assert.True(t, RatingAccept.Valid())
	assert.True(t, RatingRevise.Valid())
	assert.True(t, RatingReject.Valid())
	assert.False(t, Rating("maybe").Valid())
	assert.False(t, Rating("").Valid())
}
