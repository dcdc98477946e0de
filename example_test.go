package ruleconv_test

import (
	"context"
	"fmt"
	"log"

	"github.com/kelsenlab/ruleconv"
	"github.com/kelsenlab/ruleconv/blobstore"
	"github.com/kelsenlab/ruleconv/pattern"
	"github.com/kelsenlab/ruleconv/zdd"
)

// Example_corpus demonstrates opening a corpus from a blobstore and reading
// its summary statistics.
func Example_corpus() {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	for name, arrays := range map[string][][]uint32{
		"zdd_1.bin": {{2, 7}, {1}},
		"zdd_2.bin": {{7, 2}},
	} {
		data, err := zdd.EncodeBytes(&zdd.Structure{Arrays: arrays})
		if err != nil {
			log.Fatal(err)
		}
		if err := store.Put(ctx, name, data); err != nil {
			log.Fatal(err)
		}
	}

	c, err := ruleconv.Open(ctx, store)
	if err != nil {
		log.Fatal(err)
	}

	sum := c.Summary()
	fmt.Println(c.Len(), "files,", sum.Arrays, "arrays,", sum.Elements, "elements")
	// Output: 2 files, 3 arrays, 5 elements
}

// Example_patterns demonstrates signature aggregation and clause rendering.
func Example_patterns() {
	a := pattern.NewAnalyzer()
	a.AddArray(1, []uint32{7, 2})
	a.AddArray(2, []uint32{2, 7})
	a.AddArray(2, []uint32{4})

	top := a.Entries()[0]
	fmt.Println(top.Signature.Key(), top.Frequency)
	fmt.Println(pattern.PositiveClause(top.Signature))
	// Output:
	// [2,7] 2
	// (2=T ∧ 7=T ∧ others=F)
}
