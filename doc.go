// Package ruleconv is a research-support toolkit for legal-rule convergence
// analysis. It decodes ZDD binary corpora (collections of integer arrays
// representing satisfying assignments of machine-generated legal clauses),
// exports text and CSV views, aggregates cross-file assignment patterns, and
// manages the batch evaluation workflow with its agreement statistics.
//
// # Quick Start
//
// Local corpus:
//
//	ctx := context.Background()
//	corpus, _ := ruleconv.OpenDir(ctx, "./witness_output")
//	sum := corpus.Summary()
//
// Remote corpus:
//
//	store, _ := s3.New(ctx, "my-bucket", s3.WithPrefix("corpus/"))
//	corpus, _ := ruleconv.Open(ctx, store)
//
// The subpackages stand on their own as well: zdd for the binary format,
// pattern for signature aggregation, export for CSV output, wit for clause
// file parsing, evaluation for the batch workflow and agreement for the
// statistics.
package ruleconv
