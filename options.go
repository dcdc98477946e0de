package ruleconv

type options struct {
	logger      *Logger
	thesisMap   map[int]string
	concurrency int
}

// Option configures Open behavior.
type Option func(*options)

// WithLogger sets the corpus logger. Nil selects the no-op logger.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithThesisMap maps numeric ZDD file IDs to thesis numbers for export
// labeling. Unmapped IDs fall back to "unknown_<id>".
func WithThesisMap(m map[int]string) Option {
	return func(o *options) { o.thesisMap = m }
}

// WithConcurrency bounds the number of corpus files decoded in parallel
// during Open. The default of 1 keeps loading fully sequential; any value
// yields the same corpus since results are ordered by file ID.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.concurrency = n
	}
}
