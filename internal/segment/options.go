package segment

// Default segmentation settings, applied where an Options field is zero.
const (
	DefaultMaxLineLength    = 42
	DefaultMaxWordsPerEntry = 10
	DefaultGapThreshold     = 1.0
)

// Options tunes subtitle phrase segmentation and line rendering.
type Options struct {
	// MaxLineLength is the character budget per rendered subtitle line.
	MaxLineLength int
	// MaxWordsPerEntry caps the words accumulated into one subtitle entry.
	MaxWordsPerEntry int
	// GapThreshold is the silence in seconds between consecutive words that
	// forces a new entry even without a speaker change.
	GapThreshold float64
}

func (o Options) withDefaults() Options {
	if o.MaxLineLength <= 0 {
		o.MaxLineLength = DefaultMaxLineLength
	}
	if o.MaxWordsPerEntry <= 0 {
		o.MaxWordsPerEntry = DefaultMaxWordsPerEntry
	}
	if o.GapThreshold <= 0 {
		o.GapThreshold = DefaultGapThreshold
	}
	return o
}
