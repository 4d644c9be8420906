package choices

// EmptySearchMode decides what an empty query returns.
type EmptySearchMode string

const (
	EmptySearchNone EmptySearchMode = "none"
	EmptySearchAll  EmptySearchMode = "all"
)

// Options configures the handler and its routes.
type Options struct {
	SearchParam     string
	LimitParam      string
	DefaultLimit    int
	MaxLimit        int
	EmptySearchMode EmptySearchMode
}

// OptionFn mutates Options.
type OptionFn func(*Options)

// DefaultOptions lists every option on an empty query; the built-in pools are
// small enough.
func DefaultOptions() Options {
	return Options{
		SearchParam:     "q",
		LimitParam:      "limit",
		DefaultLimit:    50,
		MaxLimit:        100,
		EmptySearchMode: EmptySearchAll,
	}
}

// NewOptions applies fns over the defaults and repairs zero values.
func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn != nil {
			fn(&opts)
		}
	}
	def := DefaultOptions()
	if opts.SearchParam == "" {
		opts.SearchParam = def.SearchParam
	}
	if opts.LimitParam == "" {
		opts.LimitParam = def.LimitParam
	}
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = def.DefaultLimit
	}
	if opts.MaxLimit <= 0 {
		opts.MaxLimit = def.MaxLimit
	}
	if opts.EmptySearchMode == "" {
		opts.EmptySearchMode = def.EmptySearchMode
	}
	return opts
}

func WithSearchParam(name string) OptionFn {
	return func(o *Options) { o.SearchParam = name }
}

func WithLimitParam(name string) OptionFn {
	return func(o *Options) { o.LimitParam = name }
}

func WithDefaultLimit(limit int) OptionFn {
	return func(o *Options) { o.DefaultLimit = limit }
}

func WithMaxLimit(limit int) OptionFn {
	return func(o *Options) { o.MaxLimit = limit }
}

func WithEmptySearchMode(mode EmptySearchMode) OptionFn {
	return func(o *Options) { o.EmptySearchMode = mode }
}

func clampLimit(limit int, opts Options) int {
	if limit < 0 {
		return 0
	}
	if limit == 0 {
		limit = opts.DefaultLimit
	}
	if limit > opts.MaxLimit {
		return opts.MaxLimit
	}
	return limit
}
