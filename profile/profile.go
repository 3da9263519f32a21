package profile

// Profiler selects a profiling mode and the directory its output is written
// to. The zero Profiler does nothing.
type Profiler struct {
	Mode  string
	Path  string
	Quiet bool
}

// Option applies a configuration option to a Profiler.
type Option func(Profiler) Profiler

// New returns a Profiler with opts applied.
func New(opts ...Option) Profiler {
	var p Profiler

	for _, opt := range opts {
		if opt != nil {
			p = opt(p)
		}
	}

	return p
}

// WithMode sets the profiling mode. See [Modes].
func WithMode(mode string) Option {
	return func(p Profiler) Profiler {
		p.Mode = mode

		return p
	}
}

// WithPath sets the output directory.
func WithPath(path string) Option {
	return func(p Profiler) Profiler {
		p.Path = path

		return p
	}
}

// WithQuiet suppresses the profiler's own start and stop messages.
func WithQuiet(quiet bool) Option {
	return func(p Profiler) Profiler {
		p.Quiet = quiet

		return p
	}
}

// Stopper ends a profiling session.
type Stopper interface{ Stop() }

// Start begins profiling and returns the session. It is a no-op when Mode is
// empty or unknown, or when built without the pprof tag. Both Start and Stop
// are always safe to call.
func (p Profiler) Start() Stopper {
	if p.Mode == "" {
		return ignore{}
	}

	return start(p)
}

type ignore struct{}

func (ignore) Stop() {}
