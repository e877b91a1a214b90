package sqlizer

type option struct {
	Columns map[string]string
}

func newOption(opts ...Option) *option {
	o := &option{}
	for _, opt := range opts {
		opt(o)
	}
	if o.Columns == nil {
		o.Columns = map[string]string{}
	}
	return o
}

type Option func(*option)

// Columns maps member names to column names. Members absent from the map
// render under their own name.
func Columns(columns map[string]string) Option {
	return func(o *option) {
		o.Columns = columns
	}
}
