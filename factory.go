package depot

type factory struct{}

// Factory is the entry point for building databases and filters.
var Factory factory

func (f factory) NewDatabase(opts ...Option) *Database {
	return newDatabase(opts...)
}

func (f factory) NewFilter() Filter {
	return Filter{}
}
