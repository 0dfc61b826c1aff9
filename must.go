package frozen

// must.go provides the MustCompile-style helper code generated by
// internal/emit uses to turn a (value, error) constructor result into a
// package-level var initializer, which cannot itself handle an error
// return.
//
// © 2025 frozen authors.

// Must panics if err is non-nil, otherwise returns v. Intended for
// package-level initialization of frozen collections whose entries are
// known by construction to be free of hash-table build failures (fixed,
// reviewed data baked in by frozengen) — not for collections built from
// runtime-supplied data, where the error return should be handled.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
