package frozen

// errors.go collects the sentinel errors the package returns. Construction
// is fully transactional: a caller either gets back a valid container or one
// of these errors, never a half-built one. Lookup never errors; see map.go
// for the panicking At() accessor that opts in to a different contract.
//
// © 2025 frozen authors.

import "github.com/pkg/errors"

var (
	// ErrHashTableBuildFailed is returned when no power-of-two bucket count
	// within the doubling budget keeps every bucket below the
	// magnitude-dependent collision threshold. Callers that hit this in
	// practice almost always have an adversarial or near-adversarial hash
	// function for their key type; supplying a better frozenhash.Hasher
	// through NewHashMapWithHasher resolves it.
	ErrHashTableBuildFailed = errors.New("frozen: could not build hash table within doubling budget")

	// ErrMutableStatic describes the code-generator misconfiguration where
	// both the mutable and static options are requested together: a static
	// (package-level) binding cannot also be mutable without introducing
	// shared mutable global state, which frozen collections never do. The
	// generator itself returns internal/emit's own sentinel with the same
	// message, a distinct value from this one.
	ErrMutableStatic = errors.New("frozen/emit: mutable and static are mutually exclusive")

	// ErrStaticRequiresSymbol describes Static requested without a symbol
	// name: there is nothing to bind the static declaration to. The
	// generator returns internal/emit's own sentinel with the same message.
	ErrStaticRequiresSymbol = errors.New("frozen/emit: static requires a symbol name")

	// ErrAliasRequiresSymbol describes an alias name requested without a
	// symbol name: an alias renames a declaration, so one must exist first.
	// The generator returns internal/emit's own sentinel with the same
	// message.
	ErrAliasRequiresSymbol = errors.New("frozen/emit: alias requires a symbol name")
)
