package emit

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Kind selects which Emit* entry point a manifest targets.
type Kind string

const (
	KindScalar  Kind = "scalar"
	KindString  Kind = "string"
	KindHash    Kind = "hash"
	KindOrdered Kind = "ordered"
)

// Manifest is the on-disk (YAML) description of one generated declaration,
// consumed by cmd/frozengen. Field names are deliberately flat: this is a
// build input, not a library API, so it optimizes for a human hand-editing
// it over a tool generating it.
type Manifest struct {
	Package     string          `yaml:"package"`
	Kind        Kind            `yaml:"kind"`
	KeyType     string          `yaml:"key_type"`
	ValueType   string          `yaml:"value_type"`
	Symbol      string          `yaml:"symbol"`
	Alias       string          `yaml:"alias"`
	ConstKeys   bool            `yaml:"const_keys"`
	ConstValues bool            `yaml:"const_values"`
	Visibility  string          `yaml:"visibility"`
	Mutable     bool            `yaml:"mutable"`
	Static      bool            `yaml:"static"`
	Entries     []ManifestEntry `yaml:"entries"`
}

// ManifestEntry is one (key, value) pair as written in the manifest: the
// key/value literal text to splice into the generated source verbatim,
// plus, for scalar manifests, the numeric index the key maps to.
type ManifestEntry struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
	Index uint64 `yaml:"index"`
}

// ParseManifest decodes a single manifest document from YAML.
func ParseManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, errors.Wrap(err, "frozen/emit: parse manifest")
	}
	return m, nil
}

// Config builds an emit.Config from the manifest's declaration-shaped
// fields.
func (m Manifest) Config() Config {
	vis := Exported
	if m.Visibility == "unexported" {
		vis = Unexported
	}
	return Config{
		Package:     m.Package,
		KeyType:     m.KeyType,
		ValueType:   m.ValueType,
		Symbol:      m.Symbol,
		Alias:       m.Alias,
		ConstKeys:   m.ConstKeys,
		ConstValues: m.ConstValues,
		Visibility:  vis,
		Mutable:     m.Mutable,
		Static:      m.Static,
	}
}

// Entries converts the manifest's entries to the emit.Entry form Emit*
// consumes.
func (m Manifest) Entries() []Entry {
	out := make([]Entry, len(m.Entries))
	for i, e := range m.Entries {
		out[i] = Entry{KeyLiteral: e.Key, ValueLiteral: e.Value, KeyIndex: e.Index}
	}
	return out
}

// Emit dispatches to the Emit* function matching m.Kind.
func (m Manifest) Emit() (string, error) {
	cfg := m.Config()
	entries := m.Entries()
	switch m.Kind {
	case KindScalar:
		return EmitScalar(cfg, entries)
	case KindString:
		return EmitString(cfg, entries)
	case KindHash:
		return EmitHash(cfg, entries)
	case KindOrdered:
		return EmitOrdered(cfg, entries)
	default:
		return "", errors.Errorf("frozen/emit: unknown kind %q", m.Kind)
	}
}
