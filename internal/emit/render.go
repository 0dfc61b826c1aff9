package emit

import (
	"bytes"
	"text/template"

	"github.com/pkg/errors"
	"golang.org/x/tools/imports"
)

// render executes tmpl against data and runs the result through
// golang.org/x/tools/imports, which both gofmt's the output and resolves
// any import added by the template (the frozen package itself, plus
// "sync" for the lazy-accessor form) — picked over plain go/format because
// a generator that forgets an import is a far more common failure mode
// than one that produces unformatted-but-valid source.
func render(tmplSrc string, data any) (string, error) {
	tmpl, err := template.New("emit").Parse(tmplSrc)
	if err != nil {
		return "", errors.Wrap(err, "frozen/emit: parse template")
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", errors.Wrap(err, "frozen/emit: render template")
	}

	formatted, err := imports.Process("generated.go", buf.Bytes(), nil)
	if err != nil {
		return "", errors.Wrap(err, "frozen/emit: format generated source")
	}
	return string(formatted), nil
}

func visibilityName(cfg Config, fallback string) string {
	name := cfg.symbolOrDefault(fallback)
	if cfg.exported() {
		return exportCase(name)
	}
	return unexportCase(name)
}

func exportCase(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}

func unexportCase(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}
