// Command frozengen reads one or more manifest YAML files, each describing
// a frozen map or set, and writes the generated Go source next to it (or
// to a directory named by --out). Each manifest is emitted independently
// and concurrently; a failure in one does not stop the others.
//
// © 2025 frozen authors.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Voskan/frozen/internal/emit"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "frozengen:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "frozengen MANIFEST [MANIFEST...]",
		Short: "Generate frozen collection declarations from YAML manifests",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAll(args, outDir)
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "directory to write generated files into (default: alongside each manifest)")
	return cmd
}

func runAll(paths []string, outDir string) error {
	var g errgroup.Group
	for _, p := range paths {
		p := p
		g.Go(func() error { return runOne(p, outDir) })
	}
	return g.Wait()
}

func runOne(path, outDir string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	m, err := emit.ParseManifest(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	src, err := m.Emit()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	dest := outputPath(path, outDir)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := os.WriteFile(dest, []byte(src), 0o644); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	fmt.Printf("%s -> %s\n", path, dest)
	return nil
}

func outputPath(manifestPath, outDir string) string {
	base := strings.TrimSuffix(filepath.Base(manifestPath), filepath.Ext(manifestPath)) + "_generated.go"
	if outDir == "" {
		return filepath.Join(filepath.Dir(manifestPath), base)
	}
	return filepath.Join(outDir, base)
}
