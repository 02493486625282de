// Command fagen converts vendored Font Awesome metadata (icons.yml) into the
// Go source of internal/icons.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fapicker/internal/codegen"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fatal(err)
	}
}

func run(args []string, stdout io.Writer, stderr io.Writer) error {
	opts := codegen.DefaultOptions()
	var inPath, outPath, rootFlag string
	flags := flag.NewFlagSet("fagen", flag.ContinueOnError)
	flags.StringVar(&inPath, "in", "data/icons.yml", "vendored icon metadata")
	flags.StringVar(&outPath, "out", "internal/icons/fontawesome_gen.go", "output path for the generated Go file")
	flags.StringVar(&opts.Package, "package", opts.Package, "package name of the generated file")
	flags.StringVar(&opts.Var, "var", opts.Var, "name of the generated icon slice")
	flags.StringVar(&rootFlag, "root", "", "repo root (defaults to locating go.mod)")
	flags.SetOutput(stderr)
	if err := flags.Parse(args); err != nil {
		return err
	}

	root, err := resolveRoot(rootFlag)
	if err != nil {
		return err
	}
	input := resolvePath(root, inPath)
	output := resolvePath(root, outPath)

	f, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("read icon metadata: %w", err)
	}
	defer f.Close()

	icons, err := codegen.Parse(f)
	if err != nil {
		return fmt.Errorf("process %s: %w", input, err)
	}

	opts.Source = filepath.Base(input)
	src, err := codegen.Render(icons, opts)
	if err != nil {
		return err
	}
	if err := writeOutput(output, src); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Successfully generated %s (%d icons)\n", filepath.Base(output), len(icons))
	return nil
}

func resolvePath(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

func writeOutput(output string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(output, content, 0o644); err != nil {
		return fmt.Errorf("write generated icons: %w", err)
	}
	return nil
}

// resolveRoot picks the module root so go:generate can run from any package directory.
func resolveRoot(flagRoot string) (string, error) {
	if flagRoot != "" {
		return filepath.Clean(flagRoot), nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working dir: %w", err)
	}
	return findModuleRoot(wd)
}

func findModuleRoot(start string) (string, error) {
	dir := start
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("go.mod not found above %s", start)
}

// fatal reports a generation error and exits with a non-zero status.
func fatal(err error) {
	fmt.Fprintln(os.Stderr, "Error processing icon metadata:", err)
	os.Exit(1)
}
