package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vexlang/vex"
)

var sourceMaps bool

var buildCmd = &cobra.Command{
	Use:   "build [paths...]",
	Short: "Compile .jsx files to .js",
	Long: `Compile .jsx files, writing one .js file next to each source.

Paths behave like Go patterns:
  - ./...        recurse from cwd
  - ./dir        only that directory (non-recursive)
  - ./dir/...    recurse from that directory
  - ./file.jsx   only that file`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			args = []string{"./..."}
		}
		paths, err := collectJSXPaths(args)
		if err != nil {
			return err
		}
		sort.Strings(paths)

		var allErr error
		for _, path := range paths {
			if err := buildFile(path); err != nil {
				allErr = errors.Join(allErr, err)
			}
		}
		return allErr
	},
}

func init() {
	buildCmd.Flags().BoolVar(&sourceMaps, "sourcemap", false, "write a .js.map file next to each output")
	rootCmd.AddCommand(buildCmd)
}

func buildFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	out, sm, err := vex.Compile(path, src, loadOptions())
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	outPath := strings.TrimSuffix(path, ".jsx") + ".js"
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return err
	}

	if sourceMaps && sm != nil {
		sm.TargetFile = outPath
		data, err := sm.ToJSON()
		if err != nil {
			return err
		}
		if err := os.WriteFile(outPath+".map", data, 0o644); err != nil {
			return err
		}
	}
	return nil
}

// collectJSXPaths resolves Go-style path patterns into .jsx file paths.
func collectJSXPaths(patterns []string) ([]string, error) {
	seen := map[string]bool{}
	var out []string

	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}

	for _, pat := range patterns {
		pat = strings.TrimSpace(pat)
		if pat == "" {
			continue
		}

		if base, ok := strings.CutSuffix(pat, "..."); ok {
			base = strings.TrimSuffix(base, "/")
			if base == "" {
				base = "."
			}
			err := filepath.WalkDir(base, func(path string, de fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if de.IsDir() {
					if strings.HasPrefix(de.Name(), ".") && de.Name() != "." || de.Name() == "node_modules" {
						return filepath.SkipDir
					}
					return nil
				}
				if strings.HasSuffix(de.Name(), ".jsx") {
					add(path)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
			continue
		}

		st, err := os.Stat(pat)
		if err != nil {
			return nil, err
		}
		if st.IsDir() {
			entries, err := os.ReadDir(pat)
			if err != nil {
				return nil, err
			}
			for _, e := range entries {
				if !e.IsDir() && strings.HasSuffix(e.Name(), ".jsx") {
					add(filepath.Join(pat, e.Name()))
				}
			}
			continue
		}
		if !strings.HasSuffix(pat, ".jsx") {
			return nil, fmt.Errorf("not a .jsx file: %s", pat)
		}
		add(pat)
	}

	return out, nil
}
