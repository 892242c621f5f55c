package scanner

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hexvar-cli/hexvar/constant"
	"github.com/hexvar-cli/hexvar/filesystem"
	"github.com/samber/lo"
	"github.com/spf13/afero"
)

// Files enumerates every eligible file under the given roots, in traversal order.
// A root may be a single file, which bypasses the extension filter.
// Directories named in constant.OutputDirs are never descended into, and any
// path containing one of the ignore substrings is excluded.
func Files(roots, extensions, ignore []string) ([]string, error) {
	var paths []string

	for _, root := range roots {
		stat, err := filesystem.API().Stat(root)
		if err != nil {
			return nil, err
		}

		if !stat.IsDir() {
			if !ignored(root, ignore) {
				paths = append(paths, root)
			}
			continue
		}

		err = afero.Walk(filesystem.API(), root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() {
				if lo.Contains(constant.OutputDirs, info.Name()) {
					return filepath.SkipDir
				}
				return nil
			}

			if ignored(path, ignore) {
				return nil
			}

			ext := strings.TrimPrefix(filepath.Ext(path), ".")
			if !lo.Contains(extensions, ext) {
				return nil
			}

			paths = append(paths, path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return paths, nil
}

func ignored(path string, ignore []string) bool {
	return lo.SomeBy(ignore, func(substring string) bool {
		return strings.Contains(path, substring)
	})
}
