// Package rewrite applies a refactor mapping to source files in place,
// replacing every observed hex literal with a reference to its canonical group.
package rewrite

import (
	"regexp"

	"github.com/hexvar-cli/hexvar/artifact"
	"github.com/hexvar-cli/hexvar/filesystem"
	"github.com/hexvar-cli/hexvar/hexcolor"
	"github.com/hexvar-cli/hexvar/log"
	"github.com/hexvar-cli/hexvar/scanner"
	"github.com/samber/mo"
)

// pattern mirrors the scanner's extraction pattern so a rewrite touches exactly
// the literals a scan would have observed.
var pattern = regexp.MustCompile(`#(?:[0-9a-fA-F]{8}|[0-9a-fA-F]{6}|[0-9a-fA-F]{3})`)

// Options configures an in-place rewrite.
type Options struct {
	// Roots, Extensions, and Ignore select files exactly like a scan does.
	Roots      []string
	Extensions []string
	Ignore     []string
	// Mapping redirects observed literals to their canonical groups.
	Mapping map[hexcolor.Hex]artifact.Target
	// UseHex substitutes the representative hex value instead of a var() reference.
	UseHex bool
	// OnFile is invoked with each file path before it is processed.
	OnFile mo.Option[func(path string)]
}

// Result summarizes an applied rewrite.
type Result struct {
	FilesChanged int
	Replacements int
}

// Apply rewrites every mapped literal across the selected files.
// Literals are normalized before lookup, so #FF6347, #ff6347, and shorthand
// forms that expand to the same color all redirect to the same target.
// Files whose content does not change are left untouched.
func Apply(options *Options) (*Result, error) {
	paths, err := scanner.Files(options.Roots, options.Extensions, options.Ignore)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for _, path := range paths {
		if options.OnFile.IsPresent() {
			options.OnFile.MustGet()(path)
		}

		content, err := filesystem.API().ReadFile(path)
		if err != nil {
			log.Warnf("skipping unreadable file %s: %v", path, err)
			continue
		}

		replaced := 0
		rewritten := pattern.ReplaceAllStringFunc(string(content), func(match string) string {
			normalized, err := hexcolor.Parse(match)
			if err != nil {
				return match
			}

			target, ok := options.Mapping[normalized]
			if !ok {
				return match
			}

			replaced++
			if options.UseHex {
				return string(target.Hex)
			}
			return "var(--" + target.Identifier + ")"
		})

		if replaced == 0 {
			continue
		}

		stat, err := filesystem.API().Stat(path)
		if err != nil {
			return nil, err
		}
		if err := filesystem.API().WriteFile(path, []byte(rewritten), stat.Mode()); err != nil {
			return nil, err
		}

		result.FilesChanged++
		result.Replacements += replaced
		log.Infof("rewrote %d literals in %s", replaced, path)
	}

	return result, nil
}
