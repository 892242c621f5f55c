package rewrite

import (
	"testing"

	"github.com/hexvar-cli/hexvar/artifact"
	"github.com/hexvar-cli/hexvar/filesystem"
	"github.com/hexvar-cli/hexvar/hexcolor"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func write(path, content string) {
	lo.Must0(filesystem.API().WriteFile(path, []byte(content), 0644))
}

func read(path string) string {
	return string(lo.Must(filesystem.API().ReadFile(path)))
}

func mapping() map[hexcolor.Hex]artifact.Target {
	tomato := artifact.Target{Identifier: "color-tomato", Hex: "#ff6347"}
	return map[hexcolor.Hex]artifact.Target{
		"#ff6347": tomato,
		"#ff6350": tomato,
		"#123456": {Identifier: "color-123456", Hex: "#123456"},
	}
}

func TestApply(t *testing.T) {
	Convey("Apply", t, func() {
		filesystem.SetMemMapFs()
		defer filesystem.SetOsFs()

		options := &Options{
			Roots:      []string{"/project"},
			Extensions: []string{"css"},
			Mapping:    mapping(),
		}

		Convey("Replaces mapped literals with var() references", func() {
			write("/project/main.css", "h1 { color: #ff6347; } h2 { color: #ff6350; }")

			result, err := Apply(options)
			So(err, ShouldBeNil)
			So(result.FilesChanged, ShouldEqual, 1)
			So(result.Replacements, ShouldEqual, 2)
			So(read("/project/main.css"), ShouldEqual, "h1 { color: var(--color-tomato); } h2 { color: var(--color-tomato); }")
		})

		Convey("Normalizes case and shorthand before lookup", func() {
			write("/project/main.css", "a { color: #FF6347; } b { color: #f64; }")
			options.Mapping[lo.Must(hexcolor.Parse("#f64"))] = artifact.Target{Identifier: "color-f64", Hex: "#ff6644"}

			_, err := Apply(options)
			So(err, ShouldBeNil)
			So(read("/project/main.css"), ShouldEqual, "a { color: var(--color-tomato); } b { color: var(--color-f64); }")
		})

		Convey("Substitutes the representative hex value when requested", func() {
			write("/project/main.css", "h1 { color: #ff6350; }")
			options.UseHex = true

			result, err := Apply(options)
			So(err, ShouldBeNil)
			So(result.Replacements, ShouldEqual, 1)
			So(read("/project/main.css"), ShouldEqual, "h1 { color: #ff6347; }")
		})

		Convey("Leaves unmapped literals alone", func() {
			write("/project/main.css", "h1 { color: #abcdef; }")

			result, err := Apply(options)
			So(err, ShouldBeNil)
			So(result.FilesChanged, ShouldEqual, 0)
			So(read("/project/main.css"), ShouldEqual, "h1 { color: #abcdef; }")
		})

		Convey("Counts replacements per literal occurrence across files", func() {
			write("/project/a.css", "#ff6347 #ff6347")
			write("/project/b.css", "#123456")

			result, err := Apply(options)
			So(err, ShouldBeNil)
			So(result.FilesChanged, ShouldEqual, 2)
			So(result.Replacements, ShouldEqual, 3)
		})

		Convey("Honors the ignore substrings", func() {
			write("/project/vendor.css", "#ff6347")
			options.Ignore = []string{"vendor"}

			result, err := Apply(options)
			So(err, ShouldBeNil)
			So(result.FilesChanged, ShouldEqual, 0)
			So(read("/project/vendor.css"), ShouldEqual, "#ff6347")
		})
	})
}
