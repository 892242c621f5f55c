package scanner

import (
	"testing"

	"github.com/hexvar-cli/hexvar/cluster"
	"github.com/hexvar-cli/hexvar/filesystem"
	"github.com/hexvar-cli/hexvar/hexcolor"
	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func write(path, content string) {
	lo.Must0(filesystem.API().WriteFile(path, []byte(content), 0644))
}

func TestOccurrences(t *testing.T) {
	Convey("Occurrences", t, func() {
		occurrences := NewOccurrences()

		Convey("Case variants and shorthand collapse into one literal", func() {
			occurrences.Extract("a { color: #FF6347; } b { color: #ff6347; } c { color: #AbC; }")

			So(occurrences.Unique(), ShouldEqual, 2)
			So(occurrences.Count("#ff6347"), ShouldEqual, 2)
			So(occurrences.Count("#aabbcc"), ShouldEqual, 1)
			So(occurrences.Total(), ShouldEqual, 3)
		})

		Convey("Eight-digit literals keep their alpha digits", func() {
			occurrences.Extract("box-shadow: 0 0 4px #ff634780;")

			So(occurrences.Count("#ff634780"), ShouldEqual, 1)
			So(occurrences.Count("#ff6347"), ShouldEqual, 0)
		})

		Convey("Non-literal text contributes nothing", func() {
			occurrences.Extract("#ff 0xff6347 color: red; id=\"#anchor\"")

			So(occurrences.Unique(), ShouldEqual, 0)
			So(occurrences.Total(), ShouldEqual, 0)
		})

		Convey("Observed preserves first-seen order", func() {
			occurrences.Extract("#111111 #222222 #111111 #333333")

			So(occurrences.Observed(), ShouldResemble, []cluster.Observed{
				{Hex: "#111111", Count: 2},
				{Hex: "#222222", Count: 1},
				{Hex: "#333333", Count: 1},
			})
		})

		Convey("Counts returns an independent copy", func() {
			occurrences.Extract("#111111")

			counts := occurrences.Counts()
			counts["#111111"] = 99

			So(occurrences.Count("#111111"), ShouldEqual, 1)
		})
	})
}

func TestFiles(t *testing.T) {
	Convey("Files", t, func() {
		filesystem.SetMemMapFs()
		defer filesystem.SetOsFs()

		write("/project/styles/main.css", "body { color: #ff6347; }")
		write("/project/styles/theme.scss", "$accent: #123456;")
		write("/project/src/app.vue", "<style>.a { color: #abcdef; }</style>")
		write("/project/src/app.js", "const c = '#ff6347';")
		write("/project/node_modules/lib/dist.css", ".x { color: #000000; }")
		write("/project/generated/skip.css", ".y { color: #ffffff; }")

		extensions := []string{"css", "scss", "vue"}

		Convey("Only files with eligible extensions are selected", func() {
			paths, err := Files([]string{"/project"}, extensions, nil)
			So(err, ShouldBeNil)
			So(paths, ShouldResemble, []string{
				"/project/generated/skip.css",
				"/project/src/app.vue",
				"/project/styles/main.css",
				"/project/styles/theme.scss",
			})
		})

		Convey("Output directories are never descended into", func() {
			paths, err := Files([]string{"/project"}, extensions, nil)
			So(err, ShouldBeNil)
			So(lo.SomeBy(paths, func(p string) bool { return p == "/project/node_modules/lib/dist.css" }), ShouldBeFalse)
		})

		Convey("Ignore substrings exclude matching paths", func() {
			paths, err := Files([]string{"/project"}, extensions, []string{"generated"})
			So(err, ShouldBeNil)
			So(paths, ShouldResemble, []string{
				"/project/src/app.vue",
				"/project/styles/main.css",
				"/project/styles/theme.scss",
			})
		})

		Convey("A file root bypasses the extension filter", func() {
			paths, err := Files([]string{"/project/src/app.js"}, extensions, nil)
			So(err, ShouldBeNil)
			So(paths, ShouldResemble, []string{"/project/src/app.js"})
		})

		Convey("A missing root is an error", func() {
			_, err := Files([]string{"/nowhere"}, extensions, nil)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestScan(t *testing.T) {
	Convey("Scan", t, func() {
		filesystem.SetMemMapFs()
		defer filesystem.SetOsFs()

		write("/project/a.css", "h1 { color: #FF6347; } h2 { color: #ff6347; }")
		write("/project/b.css", "p { color: #abc; background: #123456; }")
		write("/project/c.txt", "#ffffff")

		options := &Options{
			Roots:      []string{"/project"},
			Extensions: []string{"css"},
		}

		Convey("Aggregates normalized counts across files", func() {
			result, err := Scan(options)
			So(err, ShouldBeNil)

			So(result.Files, ShouldEqual, 2)
			So(result.Colors.Count(hexcolor.Hex("#ff6347")), ShouldEqual, 2)
			So(result.Colors.Count(hexcolor.Hex("#aabbcc")), ShouldEqual, 1)
			So(result.Colors.Count(hexcolor.Hex("#123456")), ShouldEqual, 1)
			So(result.Colors.Count(hexcolor.Hex("#ffffff")), ShouldEqual, 0)
			So(result.Colors.Total(), ShouldEqual, 4)
		})

		Convey("Reports every visited file through the callback", func() {
			var visited []string
			options.OnFile = mo.Some(func(path string) {
				visited = append(visited, path)
			})

			_, err := Scan(options)
			So(err, ShouldBeNil)
			So(visited, ShouldResemble, []string{"/project/a.css", "/project/b.css"})
		})

		Convey("A tree without hex codes yields an empty accumulator", func() {
			write("/empty/plain.css", "body { color: red; }")

			result, err := Scan(&Options{Roots: []string{"/empty"}, Extensions: []string{"css"}})
			So(err, ShouldBeNil)
			So(result.Files, ShouldEqual, 1)
			So(result.Colors.Unique(), ShouldEqual, 0)
		})
	})
}
