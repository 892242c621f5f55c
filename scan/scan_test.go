package scan

import (
	"strings"
	"testing"

	"github.com/hexvar-cli/hexvar/cluster"
	"github.com/hexvar-cli/hexvar/filesystem"
	"github.com/hexvar-cli/hexvar/hexcolor"
	"github.com/hexvar-cli/hexvar/namer"
	"github.com/hexvar-cli/hexvar/rewrite"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func write(path, content string) {
	lo.Must0(filesystem.API().WriteFile(path, []byte(content), 0644))
}

func options() *Options {
	return &Options{
		Roots:         []string{"/project"},
		Extensions:    []string{"css", "scss"},
		Threshold:     cluster.DefaultThreshold,
		NameThreshold: namer.DefaultNameThreshold,
		Prefix:        namer.DefaultPrefix,
	}
}

func TestAnalyze(t *testing.T) {
	Convey("Analyze", t, func() {
		filesystem.SetMemMapFs()
		defer filesystem.SetOsFs()

		write("/project/main.css", strings.Repeat("h1 { color: #ff6347; }\n", 5)+"h2 { color: #FF6350; }")
		write("/project/theme.scss", "$ink: #123456;\n$accent: #ff6348;")

		Convey("Runs the whole pipeline end to end", func() {
			analysis, err := Analyze(options())
			So(err, ShouldBeNil)

			report := analysis.Report
			So(report.Summary.FilesScanned, ShouldEqual, 2)
			So(report.Summary.UniqueColors, ShouldEqual, 4)
			So(report.Summary.TotalOccurrences, ShouldEqual, 8)
			So(report.Summary.Clusters, ShouldEqual, 2)

			So(report.Palette[0].Identifier, ShouldEqual, "color-tomato")
			So(report.Palette[0].Hex, ShouldEqual, hexcolor.Hex("#ff6347"))
			So(report.Palette[0].Count, ShouldEqual, 7)
			So(report.Palette[1].Identifier, ShouldEqual, "color-123456")

			So(report.Mapping[hexcolor.Hex("#ff6350")].Identifier, ShouldEqual, "color-tomato")
			So(report.Mapping, ShouldHaveLength, 4)
		})

		Convey("Repeated runs over the same tree are identical", func() {
			first, err := Analyze(options())
			So(err, ShouldBeNil)
			second, err := Analyze(options())
			So(err, ShouldBeNil)
			So(second.Report, ShouldResemble, first.Report)
		})

		Convey("A second pass after a hex rewrite is a fixed point", func() {
			analysis, err := Analyze(options())
			So(err, ShouldBeNil)

			_, err = rewrite.Apply(&rewrite.Options{
				Roots:      []string{"/project"},
				Extensions: []string{"css", "scss"},
				Mapping:    analysis.Report.Mapping,
				UseHex:     true,
			})
			So(err, ShouldBeNil)

			again, err := Analyze(options())
			So(err, ShouldBeNil)
			So(again.Report.Summary.Clusters, ShouldEqual, 2)
			So(again.Report.Summary.UniqueColors, ShouldEqual, 2)
			So(again.Report.Palette[0].Hex, ShouldEqual, hexcolor.Hex("#ff6347"))
		})

		Convey("An out-of-range threshold aborts before any output", func() {
			bad := options()
			bad.Threshold = -1

			_, err := Analyze(bad)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestRun(t *testing.T) {
	Convey("Run", t, func() {
		filesystem.SetMemMapFs()
		defer filesystem.SetOsFs()

		write("/project/main.css", "h1 { color: #ff6347; }")

		Convey("Writes the JSON report to the configured writer", func() {
			var out strings.Builder
			withOut := options()
			withOut.Out = &out

			So(Run(withOut), ShouldBeNil)
			So(out.String(), ShouldContainSubstring, `"color-tomato"`)
		})

		Convey("Writes the CSS variables file when a path is set", func() {
			withCSS := options()
			withCSS.Out = &strings.Builder{}
			withCSS.CSSPath = "/out/variables.css"

			So(Run(withCSS), ShouldBeNil)

			content := string(lo.Must(filesystem.API().ReadFile("/out/variables.css")))
			So(content, ShouldEqual, ":root {\n    --color-tomato: #ff6347;\n}\n")
		})

		Convey("Writes the report to a file when an output path is set", func() {
			withPath := options()
			withPath.OutPath = "/out/report.json"

			So(Run(withPath), ShouldBeNil)

			content := string(lo.Must(filesystem.API().ReadFile("/out/report.json")))
			So(content, ShouldContainSubstring, `"files_scanned": 1`)
		})
	})
}

func TestSummarize(t *testing.T) {
	Convey("Summarize", t, func() {
		filesystem.SetMemMapFs()
		defer filesystem.SetOsFs()

		Convey("Reports the empty case in plain words", func() {
			write("/project/main.css", "body { color: red; }")

			analysis, err := Analyze(options())
			So(err, ShouldBeNil)
			So(Summarize(analysis.Report), ShouldContainSubstring, "No hex codes found in 1 file.")
		})

		Convey("Lists the headline statistics", func() {
			write("/project/main.css", "h1 { color: #ff6347; }")

			analysis, err := Analyze(options())
			So(err, ShouldBeNil)

			banner := Summarize(analysis.Report)
			So(banner, ShouldContainSubstring, "Files scanned")
			So(banner, ShouldContainSubstring, "Canonical groups")
		})
	})
}
