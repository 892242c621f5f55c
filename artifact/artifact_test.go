package artifact

import (
	"strings"
	"testing"

	"github.com/hexvar-cli/hexvar/cluster"
	"github.com/hexvar-cli/hexvar/hexcolor"
	"github.com/hexvar-cli/hexvar/namer"
	. "github.com/smartystreets/goconvey/convey"
)

func named(identifier string, members ...any) namer.Named {
	c := cluster.Cluster{Representative: hexcolor.Hex(members[0].(string))}
	for i := 0; i < len(members); i += 2 {
		c.Members = append(c.Members, cluster.Observed{
			Hex:   hexcolor.Hex(members[i].(string)),
			Count: members[i+1].(int),
		})
	}
	return namer.Named{Cluster: c, Identifier: identifier}
}

func TestNewReport(t *testing.T) {
	Convey("NewReport", t, func() {
		groups := []namer.Named{
			named("color-tomato", "#ff6347", 5, "#ff6350", 2),
			named("color-123456", "#123456", 1),
		}
		counts := map[hexcolor.Hex]int{"#ff6347": 5, "#ff6350": 2, "#123456": 1}

		report := NewReport(groups, counts, 3)

		Convey("Palette follows cluster order with aggregated counts", func() {
			So(report.Palette, ShouldResemble, []Declaration{
				{Identifier: "color-tomato", Hex: "#ff6347", Count: 7},
				{Identifier: "color-123456", Hex: "#123456", Count: 1},
			})
		})

		Convey("Mapping covers every observed literal exactly once", func() {
			So(report.Mapping, ShouldHaveLength, len(counts))
			So(report.Mapping["#ff6347"], ShouldResemble, Target{Identifier: "color-tomato", Hex: "#ff6347"})
			So(report.Mapping["#ff6350"], ShouldResemble, Target{Identifier: "color-tomato", Hex: "#ff6347"})
			So(report.Mapping["#123456"], ShouldResemble, Target{Identifier: "color-123456", Hex: "#123456"})
		})

		Convey("Summary aggregates the scan statistics", func() {
			So(report.Summary, ShouldResemble, Summary{
				FilesScanned:     3,
				UniqueColors:     3,
				TotalOccurrences: 8,
				Clusters:         2,
			})
		})

		Convey("Counts table passes through untouched", func() {
			So(report.Counts, ShouldResemble, counts)
		})

		Convey("Empty input produces an empty but well-formed report", func() {
			empty := NewReport(nil, map[hexcolor.Hex]int{}, 4)
			So(empty.Palette, ShouldBeEmpty)
			So(empty.Mapping, ShouldBeEmpty)
			So(empty.Summary, ShouldResemble, Summary{FilesScanned: 4})
		})
	})
}

func TestCSS(t *testing.T) {
	Convey("CSS", t, func() {
		report := NewReport([]namer.Named{
			named("color-tomato", "#ff6347", 5),
			named("color-123456", "#123456", 1),
		}, map[hexcolor.Hex]int{"#ff6347": 5, "#123456": 1}, 1)

		So(report.CSS(), ShouldEqual, ":root {\n    --color-tomato: #ff6347;\n    --color-123456: #123456;\n}\n")

		Convey("An empty palette still renders a valid block", func() {
			empty := NewReport(nil, map[hexcolor.Hex]int{}, 0)
			So(empty.CSS(), ShouldEqual, ":root {\n}\n")
		})
	})
}

func TestWriteJSON(t *testing.T) {
	Convey("WriteJSON", t, func() {
		report := NewReport([]namer.Named{
			named("color-tomato", "#ff6347", 5),
		}, map[hexcolor.Hex]int{"#ff6347": 5}, 1)

		var b strings.Builder
		So(report.WriteJSON(&b), ShouldBeNil)

		out := b.String()
		So(out, ShouldContainSubstring, `"identifier": "color-tomato"`)
		So(out, ShouldContainSubstring, `"files_scanned": 1`)
		So(strings.HasSuffix(out, "\n"), ShouldBeTrue)
	})
}
