package artifact

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// CSS renders the canonical declarations as custom properties in a :root block,
// in cluster order.
func (r *Report) CSS() string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, declaration := range r.Palette {
		fmt.Fprintf(&b, "    --%s: %s;\n", declaration.Identifier, declaration.Hex)
	}
	b.WriteString("}\n")
	return b.String()
}

// WriteJSON emits the pretty-printed report to the given writer.
func (r *Report) WriteJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}
