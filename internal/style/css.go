package style

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// WriteCSS writes one id rule per styled element, in document order.
func (d *Document) WriteCSS(w io.Writer) error {
	bw := bufio.NewWriter(w)

	for _, el := range d.Elements() {
		if el.Style.Len() == 0 {
			continue
		}

		fmt.Fprintf(bw, "#%s {\n", escapeIdent(el.ID))
		el.Style.Each(func(name, value string) {
			fmt.Fprintf(bw, "  %s: %s;\n", name, value)
		})
		bw.WriteString("}\n")
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing stylesheet: %w", err)
	}

	return nil
}

// escapeIdent escapes characters that may not appear bare in a CSS id
// selector.
func escapeIdent(id string) string {
	var b strings.Builder
	for i, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_', r == '-', r >= 0x80:
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			if i == 0 {
				fmt.Fprintf(&b, "\\%x ", r)
				continue
			}
			b.WriteRune(r)
		default:
			b.WriteByte('\\')
			b.WriteRune(r)
		}
	}
	return b.String()
}
