package app

import (
	"fmt"
	"io"

	"goredsea/internal/options"
)

// ShowUsage writes the help text to w
func ShowUsage(w io.Writer) {
	fmt.Fprintf(w, "goredsea decodes RDS data from an FM multiplex signal or from\n")
	fmt.Fprintf(w, "hex/bit dumps and prints the groups as JSON or hex.\n\n")
	fmt.Fprintf(w, "Usage: goredsea [OPTIONS]\n\n")
	fmt.Fprint(w, options.Usage())
	fmt.Fprintf(w, "\nExample:\n")
	fmt.Fprintf(w, "  rtl_fm -M fm -l 0 -A std -p 0 -s 171k -g 20 -F 9 -f 87.9M | goredsea -r 171k\n")
}
