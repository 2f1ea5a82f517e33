package trace

import (
	"fmt"
	"io"
	"os"

	"github.com/kr/pretty"
	"golang.org/x/term"

	"github.com/pdxjjb/rivulet/signal"
)

// Dumper writes verbose, human-readable snapshots of Logic values to out,
// one line per signal plus a pretty.Sprint of anything structured the
// caller wants attached (a Conditional node, an Instruction-like struct).
// Modeled on emul's Tracer, generalized from one fixed register file to
// any set of named signals.
type Dumper struct {
	out   io.Writer
	width int
}

// NewDumper creates a Dumper writing to out. If out is the process's own
// stdout/stderr, the dump's field-wrap width is taken from the terminal;
// otherwise it defaults to 100 columns.
func NewDumper(out io.Writer) *Dumper {
	width := 100
	if f, ok := out.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			width = w
		}
	}
	return &Dumper{out: out, width: width}
}

// DumpSignals writes name/width/value for each Logic in order.
func (d *Dumper) DumpSignals(sigs []*signal.Logic) {
	for _, s := range sigs {
		fmt.Fprintf(d.out, "%-24s [%2d] = %s\n", s.Name(), s.Width(), s.Value())
	}
}

// Dump writes label followed by a pretty.Sprint of v, wrapped to the
// Dumper's configured width.
func (d *Dumper) Dump(label string, v interface{}) {
	fmt.Fprintf(d.out, "%s:\n", label)
	line := pretty.Sprint(v)
	for len(line) > d.width {
		fmt.Fprintln(d.out, line[:d.width])
		line = line[d.width:]
	}
	fmt.Fprintln(d.out, line)
}
