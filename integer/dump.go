package integer

import (
	"fmt"
	"io"
	"strings"
)

// FormatBinary returns the bits of l most significant first, grouped into
// bytes separated by a single space.
func FormatBinary(l Limb) string {
	groups := make([]string, LimbBits/8)

	for i := range groups {
		shift := LimbBits - 8*(i+1)
		groups[i] = fmt.Sprintf("%08b", byte(l>>uint(shift)))
	}

	return strings.Join(groups, " ")
}

// Dumper produces one FormatBinary line per limb of an Int, most significant
// limb first.
//
//	d := x.Dumper()
//	for d.Next() {
//		fmt.Println(d.Index(), d.Line())
//	}
type Dumper struct {
	x    *Int
	i    int
	line string
}

// Dumper returns a Dumper positioned before the most significant limb of x.
func (x *Int) Dumper() *Dumper {
	return &Dumper{
		x: x,
		i: -1,
	}
}

// Next advances to the next limb. It returns false once every limb has been
// produced.
func (d *Dumper) Next() (ok bool) {
	if d.i+1 >= d.x.Len() {
		return false
	}

	d.i++
	d.line = FormatBinary(d.x.Limb(d.i))

	return true
}

// Index returns the index of the current limb (0 is the most significant).
func (d *Dumper) Index() int {
	return d.i
}

// Line returns the formatted current limb.
func (d *Dumper) Line() string {
	return d.line
}

// DumpBinary returns one FormatBinary line per limb of x, most significant
// limb first. The output is meant for people and is not a serialization
// format.
func (x *Int) DumpBinary() []string {
	lines := make([]string, 0, x.Len())

	d := x.Dumper()
	for d.Next() {
		lines = append(lines, d.Line())
	}

	return lines
}

// Fdump writes the binary dump of x to w. Each limb is written on its own
// line prefixed by its three digit index, and the dump ends with a blank line:
//
//	000: 00000000 00000000 00000000 00000001
//	001: 00000000 00000000 00000001 00001010
func Fdump(w io.Writer, x *Int) (err error) {
	defer Error.WrapP(&err)

	d := x.Dumper()
	for d.Next() {
		_, err = fmt.Fprintf(w, "%03d: %s\n", d.Index(), d.Line())
		if err != nil {
			return err
		}
	}

	_, err = io.WriteString(w, "\n")
	if err != nil {
		return err
	}

	return nil
}
