package srcline

import (
	"bufio"
	"fmt"
	"io"
)

// Location names a line in an input file.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Reader yields successive lines from one named input stream, tracking the
// location of the line most recently returned.
type Reader struct {
	sc  *bufio.Scanner
	loc Location
	err error
}

// NewReader creates a line reader over r whose locations carry name.
func NewReader(name string, r io.Reader) *Reader {
	return &Reader{
		sc:  bufio.NewScanner(r),
		loc: Location{Name: name},
	}
}

// Next returns the next input line, or false at end of input. After a false
// return Err reports any underlying read error.
func (rd *Reader) Next() (string, bool) {
	if rd.sc.Scan() {
		rd.loc.Line++
		return rd.sc.Text(), true
	}
	rd.err = rd.sc.Err()
	return "", false
}

// Loc returns the location of the line most recently returned by Next.
func (rd *Reader) Loc() Location { return rd.loc }

// Err returns the first read error encountered, if any.
func (rd *Reader) Err() error { return rd.err }
