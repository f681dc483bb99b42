package truthtable

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Parse parses a truth table from r.
// The first non-empty line lists the variable names; each following line
// holds one value token per variable and then the output bit, all
// whitespace-separated. Rows never make Parse fail: a missing field keeps
// its default (false) value and a non-numeric token counts as false. The
// only error Parse can return comes from the reader itself.
func Parse(r io.Reader) (*Table, error) {
	sc := bufio.NewScanner(r)
	var t Table
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if t.Vars == nil {
			t.Vars = fields
			continue
		}
		t.Rows = append(t.Rows, t.parseRow(fields))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("could not parse truth table: %v", err)
	}
	return &t, nil
}

// ParseFile parses the truth table stored at path.
func ParseFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %v", path, err)
	}
	defer f.Close()
	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("could not parse %q: %v", path, err)
	}
	return t, nil
}

// parseRow builds one table row from its whitespace-separated fields.
// Fields map positionally onto the declared variables; the last field is the
// output bit. On a short row the last field doubles as both the final value
// and the output, mirroring how the positional mapping runs out.
func (t *Table) parseRow(fields []string) Row {
	row := Row{Values: make(map[string]bool, len(t.Vars))}
	for i, name := range t.Vars {
		if i < len(fields) {
			row.Values[name] = bit(fields[i])
		} else {
			row.Values[name] = false
		}
	}
	row.Output = bit(fields[len(fields)-1])
	return row
}

// bit interprets a field as a boolean: any non-zero integer is true,
// anything unparsable is false.
func bit(field string) bool {
	n, err := strconv.Atoi(field)
	return err == nil && n != 0
}
