package core

// BuildTable zips each data line against the header.
//
// Lines whose field count differs from the header count are dropped without
// error; a table with zero rows is valid and maps to an all-default record.
// If a header name repeats, the later column wins in the row map.
func BuildTable(header []string, lines [][]string) *Table {
	t := &Table{
		Headers: header,
		Rows:    make([]Row, 0, len(lines)),
	}

	for _, fields := range lines {
		if len(fields) != len(header) {
			t.Dropped++
			continue
		}

		row := make(Row, len(header))
		for i, h := range header {
			row[h] = fields[i]
		}
		t.Rows = append(t.Rows, row)
	}

	return t
}

// TableFromText tokenizes text and builds the table from its first line
// as header and the remaining lines as data.
func TableFromText(text string) (*Table, error) {
	lines, err := SplitLines(text)
	if err != nil {
		return nil, err
	}

	header := SplitFields(lines[0])
	data := make([][]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		data = append(data, SplitFields(line))
	}

	return BuildTable(header, data), nil
}
