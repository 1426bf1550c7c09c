package netsnmp

import (
	"encoding/csv"
	"fmt"
	"sort"
	"strings"
)

// tableDelimiter separates snmptable fields. ASCII RS is reserved because a
// printable character could collide with legitimate field content such as
// port descriptions containing commas or tabs.
const tableDelimiter = '\x1e'

// pairSeparator splits an OID from its value in snmpbulkget/snmpwalk
// output. Only the first occurrence on a line is the separator; values may
// legally contain the same substring.
const pairSeparator = " = "

// Pair is one OID and its reported value. Value is nil when the device
// reported the OID as absent (No Such Instance / No Such Object).
type Pair struct {
	OID   string
	Value *string
}

// Row maps column names to cell values for one table row.
type Row map[string]string

// Table holds snmptable results. Columns preserves the header order, Rows
// the device-reported row order unless a sort key was applied.
type Table struct {
	Columns []string
	Rows    []Row
}

// parseScalar decodes single-OID query output. The second return is false
// when the tool reported the OID as absent on the device.
func parseScalar(stdout []byte) (string, bool) {
	text := strings.TrimSuffix(string(stdout), "\n")
	if absentMarker(text) {
		return "", false
	}
	return text, true
}

// parsePairs decodes snmpbulkget and snmpwalk output: one "OID = VALUE"
// line per result, in the order the tool reported them.
func parsePairs(stdout []byte) []Pair {
	text := strings.TrimSuffix(string(stdout), "\n")
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	pairs := make([]Pair, 0, len(lines))
	for _, line := range lines {
		oid, value, _ := strings.Cut(line, pairSeparator)
		pair := Pair{OID: oid}
		if !absentMarker(value) {
			v := value
			pair.Value = &v
		}
		pairs = append(pairs, pair)
	}
	return pairs
}

// parseTable decodes snmptable output. The two-line preamble (table title
// plus a blank line) is discarded, the first remaining record is the column
// header, and every following record becomes a Row keyed by that header. A
// non-empty sortKey sorts rows ascending by that column's text, stable on
// ties.
func parseTable(stdout []byte, sortKey string) (Table, error) {
	lines := strings.SplitN(string(stdout), "\n", 3)
	if len(lines) < 3 {
		return Table{}, nil
	}

	reader := csv.NewReader(strings.NewReader(lines[2]))
	reader.Comma = tableDelimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("parsing snmptable output: %w", err)
	}
	if len(records) == 0 {
		return Table{}, nil
	}

	table := Table{
		Columns: records[0],
		Rows:    make([]Row, 0, len(records)-1),
	}
	for _, record := range records[1:] {
		row := make(Row, len(table.Columns))
		for i, column := range table.Columns {
			if i < len(record) {
				row[column] = record[i]
			}
		}
		table.Rows = append(table.Rows, row)
	}

	if sortKey != "" {
		sort.SliceStable(table.Rows, func(i, j int) bool {
			return table.Rows[i][sortKey] < table.Rows[j][sortKey]
		})
	}

	return table, nil
}

func absentMarker(value string) bool {
	return strings.Contains(value, markerNoSuchInstance) ||
		strings.Contains(value, markerNoSuchObject)
}
