package netsnmp

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseScalar(t *testing.T) {
	value, present := parseScalar([]byte("Cisco IOS Software, C2960 Software\n"))
	if !present {
		t.Fatal("parseScalar reported value absent")
	}
	if value != "Cisco IOS Software, C2960 Software" {
		t.Errorf("parseScalar = %q, want the value with one trailing newline trimmed", value)
	}
}

func TestParseScalar_Absent(t *testing.T) {
	for _, output := range []string{
		"No Such Instance currently exists at this OID\n",
		"No Such Object available on this agent at this OID\n",
	} {
		if _, present := parseScalar([]byte(output)); present {
			t.Errorf("parseScalar(%q) reported a value, want absent", output)
		}
	}
}

func TestParseScalar_TrimsSingleNewline(t *testing.T) {
	value, _ := parseScalar([]byte("line one\nline two\n\n"))
	if value != "line one\nline two\n" {
		t.Errorf("parseScalar = %q, want only the final newline trimmed", value)
	}
}

func TestParsePairs(t *testing.T) {
	output := ".1.3.6.1.2.1.2.2.1.1.1 = 1\n" +
		".1.3.6.1.2.1.2.2.1.2.1 = Vlan1\n" +
		".1.3.6.1.2.1.2.2.1.3.1 = 53\n"

	pairs := parsePairs([]byte(output))
	if len(pairs) != 3 {
		t.Fatalf("parsePairs returned %d pairs, want 3", len(pairs))
	}

	if pairs[1].OID != ".1.3.6.1.2.1.2.2.1.2.1" {
		t.Errorf("pairs[1].OID = %q, want .1.3.6.1.2.1.2.2.1.2.1", pairs[1].OID)
	}
	if pairs[1].Value == nil || *pairs[1].Value != "Vlan1" {
		t.Errorf("pairs[1].Value = %v, want Vlan1", pairs[1].Value)
	}
}

func TestParsePairs_AbsentValuePreservesPosition(t *testing.T) {
	output := ".1.3.6.1.2.1.2.2.1.1.1 = 1\n" +
		".1.3.6.1.2.1.2.2.1.3 = No Such Instance currently exists at this OID\n" +
		".1.3.6.1.2.1.2.2.1.2.1 = Vlan1\n"

	pairs := parsePairs([]byte(output))
	if len(pairs) != 3 {
		t.Fatalf("parsePairs returned %d pairs, want 3", len(pairs))
	}

	if pairs[1].OID != ".1.3.6.1.2.1.2.2.1.3" {
		t.Errorf("pairs[1].OID = %q, want the absent OID in its original position", pairs[1].OID)
	}
	if pairs[1].Value != nil {
		t.Errorf("pairs[1].Value = %q, want nil for no-such-instance", *pairs[1].Value)
	}
	if pairs[0].Value == nil || pairs[2].Value == nil {
		t.Error("neighboring values should be unaffected by an absent value")
	}
}

func TestParsePairs_SplitsOnFirstSeparatorOnly(t *testing.T) {
	output := ".1.3.6.1.2.1.1.4.0 = admin = on call\n"

	pairs := parsePairs([]byte(output))
	if len(pairs) != 1 {
		t.Fatalf("parsePairs returned %d pairs, want 1", len(pairs))
	}
	if pairs[0].Value == nil || *pairs[0].Value != "admin = on call" {
		t.Errorf("pairs[0].Value = %v, want the value including its own separator text", pairs[0].Value)
	}
}

func TestParsePairs_Idempotent(t *testing.T) {
	output := []byte(".1.3.6.1.2.1.2.2.1.1.1 = 1\n.1.3.6.1.2.1.2.2.1.2.1 = Vlan1\n")

	first := parsePairs(output)
	second := parsePairs(output)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("re-parsing the same output produced different results: %v vs %v", first, second)
	}
}

func TestParsePairs_Empty(t *testing.T) {
	if pairs := parsePairs(nil); len(pairs) != 0 {
		t.Errorf("parsePairs(nil) = %v, want no pairs", pairs)
	}
}

func tableOutput(rows ...string) []byte {
	var b strings.Builder
	b.WriteString("SNMP table: IF-MIB::ifTable\n\n")
	for _, row := range rows {
		b.WriteString(row)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

func TestParseTable_RoundTrip(t *testing.T) {
	delim := string(tableDelimiter)
	output := tableOutput(
		"ifIndex"+delim+"ifDescr",
		"1"+delim+"Vlan1",
	)

	table, err := parseTable(output, "")
	if err != nil {
		t.Fatalf("parseTable returned error: %v", err)
	}

	if !reflect.DeepEqual(table.Columns, []string{"ifIndex", "ifDescr"}) {
		t.Errorf("Columns = %v, want header order preserved", table.Columns)
	}
	if len(table.Rows) != 1 {
		t.Fatalf("parseTable returned %d rows, want 1", len(table.Rows))
	}
	want := Row{"ifIndex": "1", "ifDescr": "Vlan1"}
	if !reflect.DeepEqual(table.Rows[0], want) {
		t.Errorf("Rows[0] = %v, want %v", table.Rows[0], want)
	}
}

func TestParseTable_DelimiterSafeFieldContent(t *testing.T) {
	delim := string(tableDelimiter)
	output := tableOutput(
		"ifIndex"+delim+"ifAlias",
		"3"+delim+"uplink, core (do not touch)",
	)

	table, err := parseTable(output, "")
	if err != nil {
		t.Fatalf("parseTable returned error: %v", err)
	}
	if got := table.Rows[0]["ifAlias"]; got != "uplink, core (do not touch)" {
		t.Errorf("ifAlias = %q, printable punctuation must survive intact", got)
	}
}

func TestParseTable_SortStable(t *testing.T) {
	delim := string(tableDelimiter)
	output := tableOutput(
		"ifIndex"+delim+"ifDescr",
		"2"+delim+"second",
		"1"+delim+"first",
		"2"+delim+"tie-keeps-order",
	)

	table, err := parseTable(output, "ifIndex")
	if err != nil {
		t.Fatalf("parseTable returned error: %v", err)
	}

	if len(table.Rows) != 3 {
		t.Fatalf("parseTable returned %d rows, want 3", len(table.Rows))
	}
	if table.Rows[0]["ifIndex"] != "1" {
		t.Errorf("Rows[0].ifIndex = %q, want 1 after ascending sort", table.Rows[0]["ifIndex"])
	}
	if table.Rows[1]["ifDescr"] != "second" || table.Rows[2]["ifDescr"] != "tie-keeps-order" {
		t.Errorf("tied rows reordered: %v then %v", table.Rows[1], table.Rows[2])
	}
}

func TestParseTable_UnsortedPreservesDeviceOrder(t *testing.T) {
	delim := string(tableDelimiter)
	output := tableOutput(
		"ifIndex"+delim+"ifDescr",
		"2"+delim+"b",
		"1"+delim+"a",
	)

	table, err := parseTable(output, "")
	if err != nil {
		t.Fatalf("parseTable returned error: %v", err)
	}
	if table.Rows[0]["ifIndex"] != "2" {
		t.Errorf("Rows[0].ifIndex = %q, want device-reported order preserved", table.Rows[0]["ifIndex"])
	}
}

func TestParseTable_ShortOutput(t *testing.T) {
	table, err := parseTable([]byte("SNMP table: IF-MIB::ifTable\n"), "")
	if err != nil {
		t.Fatalf("parseTable returned error: %v", err)
	}
	if len(table.Rows) != 0 {
		t.Errorf("parseTable on preamble-only output returned %d rows, want 0", len(table.Rows))
	}
}
