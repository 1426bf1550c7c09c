// Package netsnmp queries SNMP devices by shelling out to the Net-SNMP
// command line tools (snmpget, snmpbulkget, snmpwalk, snmptable) and
// parsing their textual output into typed results. It carries no protocol
// state: every call validates its target, performs exactly one command
// invocation, classifies any failure, and parses the output. There are no
// retries at this layer and no shared state between calls.
package netsnmp

import (
	"context"
	"net"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultPort is the standard SNMP agent port.
	DefaultPort = 161

	// DefaultTimeout is forwarded to the external tool when the caller
	// supplies none.
	DefaultTimeout = 3 * time.Second
)

// Client issues SNMP queries through an external command runner.
type Client struct {
	runner Runner
	logger *zap.Logger
}

// NewClient creates a Client. A nil runner falls back to os/exec, a nil
// logger to zap's production logger.
func NewClient(runner Runner, logger *zap.Logger) *Client {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	if runner == nil {
		runner = NewExecRunner(logger)
	}
	return &Client{
		runner: runner,
		logger: logger.Named("netsnmp"),
	}
}

// Get queries a single OID and returns its value. The second return is
// false when the device reported the OID as absent; that is a valid
// result, not an error.
func (c *Client) Get(ctx context.Context, community, address, oid string, port int, timeout time.Duration) (string, bool, error) {
	address, err := ValidateAddress(address)
	if err != nil {
		return "", false, err
	}
	port = normalizePort(port)

	args := append(commonArgs(community, address, "-Oqv", port, timeout), oid)
	out, err := c.run(ctx, "snmpget", args, address, port, oid, false)
	if err != nil {
		return "", false, err
	}

	value, present := parseScalar(out.Stdout)
	return value, present, nil
}

// GetBulk queries multiple explicit OIDs in one request and returns one
// Pair per requested OID, in request order.
func (c *Client) GetBulk(ctx context.Context, community, address string, oids []string, port int, timeout time.Duration) ([]Pair, error) {
	address, err := ValidateAddress(address)
	if err != nil {
		return nil, err
	}
	port = normalizePort(port)

	args := append(commonArgs(community, address, "-OQn", port, timeout), oids...)
	out, err := c.run(ctx, "snmpbulkget", args, address, port, strings.Join(oids, " "), false)
	if err != nil {
		return nil, err
	}

	return parsePairs(out.Stdout), nil
}

// Walk enumerates every OID under a subtree root and returns one Pair per
// leaf, in traversal order.
func (c *Client) Walk(ctx context.Context, community, address, oid string, port int, timeout time.Duration) ([]Pair, error) {
	address, err := ValidateAddress(address)
	if err != nil {
		return nil, err
	}
	port = normalizePort(port)

	args := append(commonArgs(community, address, "-OQn", port, timeout), oid)
	out, err := c.run(ctx, "snmpwalk", args, address, port, oid, false)
	if err != nil {
		return nil, err
	}

	return parsePairs(out.Stdout), nil
}

// Table queries a tabular OID through snmptable. A non-empty sortKey sorts
// the rows ascending by that column, stable on ties.
func (c *Client) Table(ctx context.Context, community, address, oid string, port int, timeout time.Duration, sortKey string) (Table, error) {
	address, err := ValidateAddress(address)
	if err != nil {
		return Table{}, err
	}
	port = normalizePort(port)

	args := []string{
		"-m", "ALL",
		"-t", timeoutSeconds(timeout),
		"-r", "0",
		"-v", "2c",
		"-Cif", string(tableDelimiter),
		"-c", community,
		hostPort(address, port),
		oid,
	}
	out, err := c.run(ctx, "snmptable", args, address, port, oid, true)
	if err != nil {
		return Table{}, err
	}

	return parseTable(out.Stdout, sortKey)
}

// run performs the single command invocation shared by every query kind
// and classifies a failed outcome into the error taxonomy.
func (c *Client) run(ctx context.Context, name string, args []string, address string, port int, oid string, table bool) (Outcome, error) {
	out, err := c.runner.Run(ctx, name, args...)
	if err != nil {
		return Outcome{}, err
	}

	if !out.Success() {
		cmdline := name + " " + strings.Join(args, " ")
		err := classifyFailure(out, cmdline, address, port, oid, table)
		c.logger.Debug("command failed",
			zap.String("name", name),
			zap.String("address", address),
			zap.String("oid", oid),
			zap.Error(err),
		)
		return Outcome{}, err
	}

	return out, nil
}

func commonArgs(community, address, outputFormat string, port int, timeout time.Duration) []string {
	return []string{
		outputFormat,
		"-t", timeoutSeconds(timeout),
		"-r", "0",
		"-v", "2c",
		"-c", community,
		hostPort(address, port),
	}
}

func hostPort(address string, port int) string {
	return net.JoinHostPort(address, strconv.Itoa(port))
}

func normalizePort(port int) int {
	if port <= 0 {
		return DefaultPort
	}
	return port
}

func timeoutSeconds(timeout time.Duration) string {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	seconds := int(timeout / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	return strconv.Itoa(seconds)
}
