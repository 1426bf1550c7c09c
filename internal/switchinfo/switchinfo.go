// Package switchinfo polls a network switch over SNMP and assembles its
// identity and ethernet port list.
package switchinfo

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/portscout/portscout/internal/netsnmp"
	"github.com/portscout/portscout/internal/oids"
	"github.com/portscout/portscout/internal/probe"
	"github.com/portscout/portscout/pkg/models"
)

// Options controls one switch poll.
type Options struct {
	Community string
	Port      int
	Timeout   time.Duration

	// Progress receives a progress bar while port data is gathered. Nil
	// disables progress output.
	Progress io.Writer
}

// Poller gathers switch and port information through the command-line
// query client.
type Poller struct {
	client  *netsnmp.Client
	logger  *zap.Logger
	checkFn func(probe.Config) (string, error)
}

// NewPoller creates a Poller around the given query client.
func NewPoller(client *netsnmp.Client, logger *zap.Logger) *Poller {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	return &Poller{
		client:  client,
		logger:  logger.Named("switchinfo"),
		checkFn: probe.Check,
	}
}

// Poll checks that the target answers SNMP, gathers its name, make, and
// model, then walks its interfaces and collects name, native VLAN, and
// description for every ethernet port. It fails before any port polling
// when the device is unreachable.
func (p *Poller) Poll(ctx context.Context, target string, opts Options) (*models.Switch, error) {
	address, err := netsnmp.ValidateAddress(target)
	if err != nil {
		return nil, err
	}
	if opts.Port <= 0 {
		opts.Port = netsnmp.DefaultPort
	}
	if opts.Timeout <= 0 {
		opts.Timeout = netsnmp.DefaultTimeout
	}

	if _, err := p.checkFn(probe.Config{
		Target:    address,
		Port:      uint16(opts.Port),
		Community: opts.Community,
		Timeout:   opts.Timeout,
	}); err != nil {
		return nil, fmt.Errorf("switch %s appears to be unavailable: %w", address, err)
	}

	sw := &models.Switch{Address: address}

	name, present, err := p.client.Get(ctx, opts.Community, address, oids.SysName, opts.Port, opts.Timeout)
	if err != nil {
		return nil, err
	}
	sw.Name = name
	if !present || name == "" {
		sw.Name = "No name defined"
	}

	descr, present, err := p.client.Get(ctx, opts.Community, address, oids.SysDescr, opts.Port, opts.Timeout)
	if err != nil {
		return nil, err
	}
	if present {
		sw.Make, sw.Model = DetectVendor(descr)
	}

	vlanOID, vlanSupported := oids.NativeVlan(sw.Make)
	if !vlanSupported {
		p.logger.Info("native vlan detection not supported for this switch",
			zap.String("address", address),
			zap.String("make", sw.Make),
		)
	}

	indexes, err := p.interfaceIndexes(ctx, address, opts)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("gathering port data",
		zap.String("address", address),
		zap.Int("interfaces", len(indexes)),
	)

	var bar *progressbar.ProgressBar
	if opts.Progress != nil {
		bar = progressbar.NewOptions(len(indexes),
			progressbar.OptionSetWriter(opts.Progress),
			progressbar.OptionSetDescription("Gathering port data"),
		)
	}

	for _, index := range indexes {
		if bar != nil {
			_ = bar.Add(1)
		}

		ifType, present, err := p.column(ctx, address, oids.IfType, index, opts)
		if err != nil {
			return nil, err
		}
		if !present || ifType != oids.IfTypeEthernet {
			continue
		}

		port := models.Port{Index: index}
		if port.Name, _, err = p.column(ctx, address, oids.IfName, index, opts); err != nil {
			return nil, err
		}
		if port.Description, _, err = p.column(ctx, address, oids.IfAlias, index, opts); err != nil {
			return nil, err
		}
		if vlanSupported {
			if port.VLAN, _, err = p.column(ctx, address, vlanOID, index, opts); err != nil {
				return nil, err
			}
		}

		sw.Ports = append(sw.Ports, port)
	}

	if bar != nil {
		_ = bar.Finish()
	}

	return sw, nil
}

// interfaceIndexes walks ifIndex and returns every reported interface
// index in traversal order.
func (p *Poller) interfaceIndexes(ctx context.Context, address string, opts Options) ([]int, error) {
	pairs, err := p.client.Walk(ctx, opts.Community, address, oids.IfIndex, opts.Port, opts.Timeout)
	if err != nil {
		return nil, err
	}

	indexes := make([]int, 0, len(pairs))
	for _, pair := range pairs {
		if pair.Value == nil {
			continue
		}
		index, err := strconv.Atoi(*pair.Value)
		if err != nil {
			p.logger.Warn("skipping non-numeric ifIndex value",
				zap.String("oid", pair.OID),
				zap.String("value", *pair.Value),
			)
			continue
		}
		indexes = append(indexes, index)
	}
	return indexes, nil
}

// column reads one cell of an interface table: the column OID suffixed
// with the interface index.
func (p *Poller) column(ctx context.Context, address, columnOID string, index int, opts Options) (string, bool, error) {
	oid := columnOID + "." + strconv.Itoa(index)
	return p.client.Get(ctx, opts.Community, address, oid, opts.Port, opts.Timeout)
}
