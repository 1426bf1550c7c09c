package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/portscout/portscout/internal/config"
	"github.com/portscout/portscout/internal/netsnmp"
	"github.com/portscout/portscout/internal/switchinfo"
	"github.com/portscout/portscout/pkg/models"
)

var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "portscout",
	Short: "Switch port inventory over SNMP",
	Long: `Portscout connects to a network switch over SNMP, identifies its make and
model, and lists its ethernet ports, optionally filtered by description
keyword or native VLAN.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("portscout %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", buildDate)
	},
}

var pollCmd = &cobra.Command{
	Use:   "poll ADDRESS [desc|vlan] [KEYWORD]",
	Short: "Poll a switch and list its ethernet ports",
	Long: `Poll connects to the switch at ADDRESS, prints its hostname, make, and
model, and lists its ethernet ports. With a filter type the port list is
narrowed: "desc" matches KEYWORD (default UNUSED) against port
descriptions, "vlan" matches KEYWORD (default 2) against the native VLAN.`,
	Args: cobra.RangeArgs(1, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return runPoll(cmd, args, cfg)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(pollCmd)

	pollCmd.Flags().StringP("community", "c", "", "SNMPv2 read community string (prompted for when omitted)")
	pollCmd.Flags().IntP("port", "p", 0, "SNMP agent port")
	pollCmd.Flags().DurationP("timeout", "t", 0, "per-query timeout")
	pollCmd.Flags().Bool("json", false, "print results as JSON")
	pollCmd.Flags().Bool("no-progress", false, "disable the progress bar")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runPoll(cmd *cobra.Command, args []string, cfg *config.Config) error {
	target := args[0]

	var kind switchinfo.FilterKind
	var keyword string
	if len(args) >= 2 {
		kind = switchinfo.FilterKind(args[1])
		if kind != switchinfo.FilterDescription && kind != switchinfo.FilterVLAN {
			return fmt.Errorf("unknown filter type %q (want desc or vlan)", args[1])
		}
	}
	if len(args) == 3 {
		keyword = args[2]
	}

	if err := netsnmp.CheckTools(); err != nil {
		return err
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	community, _ := cmd.Flags().GetString("community")
	if community == "" {
		community = cfg.Community
	}
	if community == "" {
		community, err = promptCommunity()
		if err != nil {
			return err
		}
	}

	opts := switchinfo.Options{
		Community: community,
		Port:      cfg.Port,
		Timeout:   cfg.Timeout,
	}
	if port, _ := cmd.Flags().GetInt("port"); port > 0 {
		opts.Port = port
	}
	if timeout, _ := cmd.Flags().GetDuration("timeout"); timeout > 0 {
		opts.Timeout = timeout
	}
	noProgress, _ := cmd.Flags().GetBool("no-progress")
	asJSON, _ := cmd.Flags().GetBool("json")
	if cfg.ShowProgress && !noProgress && !asJSON {
		opts.Progress = os.Stderr
	}

	poller := switchinfo.NewPoller(netsnmp.NewClient(nil, logger), logger)
	sw, err := poller.Poll(context.Background(), target, opts)
	if err != nil {
		return err
	}

	ports := sw.Ports
	if kind != "" {
		ports, err = switchinfo.FilterPorts(sw.Ports, kind, keyword)
		if err != nil {
			return err
		}
	}

	if asJSON {
		return writeJSON(sw, ports)
	}
	switchinfo.WriteReport(os.Stdout, sw, ports)
	return nil
}

func writeJSON(sw *models.Switch, ports []models.Port) error {
	report := *sw
	report.Ports = ports
	encoded, err := json.MarshalIndent(&report, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(encoded))
	return nil
}

// promptCommunity reads the community string without echoing it, the same
// way a password prompt would.
func promptCommunity() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("no community string given and stdin is not a terminal; use --community or the config file")
	}

	fmt.Fprint(os.Stderr, "SNMP Community String: ")
	secret, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read community string: %w", err)
	}
	return string(secret), nil
}

func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if cfg.LogLevel != "" {
		level, err := zap.ParseAtomicLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
		}
		zapCfg.Level = level
	}
	zapCfg.OutputPaths = []string{"stderr"}
	if cfg.LogFile != "" {
		zapCfg.OutputPaths = []string{cfg.LogFile}
	}
	return zapCfg.Build()
}
