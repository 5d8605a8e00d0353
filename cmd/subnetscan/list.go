package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/graytensor/subnetscan/internal/config"
	"github.com/graytensor/subnetscan/internal/logutil"
	"github.com/graytensor/subnetscan/internal/output"
	"github.com/graytensor/subnetscan/internal/rpc"
	"github.com/graytensor/subnetscan/internal/subnet"
)

func listCmd() *cobra.Command {
	var (
		network  string
		endpoint string
		outPath  string
		noColor  bool
		debug    bool
		deep     bool
		logLevel string
		timeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all subnets with validator, miner, emission and price data",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Root().PersistentFlags().GetString("config")
			return runList(cmd.Context(), listOptions{
				configPath: cfgPath,
				network:    network,
				endpoint:   endpoint,
				outPath:    outPath,
				noColor:    noColor,
				debug:      debug,
				deep:       deep,
				logLevel:   logLevel,
				timeout:    timeout,
			})
		},
	}

	cmd.Flags().StringVar(&network, "network", "finney", "Network to connect to: finney|test|local")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "Custom endpoint URL (overrides the network's default)")
	cmd.Flags().StringVar(&outPath, "output", "", "Output file path for saving results (JSON format)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	cmd.Flags().BoolVar(&debug, "debug", false, "Show the error column and include empty subnets")
	cmd.Flags().BoolVar(&deep, "deep", false, "Perform deep inspection of descriptor and metagraph fields")
	cmd.Flags().StringVar(&logLevel, "log-level", logutil.DefaultLogLevel, "Log level")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Per-request timeout (0 = use config default)")

	return cmd
}

type listOptions struct {
	configPath string
	network    string
	endpoint   string
	outPath    string
	noColor    bool
	debug      bool
	deep       bool
	logLevel   string
	timeout    time.Duration
}

func runList(ctx context.Context, opts listOptions) error {
	logger, err := logutil.Setup(opts.logLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if opts.noColor {
		output.DisableColors()
	}

	cfg := config.Default()
	if opts.configPath != "" {
		cfg, err = config.Load(opts.configPath)
		if err != nil {
			return err
		}
	}

	endpoint := opts.endpoint
	if endpoint == "" {
		endpoint, err = cfg.Endpoint(opts.network)
		if err != nil {
			return err
		}
	}

	timeout := cfg.Defaults.Timeout
	if opts.timeout > 0 {
		timeout = opts.timeout
	}

	logger.Info("connecting to subtensor",
		zap.String("network", opts.network),
		zap.String("endpoint", endpoint))

	client := rpc.NewClient(opts.network, endpoint, timeout, cfg.Defaults.MaxRetries)
	reconciler := subnet.NewReconciler(client, logger, opts.deep)
	walker := subnet.NewWalker(client, reconciler, logger)
	walker.Progress = func(done, total int) {
		fmt.Fprintf(os.Stderr, "\rProcessing subnet data... %d/%d", done, total)
		if done == total {
			fmt.Fprintln(os.Stderr)
		}
	}

	records := walker.Walk(ctx)

	output.RenderTable(records, output.TableOptions{Debug: opts.debug})

	if opts.outPath != "" {
		if err := output.WriteFile(opts.outPath, records); err != nil {
			return err
		}
		fmt.Printf("\nData saved to: %s\n", opts.outPath)
	}

	return nil
}
