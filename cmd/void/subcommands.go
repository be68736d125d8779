package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	core "github.com/void-protocol/void-sdk-go/internal/core"
	"github.com/void-protocol/void-sdk-go/internal/telemetry"
	"github.com/void-protocol/void-sdk-go/pkg/void"
)

// Resolve the effective configuration: flags override the selected profile,
// which overrides the config file and environment.
func resolveConfig(cmd *cobra.Command) (core.Config, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := core.LoadConfig(cfgPath)
	if err != nil {
		return cfg, err
	}

	if name, _ := cmd.Flags().GetString("profile"); name != "" {
		store, err := core.OpenStore(cfg.StorePath)
		if err != nil {
			return cfg, err
		}
		defer store.Close()
		p, err := store.GetProfile(cmd.Context(), name)
		if err != nil {
			return cfg, err
		}
		cfg.ProgramID = p.ProgramID
		cfg.Cluster = p.Cluster
		if p.RPCURL != "" {
			cfg.RPCURL = p.RPCURL
		}
	}

	if cmd.Flags().Changed("program-id") {
		cfg.ProgramID, _ = cmd.Flags().GetString("program-id")
	}
	if cmd.Flags().Changed("cluster") {
		cfg.Cluster, _ = cmd.Flags().GetString("cluster")
	}
	if cmd.Flags().Changed("rpc-url") {
		cfg.RPCURL, _ = cmd.Flags().GetString("rpc-url")
	}
	return cfg, nil
}

// Build an SDK client from the resolved configuration
func newClient(cfg core.Config) *void.Client {
	opts := []void.Option{void.WithLogger(log.Logger)}
	if cfg.RPCURL != "" {
		opts = append(opts, void.WithRPCEndpoint(cfg.RPCURL))
	}
	if cfg.Telemetry.Enabled {
		opts = append(opts, void.WithCollector(telemetry.InitGlobal(true, cfg.Telemetry.FlushInterval)))
	}
	return void.NewClient(cfg.ClientConfig(), opts...)
}

// Inspect and check configuration
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the resolved configuration",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			out, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Check the resolved configuration for unusable values",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			if err := core.Validate(cfg); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "config ok")
			return nil
		},
	})
	return cmd
}

// Manage stored profiles
func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage named client profiles",
	}

	add := &cobra.Command{
		Use:   "add NAME",
		Short: "Save the resolved configuration under NAME",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			store, err := core.OpenStore(cfg.StorePath)
			if err != nil {
				return err
			}
			defer store.Close()
			p := core.Profile{Name: args[0], ProgramID: cfg.ProgramID, Cluster: cfg.Cluster, RPCURL: cfg.RPCURL}
			if err := store.SaveProfile(cmd.Context(), p); err != nil {
				return err
			}
			log.Info().Str("profile", p.Name).Str("cluster", p.Cluster).Msg("profile saved")
			return nil
		},
	}

	ls := &cobra.Command{
		Use:   "ls",
		Short: "List stored profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			store, err := core.OpenStore(cfg.StorePath)
			if err != nil {
				return err
			}
			defer store.Close()
			profiles, err := store.ListProfiles(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, p := range profiles {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.Name, p.Cluster, p.ProgramID, p.RPCURL)
			}
			return w.Flush()
		},
	}

	rm := &cobra.Command{
		Use:   "rm NAME",
		Short: "Delete a stored profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			store, err := core.OpenStore(cfg.StorePath)
			if err != nil {
				return err
			}
			defer store.Close()
			if err := store.DeleteProfile(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(add, ls, rm)
	return cmd
}

// Create a private account
func newInitAccountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-account",
		Short: "Initialize a new private account",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			client := newClient(cfg)
			sig, err := client.InitPrivateAccount(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sig)
			return nil
		},
	}
}

// Generate shell completion scripts
func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "completion [bash|zsh|fish|powershell]",
		Short:     "Generate shell completion script",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			default:
				return root.GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
