package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/vf2/cmd/vf2ctl/internal/config"
	"github.com/katalvlaran/vf2/cmd/vf2ctl/internal/graphfile"
	"github.com/katalvlaran/vf2/cmd/vf2ctl/internal/ordering"
	"github.com/katalvlaran/vf2/vf2"
)

var (
	patternFile  string
	hostFile     string
	matchMode    string
	matchLimit   int
	noAttributes bool
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Find every mapping of a pattern graph into a host graph",
	Example: fmt.Sprintf(`  %s match --pattern p.yaml --host h.yaml
  %s match --pattern p.yaml --host h.yaml --mode graph
  %s match --pattern p.yaml --host h.yaml --limit 1 --no-attributes`,
		BinName(), BinName(), BinName()),
	RunE: runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringVar(&patternFile, "pattern", "", "pattern graph YAML file (required)")
	matchCmd.Flags().StringVar(&hostFile, "host", "", "host graph YAML file (required)")
	matchCmd.Flags().StringVar(&matchMode, "mode", "", "graph|subgraph|mono (default from config, else subgraph)")
	matchCmd.Flags().IntVar(&matchLimit, "limit", -1, "stop after N mappings (default from config, else unlimited)")
	matchCmd.Flags().BoolVar(&noAttributes, "no-attributes", false, "ignore node attributes entirely")
	_ = matchCmd.MarkFlagRequired("pattern")
	_ = matchCmd.MarkFlagRequired("host")
}

func runMatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	mode := cfg.Mode
	if matchMode != "" {
		mode = matchMode
	}
	vfMode, err := parseMode(mode)
	if err != nil {
		return err
	}

	limit := cfg.Limit
	if matchLimit >= 0 {
		limit = matchLimit
	}

	p, err := graphfile.Load(patternFile)
	if err != nil {
		return err
	}
	h, err := graphfile.Load(hostFile)
	if err != nil {
		return err
	}

	hostOrder, err := ordering.HostOrder(h)
	if err != nil {
		return fmt.Errorf("match: %w", err)
	}

	opts := []vf2.Option{vf2.WithMode(vfMode), vf2.WithLimit(limit), vf2.WithHostOrder(hostOrder)}
	if cfg.NoAttributes || noAttributes {
		opts = append(opts, vf2.WithSemanticPredicate(func(_, _ vf2.Graph, _, _ string) bool {
			return true
		}))
	}

	mappings, err := vf2.Match(p, h, opts...)
	if err != nil {
		return fmt.Errorf("match: %w", err)
	}

	return graphfile.FromMappings(mappings).WriteTo(os.Stdout)
}

func parseMode(s string) (vf2.Mode, error) {
	switch s {
	case "", "subgraph":
		return vf2.ModeSubgraph, nil
	case "graph":
		return vf2.ModeGraph, nil
	case "mono", "monomorphism":
		return vf2.ModeMonomorphism, nil
	default:
		return 0, fmt.Errorf("match: unknown mode %q (want graph, subgraph, or mono)", s)
	}
}
