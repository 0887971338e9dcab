package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/statespace/gridworld"
	"github.com/katalvlaran/statespace/mdp"
	"github.com/katalvlaran/statespace/search"
)

const envPrefix = "GRIDSOLVE"

// newRootCmd wires flags, environment and config file into one viper
// instance per command so that tests stay isolated.
func newRootCmd(out io.Writer) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "gridsolve",
		Short:         "Solve a grid world with value iteration",
		Long:          `gridsolve parses a grid layout, trains value iteration under the chosen noise, discount and living reward, then prints the greedy policy and the utility table.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			setupLogging(v.GetString("log-level"))
			return run(v, out)
		},
	}

	f := cmd.Flags()
	f.String("layout", "", "layout file, one row per line (default: the bridge-and-cliff world)")
	f.String("config", "", "YAML file with noise, discount, living_reward and terminals")
	f.String("preset", "", "named configuration: "+strings.Join(gridworld.PresetNames(), ", "))
	f.Int("iterations", 0, "fixed number of sweeps; 0 trains until convergence")
	f.Float64("epsilon", 1e-6, "convergence threshold when --iterations is 0")
	f.Int("max-iterations", 10_000, "sweep budget when --iterations is 0")
	f.Float64("noise", 0, "override the slip probability")
	f.Float64("discount", 0, "override the discount factor")
	f.Float64("living-reward", 0, "override the per-step reward")
	f.String("load", "", "utilities JSON to resume training from")
	f.String("out", "", "write the trained utilities to this JSON file")
	f.Bool("path", false, "also print the A* route from the start to the nearest exit")
	f.String("log-level", "info", "debug, info, warn, error or disabled")
	_ = v.BindPFlags(f)

	return cmd
}

func setupLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

func run(v *viper.Viper, out io.Writer) error {
	cfg, err := loadConfig(v)
	if err != nil {
		return err
	}
	layout, err := loadLayout(v.GetString("layout"))
	if err != nil {
		return err
	}
	g, err := gridworld.Parse(layout, cfg)
	if err != nil {
		return err
	}
	log.Info().
		Int("width", g.Width).
		Int("height", g.Height).
		Float64("noise", cfg.Noise).
		Float64("discount", cfg.Discount).
		Float64("living-reward", cfg.LivingReward).
		Msg("grid-loaded")
	if !g.Reachable() {
		log.Warn().Int("regions", len(g.Regions())).Msg("no-exit-reachable-from-start")
	}

	vi, err := mdp.NewValueIteration[gridworld.Cell, gridworld.Direction](g,
		mdp.WithDiscount(cfg.Discount),
		mdp.WithKeyFunc(gridworld.Key),
	)
	if err != nil {
		return err
	}
	if path := v.GetString("load"); path != "" {
		if err = vi.LoadFile(path); err != nil {
			return err
		}
	}
	if err = train(v, vi); err != nil {
		return err
	}

	policy, err := gridworld.RenderPolicy(g, vi)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "policy after %d sweeps:\n%s\n", vi.Iterations(), policy)
	fmt.Fprintf(out, "utilities:\n%s", gridworld.RenderUtilities(g, vi))

	if v.GetBool("path") {
		if err = printRoute(out, g); err != nil {
			return err
		}
	}
	if path := v.GetString("out"); path != "" {
		if err = vi.SaveFile(path); err != nil {
			return err
		}
		log.Info().Str("path", path).Msg("utilities-saved")
	}
	return nil
}

// loadConfig layers preset, config file, then flags and environment.
func loadConfig(v *viper.Viper) (gridworld.Config, error) {
	cfg := gridworld.DefaultConfig()
	if name := v.GetString("preset"); name != "" {
		p, err := gridworld.Preset(name)
		if err != nil {
			return cfg, err
		}
		cfg = p
	}
	if path := v.GetString("config"); path != "" {
		fromFile, err := gridworld.LoadConfigFileOnto(path, cfg)
		if err != nil {
			return cfg, fmt.Errorf("reading config file %s: %w", path, err)
		}
		cfg = fromFile
	}
	if v.IsSet("noise") {
		cfg.Noise = v.GetFloat64("noise")
	}
	if v.IsSet("discount") {
		cfg.Discount = v.GetFloat64("discount")
	}
	if v.IsSet("living-reward") {
		cfg.LivingReward = v.GetFloat64("living-reward")
	}
	return cfg, cfg.Validate()
}

// loadLayout reads a layout file, ignoring blank lines. An empty path
// selects the built-in bridge-and-cliff world.
func loadLayout(path string) ([]string, error) {
	if path == "" {
		return gridworld.DiscountLayout, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading layout: %w", err)
	}
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	return lo.FilterMap(lines, func(l string, _ int) (string, bool) {
		l = strings.TrimSpace(l)
		return l, l != ""
	}), nil
}

func train(v *viper.Viper, vi *mdp.ValueIteration[gridworld.Cell, gridworld.Direction]) error {
	if n := v.GetInt("iterations"); n > 0 {
		return vi.Train(n)
	}
	n, delta, err := vi.TrainUntil(v.GetFloat64("epsilon"), v.GetInt("max-iterations"))
	if err != nil {
		return err
	}
	log.Info().Int("sweeps", n).Float64("delta", delta).Msg("training-finished")
	return nil
}

func printRoute(out io.Writer, g *gridworld.Grid) error {
	res, err := search.AStar[gridworld.Cell, gridworld.Direction](g, g.InitialState(), gridworld.TrueDistance)
	if err != nil {
		return err
	}
	if !res.Found {
		fmt.Fprintln(out, "\nroute: none")
		return nil
	}
	fmt.Fprintf(out, "\nroute %v (cost %v, %d expanded):\n%s", res.Path, res.Cost, res.Stats.Expanded, gridworld.RenderPath(g, res.Path))
	return nil
}
