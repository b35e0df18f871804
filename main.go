package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/muesli/termenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/rhythmix/docanim/api"
	"github.com/rhythmix/docanim/config"
	"github.com/rhythmix/docanim/demo"
	"github.com/rhythmix/docanim/manifest"
	"github.com/rhythmix/docanim/publish"
	"github.com/rhythmix/docanim/render"
)

// errExit ends the program with status 1 after the message was printed.
var errExit = errors.New("exit")

type app struct {
	Config   *config.Config
	Registry *demo.Registry
	Store    *manifest.Store
	Gatherer *prometheus.Registry
	Runner   *render.Runner

	out        io.Writer
	profile    termenv.Profile
	disconnect func()

	configPath string
	outDir     string
	verbose    bool
	force      bool
	parallel   int
	addr       string
}

func newApp(out io.Writer) *app {
	a := new(app)
	a.out = out
	a.profile = termenv.NewOutput(out).EnvColorProfile()
	a.disconnect = func() {}
	return a
}

// readConfig loads the config file, applies flag overrides and builds the
// demo registry. Custom demos are appended after the built-in ones.
func (a *app) readConfig() error {
	cfg, found, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if !found {
		slog.Debug("no config file, using defaults", "path", a.configPath)
	}
	if a.outDir != "" {
		cfg.Output.Dir = a.outDir
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.Config = cfg

	reg, err := demo.Builtin()
	if err != nil {
		return err
	}
	if cfg.DemosFile != "" {
		defs, err := demo.LoadFile(cfg.DemosFile)
		if err != nil {
			return err
		}
		for _, d := range defs {
			if err := reg.Register(d); err != nil {
				return fmt.Errorf("%s: %w", cfg.DemosFile, err)
			}
		}
	}
	a.Registry = reg
	return nil
}

// open prepares everything a render needs: the output directory, the
// manifest, metrics and the optional MQTT notifier.
func (a *app) open(ctx context.Context) error {
	if err := os.MkdirAll(a.Config.Output.Dir, 0o755); err != nil {
		return err
	}
	path := a.Config.Output.Manifest
	if !filepath.IsAbs(path) {
		path = filepath.Join(a.Config.Output.Dir, path)
	}
	store, err := manifest.Open(path)
	if err != nil {
		return err
	}
	a.Store = store

	notifier, disconnect, err := publish.Connect(ctx, a.Config.Mqtt)
	if err != nil {
		return err
	}
	a.disconnect = disconnect

	a.Gatherer = prometheus.NewRegistry()
	a.Gatherer.MustRegister(collectors.NewGoCollector())
	metrics := render.NewMetrics(a.Gatherer)
	a.Runner = render.NewRunner(a.Registry, a.Config, a.Store, notifier, metrics)
	return nil
}

func (a *app) close() {
	a.disconnect()
	if a.Store != nil {
		if err := a.Store.Close(); err != nil {
			slog.Warn("close manifest", "err", err)
		}
	}
}

func (a *app) printList() {
	fmt.Fprintln(a.out, "Available demos are:")
	for _, name := range a.Registry.Names() {
		fmt.Fprintf(a.out, "  - %s\n", name)
	}
}

func (a *app) printResult(res render.Result) {
	if res.Skipped {
		line := termenv.String("- unchanged: " + res.Record.File).Foreground(a.profile.Color("#888888"))
		fmt.Fprintln(a.out, line)
		return
	}
	green := a.profile.Color("#2ecc71")
	fmt.Fprintln(a.out, termenv.String("✓ GIF created: "+res.Record.File).Foreground(green))
	fmt.Fprintln(a.out, termenv.String("✓ Quality: "+res.Record.Quality).Foreground(green))
}

func (a *app) runDemos(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: docanim run <demo_name>...")
		a.printList()
		return errExit
	}
	for _, name := range args {
		if _, err := a.Registry.Lookup(name); err != nil {
			fmt.Fprintf(a.out, "Error: Demo '%s' not found.\n", name)
			a.printList()
			return errExit
		}
	}

	if err := a.open(cmd.Context()); err != nil {
		return err
	}
	defer a.close()

	for _, name := range args {
		fmt.Fprintf(a.out, "Running demo: %s\n", name)
		res, err := a.Runner.Render(cmd.Context(), name, a.force)
		if err != nil {
			return err
		}
		a.printResult(res)
		fmt.Fprintf(a.out, "Finished demo: %s\n", name)
	}
	return nil
}

func (a *app) runAll(cmd *cobra.Command, _ []string) error {
	if err := a.open(cmd.Context()); err != nil {
		return err
	}
	defer a.close()

	parallel := a.parallel
	if parallel <= 0 {
		parallel = a.Config.Parallel
	}
	results, err := a.Runner.RenderAll(cmd.Context(), a.Registry.Names(), parallel, a.force)
	if err != nil {
		return err
	}
	for _, res := range results {
		a.printResult(res)
	}
	return nil
}

func (a *app) serve(cmd *cobra.Command, _ []string) error {
	if err := a.open(cmd.Context()); err != nil {
		return err
	}
	defer a.close()

	addr := a.addr
	if addr == "" {
		addr = a.Config.Serve.Addr
	}
	return api.NewApi(addr, a.Runner, a.Store, a.Gatherer).Serve(cmd.Context())
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "docanim",
		Short:         "render documentation GIFs of stream expression evaluations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}
			handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
			slog.SetDefault(slog.New(handler))
			if a.verbose {
				mqtt.DEBUG = slog.NewLogLogger(handler, slog.LevelDebug)
			}
			return a.readConfig()
		},
	}
	rootCmd.SetOut(a.out)
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "config.yaml", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&a.outDir, "out", "", "output directory (overrides output.dir)")
	rootCmd.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "debug logging")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list available demos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.printList()
			return nil
		},
	}

	runCmd := &cobra.Command{
		Use:   "run [demo]...",
		Short: "render the named demos",
		RunE:  a.runDemos,
	}
	runCmd.Flags().BoolVar(&a.force, "force", false, "render even if unchanged")

	allCmd := &cobra.Command{
		Use:   "all",
		Short: "render every demo",
		Args:  cobra.NoArgs,
		RunE:  a.runAll,
	}
	allCmd.Flags().BoolVar(&a.force, "force", false, "render even if unchanged")
	allCmd.Flags().IntVar(&a.parallel, "parallel", 0, "concurrent renders (default from config)")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the GIF gallery",
		Args:  cobra.NoArgs,
		RunE:  a.serve,
	}
	serveCmd.Flags().StringVar(&a.addr, "addr", "", "listen address (default from config)")

	rootCmd.AddCommand(listCmd, runCmd, allCmd, serveCmd)
	return rootCmd
}

func main() {
	mqtt.ERROR = log.New(os.Stderr, "", 0)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := newApp(os.Stdout)
	if err := newRootCmd(a).ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errExit) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		stop()
		os.Exit(1)
	}
}
