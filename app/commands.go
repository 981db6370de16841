package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/urfave/cli"
	"go.dedis.ch/sigbench/bench"
	"go.dedis.ch/sigbench/cfgpath"
	"go.dedis.ch/sigbench/ciphersuite"
	"go.dedis.ch/sigbench/config"
	"go.dedis.ch/sigbench/log"
	"go.dedis.ch/sigbench/report"
	"golang.org/x/xerrors"
)

// DefaultConfig is the name of the binary we produce and is used to create a
// directory folder with this name
const DefaultConfig = "sigbench"

// DefaultConfigFile is the name of the configuration file in that folder.
const DefaultConfigFile = "sigbench.toml"

// out is where the reports and listings are written.
var out io.Writer = os.Stdout

// GetDefaultConfigFile returns the path of the configuration file read when
// none is given.
func GetDefaultConfigFile() string {
	return cfgpath.GetConfigFile(DefaultConfig, DefaultConfigFile)
}

// FlagDebug offers a debug-flag
var FlagDebug = cli.IntFlag{
	Name:  "debug, d",
	Value: 0,
	Usage: "debug-level: 1 for terse, 4 for every trial",
}

// FlagConfig indicates where the configuration-file is stored
var FlagConfig = cli.StringFlag{
	Name:  "config, c",
	Usage: "Configuration file, defaults to " + GetDefaultConfigFile(),
}

// benchFlags returns the flags setting a run. They have no default value so
// that a configuration file is not shadowed.
func benchFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "sizes",
			Usage: "comma separated message sizes in bytes (default 64,128,256)",
		},
		cli.StringFlag{
			Name:  "trials, n",
			Usage: "number of trials per scheme and message size (default 100)",
		},
		cli.StringFlag{
			Name:  "schemes",
			Usage: "comma separated schemes to run (default dsa,secp256k1)",
		},
		cli.StringFlag{
			Name:  "hash",
			Usage: "digest of the messages: sha256, blake2b or sha3",
		},
		cli.StringFlag{
			Name:  "on-failure",
			Usage: "abort or skip when a key generation or a signature fails",
		},
		cli.StringFlag{
			Name:  "retries",
			Usage: "consecutive randomness failures tolerated per batch",
		},
		cli.StringFlag{
			Name:  "format, f",
			Usage: "output format: text, csv or toml",
		},
		cli.StringFlag{
			Name:  "output, o",
			Usage: "write the report to this file instead of the standard output",
		},
		config.NewGenericCliFlag(),
	}
}

// CmdRun returns the command running the benchmark, which is also the
// default action. Every call returns fresh flags.
func CmdRun() cli.Command {
	return cli.Command{
		Name:    "run",
		Aliases: []string{"r"},
		Usage:   "Benchmark the schemes over the message sizes",
		Action:  runBench,
		Flags:   benchFlags(),
	}
}

// CmdList lists the schemes that can be benchmarked.
var CmdList = cli.Command{
	Name:    "list",
	Aliases: []string{"l"},
	Usage:   "List the known schemes",
	Action:  listSchemes,
}

// CmdConfig writes the default configuration file or checks the existing
// one.
var CmdConfig = cli.Command{
	Name:  "config",
	Usage: "Write the default configuration file, or check it when it exists",
	Action: func(c *cli.Context) error {
		return writeConfig(configFile(c), c.Bool("force"))
	},
	Flags: []cli.Flag{
		cli.BoolFlag{
			Name:  "force",
			Usage: "overwrite an existing configuration file",
		},
	},
}

// NewApp returns the sigbench command line application.
func NewApp() *cli.App {
	cliApp := cli.NewApp()
	cliApp.Name = "sigbench"
	cliApp.Usage = "Compare the cost of digital signature schemes"
	cliApp.Version = "0.1.0"

	cliApp.Commands = []cli.Command{
		CmdRun(),
		CmdList,
		CmdConfig,
	}
	cliApp.Flags = append([]cli.Flag{
		FlagDebug,
		FlagConfig,
	}, benchFlags()...)

	cliApp.Before = func(c *cli.Context) error {
		if c.GlobalIsSet("debug") {
			log.SetDebugVisible(c.GlobalInt("debug"))
		}
		return nil
	}

	// default action
	cliApp.Action = runBench
	return cliApp
}

// Sigbench runs the application with the process arguments and exits with
// a non-zero code on failure.
func Sigbench() {
	err := NewApp().Run(os.Args)
	log.ErrFatal(err)
}

// configFile returns the file given with --config or the default one.
func configFile(c *cli.Context) string {
	if c.GlobalIsSet("config") {
		return c.GlobalString("config")
	}
	return GetDefaultConfigFile()
}

// loadSettings merges the command line and the configuration file. A file
// given explicitly must exist, the default one is optional.
func loadSettings(c *cli.Context) (Settings, error) {
	sources := []config.Source{config.NewCliSource(c)}

	file := configFile(c)
	if _, err := os.Stat(file); err == nil || c.GlobalIsSet("config") {
		vs, err := config.NewViperSourceFromFile(file)
		if err != nil {
			return Settings{}, xerrors.Errorf("configuration: %v", err)
		}
		log.Lvl2("Reading configuration from", file)
		sources = append(sources, vs)
	}

	return LoadSettings(config.NewSourceHub(sources...))
}

func runBench(c *cli.Context) error {
	s, err := loadSettings(c)
	if err != nil {
		return err
	}
	suites, err := s.Suites()
	if err != nil {
		return err
	}
	hash, err := bench.NewHasher(s.Hash)
	if err != nil {
		return err
	}
	policy, err := bench.ParsePolicy(s.OnFailure)
	if err != nil {
		return err
	}

	w := out
	if c.IsSet("output") || c.GlobalIsSet("output") {
		name := c.String("output")
		if name == "" {
			name = c.GlobalString("output")
		}
		fd, err := os.Create(name)
		if err != nil {
			return xerrors.Errorf("creating report: %v", err)
		}
		defer fd.Close()
		w = fd
	}

	rep, err := report.New(s.Format, w)
	if err != nil {
		return err
	}

	h := report.NewHeader()
	h.Trials = s.Trials
	h.Hash = s.Hash
	h.Policy = policy.String()
	h.Schemes = make([]string, len(suites))
	for i, suite := range suites {
		h.Schemes[i] = suite.Name()
	}
	h.Sizes = s.Sizes
	if err := rep.WriteHeader(h); err != nil {
		return err
	}
	log.Lvl1("Starting run", h.RunID)

	runner := &bench.Runner{
		Trials:  s.Trials,
		Policy:  policy,
		Retries: s.Retries,
		Env:     bench.Environment{Hash: hash},
	}
	err = runner.Run(suites, s.Sizes, rep.WriteResult)
	if cerr := rep.Close(); err == nil {
		err = cerr
	}
	return err
}

func listSchemes(c *cli.Context) error {
	s, err := loadSettings(c)
	if err != nil {
		return err
	}
	reg, err := s.Registry()
	if err != nil {
		return err
	}
	for _, name := range reg.Names() {
		suffix := ""
		if name == ciphersuite.DSACipherSuiteName {
			suffix = fmt.Sprintf(" (L=%d N=%d)", s.DSA.L, s.DSA.N)
		}
		fmt.Fprintf(out, "%s%s\n", name, suffix)
	}
	return nil
}

func writeConfig(file string, force bool) error {
	if _, err := os.Stat(file); err == nil && !force {
		if _, err := LoadSettingsFile(file); err != nil {
			return xerrors.Errorf("%s: %v", file, err)
		}
		log.Info("Configuration file", file, "is valid, use --force to overwrite it")
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
		return xerrors.Errorf("creating config directory: %v", err)
	}
	if err := DefaultSettings().Save(file); err != nil {
		return err
	}
	log.Info("Wrote default configuration to", file)
	return nil
}
