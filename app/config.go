package app

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"go.dedis.ch/sigbench/bench"
	"go.dedis.ch/sigbench/ciphersuite"
	"go.dedis.ch/sigbench/config"
	"go.dedis.ch/sigbench/report"
	"golang.org/x/xerrors"
)

// Settings is the configuration of a benchmark run.
// - Sizes: the message sizes in bytes, run in this order
// - Trials: the number of trials per scheme and message size
// - Schemes: the suites to benchmark, run in this order
// - DSA: the bit lengths of the DSA domain parameters
// - Hash: the digest signed in place of the message
// - OnFailure: abort or skip when a key generation or a signature fails
// - Retries: consecutive randomness failures tolerated per batch
// - Format: text, csv or toml
type Settings struct {
	Sizes     []int       `toml:"sizes"`
	Trials    int         `toml:"trials"`
	Schemes   []string    `toml:"schemes"`
	DSA       DSASettings `toml:"dsa"`
	Hash      string      `toml:"hash"`
	OnFailure string      `toml:"on-failure"`
	Retries   int         `toml:"retries"`
	Format    string      `toml:"format"`
}

// DSASettings holds the bit length of the modulus (L) and of the subgroup
// order (N).
type DSASettings struct {
	L int `toml:"l"`
	N int `toml:"n"`
}

// DefaultSettings returns the reference configuration: DSA 2048/256 and
// secp256k1 over 64, 128 and 256 bytes messages, 100 trials each.
func DefaultSettings() Settings {
	return Settings{
		Sizes:     []int{64, 128, 256},
		Trials:    100,
		Schemes:   []string{ciphersuite.DSACipherSuiteName, ciphersuite.Secp256k1CipherSuiteName},
		DSA:       DSASettings{L: 2048, N: 256},
		Hash:      bench.HashSHA256,
		OnFailure: bench.PolicyAbortName,
		Retries:   bench.DefaultRetries,
		Format:    report.FormatText,
	}
}

// LoadSettings reads the settings from the sources, the keys missing in
// every source keeping their default value. The result is validated.
func LoadSettings(hub *config.SourceHub) (Settings, error) {
	s := DefaultSettings()
	var err error

	s.Sizes, err = hub.IntsOrDefault("sizes", s.Sizes)
	if err != nil {
		return s, xerrors.Errorf("sizes: %v", err)
	}
	s.Trials, err = hub.IntOrDefault("trials", s.Trials)
	if err != nil {
		return s, xerrors.Errorf("trials: %v", err)
	}
	s.Schemes = hub.StringsOrDefault("schemes", s.Schemes)

	dsaHub := hub.SubSourceHub("dsa")
	s.DSA.L, err = dsaHub.IntOrDefault("l", s.DSA.L)
	if err != nil {
		return s, xerrors.Errorf("dsa: %v", err)
	}
	s.DSA.N, err = dsaHub.IntOrDefault("n", s.DSA.N)
	if err != nil {
		return s, xerrors.Errorf("dsa: %v", err)
	}

	s.Hash = strings.ToLower(hub.StringOrDefault("hash", s.Hash))
	s.OnFailure = strings.ToLower(hub.StringOrDefault("on-failure", s.OnFailure))
	s.Retries, err = hub.IntOrDefault("retries", s.Retries)
	if err != nil {
		return s, xerrors.Errorf("retries: %v", err)
	}
	s.Format = strings.ToLower(hub.StringOrDefault("format", s.Format))

	if err := s.Validate(); err != nil {
		return s, xerrors.Errorf("invalid settings: %v", err)
	}
	return s, nil
}

// Validate checks every setting, including that the schemes are known.
func (s Settings) Validate() error {
	if len(s.Sizes) == 0 {
		return xerrors.New("no message size")
	}
	for _, size := range s.Sizes {
		if size <= 0 {
			return xerrors.Errorf("message size must be positive, got %d", size)
		}
	}
	if s.Trials <= 0 {
		return xerrors.Errorf("trials must be positive, got %d", s.Trials)
	}
	if s.Retries < 0 {
		return xerrors.Errorf("retries cannot be negative, got %d", s.Retries)
	}
	if _, err := bench.NewHasher(s.Hash); err != nil {
		return err
	}
	if _, err := bench.ParsePolicy(s.OnFailure); err != nil {
		return err
	}
	if err := report.CheckFormat(s.Format); err != nil {
		return err
	}
	_, err := s.Suites()
	return err
}

// Registry returns the registry of every suite sigbench knows, the DSA one
// using the configured parameter sizes.
func (s Settings) Registry() (*ciphersuite.Registry, error) {
	sizes, err := ciphersuite.DSAParameterSizes(s.DSA.L, s.DSA.N)
	if err != nil {
		return nil, err
	}

	reg := ciphersuite.NewRegistry()
	reg.RegisterCipherSuite(ciphersuite.NewDSACipherSuite(sizes))
	reg.RegisterCipherSuite(ciphersuite.NewSecp256k1CipherSuite())
	reg.RegisterCipherSuite(ciphersuite.NewEd25519CipherSuite())
	reg.RegisterCipherSuite(ciphersuite.NewSchnorrCipherSuite())
	reg.RegisterCipherSuite(ciphersuite.NewFalconCipherSuite())
	return reg, nil
}

// Suites returns the configured suites in order.
func (s Settings) Suites() ([]ciphersuite.CipherSuite, error) {
	if len(s.Schemes) == 0 {
		return nil, xerrors.New("no scheme")
	}
	reg, err := s.Registry()
	if err != nil {
		return nil, err
	}

	suites := make([]ciphersuite.CipherSuite, 0, len(s.Schemes))
	seen := make(map[string]bool)
	for _, name := range s.Schemes {
		name = strings.ToLower(name)
		if seen[name] {
			return nil, xerrors.Errorf("scheme %q given twice", name)
		}
		seen[name] = true

		suite, err := reg.Get(name)
		if err != nil {
			return nil, xerrors.Errorf("scheme: %v (known: %s)", err, strings.Join(reg.Names(), ", "))
		}
		suites = append(suites, suite)
	}
	return suites, nil
}

// Save writes the settings as TOML to the given file name. It will return
// an error if the file couldn't be created or if there is an error in the
// encoding.
func (s Settings) Save(file string) error {
	fd, err := os.OpenFile(file, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return xerrors.Errorf("opening config file: %v", err)
	}
	defer fd.Close()

	fd.WriteString("# sigbench configuration, command line flags take precedence.\n")
	fd.WriteString("# Known schemes: " + strings.Join(schemeNames(), ", ") + "\n\n")
	err = toml.NewEncoder(fd).Encode(s)
	if err != nil {
		return xerrors.Errorf("toml encoding: %v", err)
	}
	return nil
}

// LoadSettingsFile decodes a settings file. Keys missing from the file keep
// their default value.
func LoadSettingsFile(file string) (Settings, error) {
	s := DefaultSettings()
	_, err := toml.DecodeFile(file, &s)
	if err != nil {
		return s, xerrors.Errorf("toml decoding: %v", err)
	}
	if err := s.Validate(); err != nil {
		return s, xerrors.Errorf("invalid settings: %v", err)
	}
	return s, nil
}

func schemeNames() []string {
	reg, err := DefaultSettings().Registry()
	if err != nil {
		return nil
	}
	return reg.Names()
}
