package config

import (
	"errors"
	"strings"

	"github.com/urfave/cli"
)

// CliSource is an implementation of a Source that reads the key / value pairs
// from the command line arguments using urfave/cli framework.
//
// A key is looked up in the global flags, then in the flags of the command
// being run, and finally in the generic flags. A generic flag lets the user
// set any key on the command line, including nested ones the commands do not
// declare:
//
//   sigbench run --set dsa.l=1024 --set dsa.n=160
//
// Only flags the user actually gave are reported as defined, so flag defaults
// never shadow a configuration file. Declare flags without Value when they
// also exist in the configuration file.
type CliSource struct {
	namespace string
	c         *cli.Context
}

// NewCliSource returns a new CliSource out of the given cli.Context. Note that
// the cli.Context must be the one from the actual command which is ran,
// otherwise only the global flags will be detected.
func NewCliSource(c *cli.Context) Source {
	return &CliSource{"", c}
}

// Defined checks first if the key is defined in the global flags, then in the
// "local" flags, and finally checks if a generic flag has been used.
func (c *CliSource) Defined(key string) bool {
	_, ok := c.value(key)
	return ok
}

// String returns the value of the first flag defining the key.
func (c *CliSource) String(key string) string {
	s, _ := c.value(key)
	return s
}

// Sub returns a new CliSource with a restricted scope
func (c *CliSource) Sub(key string) Source {
	return &CliSource{
		namespace: c.fullKey(key),
		c:         c.c,
	}
}

func (c *CliSource) fullKey(key string) string {
	if c.namespace != "" {
		return c.namespace + "." + key
	}
	return key
}

func (c *CliSource) value(key string) (string, bool) {
	full := c.fullKey(key)
	if c.c.GlobalIsSet(full) {
		return c.c.GlobalString(full), true
	}
	if c.c.IsSet(full) {
		return c.c.String(full), true
	}

	var i interface{}
	if c.c.IsSet(GenericFlagName) {
		i = c.c.Generic(GenericFlagName)
	} else if c.c.GlobalIsSet(GenericFlagName) {
		i = c.c.GlobalGeneric(GenericFlagName)
	} else {
		return "", false
	}

	g, ok := i.(*genericFlag)
	if !ok {
		return "", false
	}
	return g.Get(full)
}

// GenericFlagName is the name given to the flag of the command line option
var GenericFlagName = "set"

// NewGenericCliFlag returns a fresh cli.GenericFlag providing the key=value
// capability. Every command needs its own instance.
func NewGenericCliFlag() cli.GenericFlag {
	return cli.GenericFlag{
		Name:  GenericFlagName,
		Value: &genericFlag{},
		Usage: "override any setting with `key=value`",
	}
}

// genericFlag holds all value of the form "key=value"
type genericFlag struct {
	pairs []*pair
}

type pair struct {
	root  string
	value string
}

// ErrGenericFlagFormat is triggered when a flag don't have the right format.
var ErrGenericFlagFormat = errors.New("generic flag format: `key=value`")

// Set implements the generic flag interface from urfave/cli
func (g *genericFlag) Set(value string) error {
	strs := strings.Split(value, "=")
	if len(strs) != 2 || strs[0] == "" {
		return ErrGenericFlagFormat
	}
	g.pairs = append(g.pairs, &pair{strs[0], strs[1]})
	return nil
}

// String implements the generic flag interface from urfave/cli
func (g *genericFlag) String() string {
	return ""
}

// Get returns the value stored under the given key. The last occurrence
// wins.
func (g *genericFlag) Get(key string) (string, bool) {
	for i := len(g.pairs) - 1; i >= 0; i-- {
		if g.pairs[i].root == key {
			return g.pairs[i].value, true
		}
	}
	return "", false
}
