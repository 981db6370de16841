package ciphersuite

import (
	"sort"

	"golang.org/x/xerrors"
)

// Registry stores the cipher suites by name.
type Registry struct {
	ciphers map[Name]CipherSuite
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		ciphers: make(map[Name]CipherSuite),
	}
}

// RegisterCipherSuite stores the cipher if it does not exist. It returns the
// the suite stored for this name if it already exists, or it returns the
// provided suite.
func (cr *Registry) RegisterCipherSuite(suite CipherSuite) CipherSuite {
	name := suite.Name()
	if suite := cr.ciphers[name]; suite != nil {
		// Cipher suite already registered so we return it so it can be reused.
		return suite
	}

	cr.ciphers[name] = suite

	return suite
}

// Get returns the suite registered under the name.
func (cr *Registry) Get(name Name) (CipherSuite, error) {
	c := cr.ciphers[name]
	if c == nil {
		return nil, xerrors.Errorf("cipher suite %q not found", name)
	}
	return c, nil
}

// Names returns the names of the registered suites in alphabetical order.
func (cr *Registry) Names() []Name {
	names := make([]Name, 0, len(cr.ciphers))
	for name := range cr.ciphers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
