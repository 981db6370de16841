package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type mapSource struct {
	m         map[string]string
	namespace string
}

func newMapSource() *mapSource {
	return &mapSource{m: make(map[string]string)}
}

func (m *mapSource) Add(key, value string) {
	m.m[key] = value
}

func (m *mapSource) Defined(key string) bool {
	_, ok := m.m[m.fullKey(key)]
	return ok
}

func (m *mapSource) String(key string) string {
	return m.m[m.fullKey(key)]
}

func (m *mapSource) Sub(key string) Source {
	return &mapSource{m: m.m, namespace: m.fullKey(key)}
}

func (m *mapSource) fullKey(k string) string {
	if m.namespace != "" {
		return m.namespace + "." + k
	}
	return k
}

func TestSourceHub_Order(t *testing.T) {
	s1 := newMapSource()
	s2 := newMapSource()

	s1.Add("bob", "alice")
	s2.Add("bob", "eve")

	sh := NewSourceHub(s1, s2)
	require.True(t, sh.Defined("bob"))
	require.Equal(t, "alice", sh.String("bob"))

	sh = NewSourceHub(s2, s1)
	require.Equal(t, "eve", sh.String("bob"))

	require.False(t, sh.Defined("unknown"))
	require.Empty(t, sh.String("unknown"))

	s1.Add("dsa.l", "2048")
	require.Equal(t, "2048", sh.String("dsa.l"))

	dsa := sh.SubSourceHub("dsa")
	require.Equal(t, "2048", dsa.String("l"))
	require.False(t, dsa.Defined("bob"))
}

func TestSourceHub_Typed(t *testing.T) {
	s := newMapSource()
	s.Add("trials", "25")
	s.Add("broken", "abc")
	s.Add("sizes", "64, 128,256")
	s.Add("viper", "[32 64]")
	s.Add("schemes", "dsa,secp256k1")
	sh := NewSourceHub(s)

	i, err := sh.IntOrDefault("trials", 100)
	require.NoError(t, err)
	require.Equal(t, 25, i)

	i, err = sh.IntOrDefault("missing", 100)
	require.NoError(t, err)
	require.Equal(t, 100, i)

	_, err = sh.IntOrDefault("broken", 100)
	require.Error(t, err)

	ints, err := sh.IntsOrDefault("sizes", nil)
	require.NoError(t, err)
	require.Equal(t, []int{64, 128, 256}, ints)

	ints, err = sh.IntsOrDefault("viper", nil)
	require.NoError(t, err)
	require.Equal(t, []int{32, 64}, ints)

	ints, err = sh.IntsOrDefault("missing", []int{1})
	require.NoError(t, err)
	require.Equal(t, []int{1}, ints)

	_, err = sh.IntsOrDefault("schemes", nil)
	require.Error(t, err)

	require.Equal(t, []string{"dsa", "secp256k1"}, sh.StringsOrDefault("schemes", nil))
	require.Equal(t, []string{"x"}, sh.StringsOrDefault("missing", []string{"x"}))
	require.Equal(t, "abc", sh.StringOrDefault("broken", "def"))
	require.Equal(t, "def", sh.StringOrDefault("missing", "def"))
}
