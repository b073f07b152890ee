package component_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-components/framework/component"
)

func implementing(id component.TypeID, build func([]any) (any, error), ancestors ...component.TypeID) component.Descriptor {
	d := singleton(id, build)
	d.Implements = ancestors
	return d
}

func TestRegistry_GetUnknownIsAbsent(t *testing.T) {
	t.Parallel()

	reg, err := build(singleton("demo.A", value("a")))
	require.NoError(t, err)

	got, ok := reg.Get("demo.Nope")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestRegistry_GetWithType(t *testing.T) {
	t.Parallel()

	t.Run("returns implementors in construction order", func(t *testing.T) {
		t.Parallel()

		// Declared B before A, but B depends on A, so A materializes first.
		b := implementing("demo.B", nil, "demo.Service")
		b.Constructors = []component.Constructor{{
			Designated: true,
			Params:     []component.Param{{Type: "demo.A"}},
			Build:      value("b"),
		}}
		a := implementing("demo.A", value("a"), "demo.Service")

		reg, err := build(b, a)
		require.NoError(t, err)

		assert.Equal(t, []any{"a", "b"}, reg.GetWithType("demo.Service"))
	})

	t.Run("empty for unknown supertype", func(t *testing.T) {
		t.Parallel()

		reg, err := build(singleton("demo.A", value("a")))
		require.NoError(t, err)

		assert.Empty(t, reg.GetWithType("demo.Nope"))
	})

	t.Run("includes the concrete type itself", func(t *testing.T) {
		t.Parallel()

		reg, err := build(singleton("demo.A", value("a")))
		require.NoError(t, err)

		assert.Equal(t, []any{"a"}, reg.GetWithType("demo.A"))
	})

	t.Run("excludes non-singletons", func(t *testing.T) {
		t.Parallel()

		l := nonSingletonDeps("demo.L", value("l"))
		l.Implements = []component.TypeID{"demo.Service"}
		c := singletonDeps("demo.C", func(args []any) (any, error) { return args[0], nil }, "demo.L")

		reg, err := build(l, c)
		require.NoError(t, err)

		assert.Empty(t, reg.GetWithType("demo.Service"),
			"transient instances never enter the supertype index")
	})

	t.Run("follows ancestor chains transitively", func(t *testing.T) {
		t.Parallel()

		base := implementing("demo.Base", value("base"), "demo.Root")
		leaf := implementing("demo.Leaf", value("leaf"), "demo.Base")

		reg, err := build(base, leaf)
		require.NoError(t, err)

		// Leaf declares Base; Base declares Root; Leaf reaches Root.
		assert.Contains(t, reg.GetWithType("demo.Root"), "leaf")
		assert.Contains(t, reg.GetWithType("demo.Root"), "base")
	})

	t.Run("result is a copy", func(t *testing.T) {
		t.Parallel()

		reg, err := build(implementing("demo.A", value("a"), "demo.Service"))
		require.NoError(t, err)

		got := reg.GetWithType("demo.Service")
		got[0] = "tampered"
		assert.Equal(t, []any{"a"}, reg.GetWithType("demo.Service"))
	})
}

func TestRegistry_OrderingHintIsInert(t *testing.T) {
	t.Parallel()

	// demo.B declares a lower ordering hint than demo.A, but the index
	// still reflects construction order — the hint is captured, not applied.
	a := implementing("demo.A", value("a"), "demo.Service")
	a.Order = 10
	b := implementing("demo.B", value("b"), "demo.Service")
	b.Order = 1

	reg, err := build(a, b)
	require.NoError(t, err)

	assert.Equal(t, []any{"a", "b"}, reg.GetWithType("demo.Service"))
}

func TestRegistry_TypesInConstructionOrder(t *testing.T) {
	t.Parallel()

	b := singletonDeps("demo.B", value("b"), "demo.A")
	a := singleton("demo.A", value("a"))

	reg, err := build(b, a)
	require.NoError(t, err)

	assert.Equal(t, []component.TypeID{"demo.A", "demo.B"}, reg.Types())
	assert.Equal(t, 2, reg.Len())
}

func TestLookup(t *testing.T) {
	t.Parallel()

	type svc struct{ n int }
	inst := &svc{n: 7}

	reg, err := build(singleton("demo.Svc", value(inst)))
	require.NoError(t, err)

	t.Run("typed hit", func(t *testing.T) {
		t.Parallel()

		got, ok := component.Lookup[*svc](reg, "demo.Svc")
		require.True(t, ok)
		assert.Same(t, inst, got)
	})

	t.Run("absent id", func(t *testing.T) {
		t.Parallel()

		got, ok := component.Lookup[*svc](reg, "demo.Nope")
		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("wrong type", func(t *testing.T) {
		t.Parallel()

		_, ok := component.Lookup[string](reg, "demo.Svc")
		assert.False(t, ok)
	})
}

func TestLookupAll(t *testing.T) {
	t.Parallel()

	reg, err := build(
		implementing("demo.A", value("a"), "demo.Service"),
		implementing("demo.B", value("b"), "demo.Service"),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, component.LookupAll[string](reg, "demo.Service"))
}
