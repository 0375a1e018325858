package engine_test

import (
	"testing"

	"github.com/plus3/blockfall/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddResourceKeepsPointerStable(t *testing.T) {
	resources := engine.NewResources()

	first := engine.AddResource(resources, Counter{Value: 1})
	second := engine.AddResource(resources, Counter{Value: 2})

	assert.Same(t, first, second)
	assert.Equal(t, 2, first.Value)
	assert.Equal(t, 1, resources.Len())
}

func TestGetResource(t *testing.T) {
	resources := engine.NewResources()
	assert.Nil(t, engine.GetResource[Counter](resources))

	engine.AddResource(resources, Label("board"))
	label := engine.GetResource[Label](resources)
	require.NotNil(t, label)
	assert.Equal(t, Label("board"), *label)
}

func TestReadResource(t *testing.T) {
	resources := engine.NewResources()
	engine.AddResource(resources, Clock{Elapsed: 3})

	var clock *Clock
	require.True(t, resources.ReadResource(&clock))
	assert.Equal(t, 3.0, clock.Elapsed)

	var counter *Counter
	assert.False(t, resources.ReadResource(&counter))
	assert.Nil(t, counter)

	assert.False(t, resources.ReadResource(clock), "requires a pointer to a pointer")
}

func TestNewResource(t *testing.T) {
	resources := engine.NewResources()

	counter := engine.NewResource(resources, Counter{Value: 5})
	assert.Equal(t, 5, counter.Get().Value)

	again := engine.NewResource(resources, Counter{Value: 9})
	assert.Equal(t, 5, again.Get().Value, "existing value wins over initializer")

	clock := engine.NewResource[Clock](resources)
	assert.True(t, clock.Exists())
	assert.Equal(t, []string{"engine_test.Clock", "engine_test.Counter"}, resources.TypeNames())
}

func TestUnboundResource(t *testing.T) {
	var r engine.Resource[Counter]
	assert.Nil(t, r.Get())
	assert.False(t, r.Exists())
}
