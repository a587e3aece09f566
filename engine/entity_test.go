package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// probe records lifecycle calls for assertions
type probe struct {
	Base
	inits   int
	updates int
	draws   int
	lastDt  float32
	log     *[]string
	name    string
}

func (p *probe) Init() {
	p.inits++
}

func (p *probe) Update(dt float32) {
	p.updates++
	p.lastDt = dt
	if p.log != nil {
		*p.log = append(*p.log, p.name)
	}
}

func (p *probe) Draw() {
	p.draws++
}

// sibling resolves probe during Init, the way dependent components do
type sibling struct {
	Base
	dep *probe
}

func (s *sibling) Init() {
	s.dep = GetComponent[*probe](s.Entity())
}

type unused struct {
	Base
}

func requireContractPanic(t *testing.T, op string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic from %s", op)
		ce, ok := r.(*ContractError)
		require.True(t, ok, "expected *ContractError, got %T", r)
		assert.Equal(t, op, ce.Op)
	}()
	fn()
}

func TestTypeIDStable(t *testing.T) {
	a := TypeID[*probe]()
	b := TypeID[*sibling]()

	assert.NotEqual(t, a, b)
	assert.Equal(t, a, TypeID[*probe]())
	assert.Equal(t, b, TypeID[*sibling]())
	assert.LessOrEqual(t, RegisteredTypes(), MaxComponents)
}

func TestAddComponentRunsInitAndIsRetrievable(t *testing.T) {
	m := NewManager()
	e := m.AddEntity()

	assert.False(t, HasComponent[*probe](e))

	p := AddComponent(e, &probe{})
	require.True(t, HasComponent[*probe](e))
	assert.Equal(t, 1, p.inits)
	assert.Same(t, e, p.Entity())

	for i := 0; i < 3; i++ {
		assert.Same(t, p, GetComponent[*probe](e))
	}
	assert.Equal(t, 1, e.ComponentCount())
}

func TestInitResolvesSibling(t *testing.T) {
	m := NewManager()
	e := m.AddEntity()

	p := AddComponent(e, &probe{})
	s := AddComponent(e, &sibling{})

	assert.Same(t, p, s.dep)
}

func TestDoubleAttachPanics(t *testing.T) {
	e := NewManager().AddEntity()
	AddComponent(e, &probe{})

	requireContractPanic(t, "AddComponent", func() {
		AddComponent(e, &probe{})
	})
}

func TestGetMissingComponentPanics(t *testing.T) {
	e := NewManager().AddEntity()

	requireContractPanic(t, "GetComponent", func() {
		GetComponent[*unused](e)
	})
}

func TestBroadcastFollowsAttachOrder(t *testing.T) {
	var order []string
	e := NewManager().AddEntity()

	AddComponent(e, &probe{name: "probe", log: &order})
	AddComponent(e, &recorder{name: "recorder", log: &order})

	e.Update(2)
	e.Draw()

	assert.Equal(t, []string{"probe", "recorder"}, order)
	p := GetComponent[*probe](e)
	assert.Equal(t, float32(2), p.lastDt)
	assert.Equal(t, 1, p.draws)
}

type recorder struct {
	Base
	name string
	log  *[]string
}

func (r *recorder) Update(float32) {
	*r.log = append(*r.log, r.name)
}

func TestDestroyIsIdempotent(t *testing.T) {
	e := NewManager().AddEntity()
	require.True(t, e.IsAlive())

	e.Destroy()
	e.Destroy()
	assert.False(t, e.IsAlive())
}

func TestGroupMembership(t *testing.T) {
	m := NewManager()
	e := m.AddEntity()

	assert.False(t, e.HasGroup(3))
	e.AddGroup(3)
	e.AddGroup(3)

	assert.True(t, e.HasGroup(3))
	assert.Len(t, m.GetEntitiesByGroup(3), 1, "repeated AddGroup must not duplicate index entries")

	e.DelGroup(3)
	assert.False(t, e.HasGroup(3))
}

func TestGroupOutOfRangePanics(t *testing.T) {
	e := NewManager().AddEntity()

	requireContractPanic(t, "AddGroup", func() {
		e.AddGroup(MaxGroups)
	})
}
