package config

import (
	"context"
	"testing"

	"github.com/hashicorp/memberlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxpoletaev/kivimon/roster"
)

type fakeMembers struct {
	nodes []*memberlist.Node
	local *memberlist.Node
}

func (f *fakeMembers) Members() []*memberlist.Node { return f.nodes }
func (f *fakeMembers) LocalNode() *memberlist.Node { return f.local }

func TestGossip_Load(t *testing.T) {
	a := &memberlist.Node{Name: "a", State: memberlist.StateAlive}
	b := &memberlist.Node{Name: "b", State: memberlist.StateAlive, Meta: []byte("7")}
	c := &memberlist.Node{Name: "c", State: memberlist.StateAlive}
	dead := &memberlist.Node{Name: "d", State: memberlist.StateDead}

	src := NewGossip(&fakeMembers{
		nodes: []*memberlist.Node{c, dead, b, a},
		local: a,
	})

	got, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Cluster{ServersSpec: "8:a,7:b,9:c", Hostname: "a"}, got)

	r, err := roster.Parse(got.ServersSpec, got.Hostname)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, r.Hosts())
}

func TestGossip_LoadMixedMetadata(t *testing.T) {
	tests := map[string]struct {
		nodes []*memberlist.Node
		want  string
	}{
		"no metadata": {
			nodes: []*memberlist.Node{
				{Name: "a", State: memberlist.StateAlive},
				{Name: "b", State: memberlist.StateAlive},
			},
			want: "1:a,2:b",
		},
		"announced id matches a position": {
			nodes: []*memberlist.Node{
				{Name: "a", State: memberlist.StateAlive, Meta: []byte("2")},
				{Name: "b", State: memberlist.StateAlive},
			},
			want: "2:a,3:b",
		},
		"announced id one": {
			nodes: []*memberlist.Node{
				{Name: "a", State: memberlist.StateAlive},
				{Name: "b", State: memberlist.StateAlive, Meta: []byte("1")},
				{Name: "c", State: memberlist.StateAlive},
			},
			want: "2:a,1:b,3:c",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			src := NewGossip(&fakeMembers{nodes: tt.nodes, local: tt.nodes[0]})

			got, err := src.Load(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.ServersSpec)

			_, err = roster.Parse(got.ServersSpec, got.Hostname)
			require.NoError(t, err)
		})
	}
}

func TestMetaDelegate(t *testing.T) {
	d := &metaDelegate{meta: []byte("12")}

	assert.Equal(t, []byte("12"), d.NodeMeta(512))
	assert.Nil(t, d.NodeMeta(1))
}
