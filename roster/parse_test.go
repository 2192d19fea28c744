package roster

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := map[string]struct {
		spec      string
		localHost string
		want      []NodeSpec
	}{
		"EmptySpec": {
			spec:      "",
			localHost: "h1",
			want: []NodeSpec{
				{ID: -1, Host: "h1", Local: true},
			},
		},
		"LocalNodeAppended": {
			spec:      "5:a,2:b,9:c",
			localHost: "z",
			want: []NodeSpec{
				{ID: -1, Host: "z", Local: true},
				{ID: 2, Host: "b"},
				{ID: 5, Host: "a"},
				{ID: 9, Host: "c"},
			},
		},
		"LocalNodeListed": {
			spec:      "3:c,1:a,2:b",
			localHost: "b",
			want: []NodeSpec{
				{ID: 1, Host: "a"},
				{ID: 2, Host: "b", Local: true},
				{ID: 3, Host: "c"},
			},
		},
		"TaggedEntries": {
			spec:      "S:2:b,O:1:a",
			localHost: "a",
			want: []NodeSpec{
				{ID: 1, Host: "a", Tag: "O", Local: true},
				{ID: 2, Host: "b", Tag: "S"},
			},
		},
		"MixedShapes": {
			spec:      "S:2:b,1:a",
			localHost: "x",
			want: []NodeSpec{
				{ID: -1, Host: "x", Local: true},
				{ID: 1, Host: "a"},
				{ID: 2, Host: "b", Tag: "S"},
			},
		},
		"WhitespaceAndTrailingComma": {
			spec:      " 1:a , 2 : b ,",
			localHost: "a",
			want: []NodeSpec{
				{ID: 1, Host: "a", Local: true},
				{ID: 2, Host: "b"},
			},
		},
		"ZeroID": {
			spec:      "0:a",
			localHost: "b",
			want: []NodeSpec{
				{ID: -1, Host: "b", Local: true},
				{ID: 0, Host: "a"},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r, err := Parse(tt.spec, tt.localHost)
			require.NoError(t, err)
			require.Equal(t, tt.want, r.Nodes())
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := map[string]struct {
		spec      string
		localHost string
		wantErr   error
	}{
		"NoLocalHost": {
			spec:    "1:a",
			wantErr: ErrNoLocalHost,
		},
		"SingleField": {
			spec:      "a",
			localHost: "a",
			wantErr:   ErrMalformedEntry,
		},
		"TooManyFields": {
			spec:      "x:y:1:a",
			localHost: "a",
			wantErr:   ErrMalformedEntry,
		},
		"NonNumericID": {
			spec:      "one:a",
			localHost: "a",
			wantErr:   ErrMalformedEntry,
		},
		"NegativeID": {
			spec:      "-1:a",
			localHost: "a",
			wantErr:   ErrMalformedEntry,
		},
		"EmptyHost": {
			spec:      "1:",
			localHost: "a",
			wantErr:   ErrMalformedEntry,
		},
		"DuplicateHost": {
			spec:      "1:a,2:a",
			localHost: "a",
			wantErr:   ErrDuplicate,
		},
		"DuplicateID": {
			spec:      "1:a,1:b",
			localHost: "a",
			wantErr:   ErrDuplicate,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(tt.spec, tt.localHost)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParse_ErrorNamesEntry(t *testing.T) {
	_, err := Parse("1:a,oops,3:c", "a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `entry 1 "oops"`)
}

func TestParse_Invariants(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		var (
			count   = rnd.Intn(8)
			ids     = rnd.Perm(20)[:count]
			entries = make([]string, count)
			hosts   = make([]string, count)
		)

		for j := 0; j < count; j++ {
			hosts[j] = fmt.Sprintf("host-%d", j)
			entries[j] = fmt.Sprintf("%d:%s", ids[j], hosts[j])

			if rnd.Intn(2) == 0 {
				entries[j] = "S:" + entries[j]
			}
		}

		localHost := "elsewhere"
		if count > 0 && rnd.Intn(2) == 0 {
			localHost = hosts[rnd.Intn(count)]
		}

		spec := strings.Join(entries, ",")
		r, err := Parse(spec, localHost)
		require.NoError(t, err, spec)

		var (
			seen   = make(map[string]bool)
			locals int
		)

		for j, node := range r.Nodes() {
			if j > 0 {
				require.LessOrEqual(t, r.At(j-1).ID, node.ID, spec)
			}

			require.False(t, seen[node.Host], "duplicate host %s in %q", node.Host, spec)
			seen[node.Host] = true

			if node.Host == localHost {
				require.True(t, node.Local)
				locals++
			}
		}

		require.Equal(t, 1, locals, spec)
	}
}

func TestRoster_Local(t *testing.T) {
	r, err := Parse("1:a,2:b", "b")
	require.NoError(t, err)

	idx, node, ok := r.Local()
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Equal(t, "b", node.Host)
	assert.True(t, node.Assigned())

	_, _, ok = Roster{}.Local()
	assert.False(t, ok)

	r, err = Parse("1:a,2:b", "c")
	require.NoError(t, err)

	_, node, ok = r.Local()
	require.True(t, ok)
	assert.Equal(t, UnassignedID, node.ID)
	assert.False(t, node.Assigned())
}

func TestRoster_NodesIsCopy(t *testing.T) {
	r, err := Parse("1:a", "a")
	require.NoError(t, err)

	nodes := r.Nodes()
	nodes[0].Host = "changed"

	assert.Equal(t, "a", r.At(0).Host)
	assert.Equal(t, []string{"a"}, r.Hosts())
}

func TestRoster_Equal(t *testing.T) {
	a, _ := Parse("1:a,2:b", "a")
	b, _ := Parse("2:b,1:a", "a")
	c, _ := Parse("1:a,2:b", "b")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
