package roster

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// UnassignedID is the identifier given to the local node when the servers
// spec does not mention it.
const UnassignedID = -1

// NodeSpec identifies a single node of the roster.
type NodeSpec struct {
	// ID is the server id from the spec, or UnassignedID.
	ID int
	// Host is the network identity of the node. Unique within a roster.
	Host string
	// Tag is the optional leading field of a three-field entry.
	Tag string
	// Local is true for the node the dashboard is running on.
	Local bool
}

// Assigned returns true if the node has a real server id.
func (n NodeSpec) Assigned() bool {
	return n.ID != UnassignedID
}

func (n NodeSpec) String() string {
	return fmt.Sprintf("%d:%s", n.ID, n.Host)
}

// Roster is an ordered list of nodes sorted by id. A roster is never modified
// once built, so it is safe to share between goroutines.
type Roster struct {
	nodes []NodeSpec
}

// Len returns the number of nodes in the roster.
func (r Roster) Len() int {
	return len(r.nodes)
}

// At returns the node at the given position.
func (r Roster) At(i int) NodeSpec {
	return r.nodes[i]
}

// Nodes returns a copy of the roster entries.
func (r Roster) Nodes() []NodeSpec {
	return slices.Clone(r.nodes)
}

// Local returns the position and the spec of the local node. The second
// value is false only for the zero Roster.
func (r Roster) Local() (int, NodeSpec, bool) {
	for i, node := range r.nodes {
		if node.Local {
			return i, node, true
		}
	}

	return -1, NodeSpec{}, false
}

// Hosts returns the hosts in roster order.
func (r Roster) Hosts() []string {
	hosts := make([]string, len(r.nodes))
	for i, node := range r.nodes {
		hosts[i] = node.Host
	}

	return hosts
}

// Equal reports whether both rosters contain the same nodes in the same order.
func (r Roster) Equal(other Roster) bool {
	return slices.Equal(r.nodes, other.nodes)
}
