package roster

import (
	"cmp"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

const (
	entrySeparator = ","
	fieldSeparator = ":"
)

var (
	// ErrMalformedEntry is returned when an entry of the servers spec cannot be read.
	ErrMalformedEntry = errors.New("malformed entry")

	// ErrDuplicate is returned when two entries share a host or a server id.
	ErrDuplicate = errors.New("duplicate entry")

	// ErrNoLocalHost is returned when the local host name is empty.
	ErrNoLocalHost = errors.New("local host is not set")
)

// Parse builds a roster out of the servers spec. The spec is a comma-separated
// list of entries, each being either "id:host" or "tag:id:host". The local
// node is always part of the result: if the spec does not mention localHost,
// it is added with UnassignedID. The result is sorted by id, with entries of
// equal id kept in spec order.
func Parse(spec, localHost string) (Roster, error) {
	if localHost == "" {
		return Roster{}, ErrNoLocalHost
	}

	var (
		entries    = strings.Split(spec, entrySeparator)
		nodes      = make([]NodeSpec, 0, len(entries)+1)
		hosts      = make(map[string]struct{}, len(entries))
		ids        = make(map[int]struct{}, len(entries))
		foundLocal bool
	)

	for pos, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		node, err := parseEntry(entry)
		if err != nil {
			return Roster{}, fmt.Errorf("entry %d %q: %w", pos, entry, err)
		}

		if _, ok := hosts[node.Host]; ok {
			return Roster{}, fmt.Errorf("entry %d %q: %w: host %s", pos, entry, ErrDuplicate, node.Host)
		}

		if _, ok := ids[node.ID]; ok {
			return Roster{}, fmt.Errorf("entry %d %q: %w: id %d", pos, entry, ErrDuplicate, node.ID)
		}

		hosts[node.Host] = struct{}{}
		ids[node.ID] = struct{}{}

		if node.Host == localHost {
			node.Local = true
			foundLocal = true
		}

		nodes = append(nodes, node)
	}

	if !foundLocal {
		nodes = append(nodes, NodeSpec{
			ID:    UnassignedID,
			Host:  localHost,
			Local: true,
		})
	}

	slices.SortStableFunc(nodes, func(a, b NodeSpec) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return Roster{nodes: nodes}, nil
}

func parseEntry(entry string) (NodeSpec, error) {
	fields := strings.Split(entry, fieldSeparator)
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	var node NodeSpec

	switch len(fields) {
	case 2:
	case 3:
		node.Tag = fields[0]
		fields = fields[1:]
	default:
		return NodeSpec{}, fmt.Errorf("%w: expected 2 or 3 fields, got %d", ErrMalformedEntry, len(fields))
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil || id < 0 {
		return NodeSpec{}, fmt.Errorf("%w: invalid server id %q", ErrMalformedEntry, fields[0])
	}

	if fields[1] == "" {
		return NodeSpec{}, fmt.Errorf("%w: empty host", ErrMalformedEntry)
	}

	node.ID = id
	node.Host = fields[1]

	return node, nil
}
