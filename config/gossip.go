package config

import (
	"context"
	"fmt"
	stdlog "log"
	"strconv"
	"strings"
	"time"

	kitlog "github.com/go-kit/log"
	"github.com/hashicorp/memberlist"
	"golang.org/x/exp/slices"
)

// Members is the part of a gossip cluster the roster is derived from.
type Members interface {
	Members() []*memberlist.Node
	LocalNode() *memberlist.Node
}

// Gossip derives the servers spec from the live members of a gossip
// cluster. A member announces its server id in the node metadata. Members
// without one are numbered in name order, starting above the highest
// announced id so the two never collide.
type Gossip struct {
	list Members
}

func NewGossip(list Members) *Gossip {
	return &Gossip{list: list}
}

func (g *Gossip) Load(ctx context.Context) (Cluster, error) {
	if err := ctx.Err(); err != nil {
		return Cluster{}, err
	}

	var alive []*memberlist.Node

	for _, node := range g.list.Members() {
		if node.State == memberlist.StateAlive {
			alive = append(alive, node)
		}
	}

	slices.SortFunc(alive, func(a, b *memberlist.Node) int {
		return strings.Compare(a.Name, b.Name)
	})

	ids := make([]string, len(alive))
	next := 1

	for i, node := range alive {
		ids[i] = strings.TrimSpace(string(node.Meta))

		if n, err := strconv.Atoi(ids[i]); err == nil && n >= next {
			next = n + 1
		}
	}

	entries := make([]string, len(alive))

	for i, node := range alive {
		id := ids[i]
		if id == "" {
			id = strconv.Itoa(next)
			next++
		}

		entries[i] = id + ":" + node.Name
	}

	return Cluster{
		ServersSpec: strings.Join(entries, ","),
		Hostname:    g.list.LocalNode().Name,
	}, nil
}

// metaDelegate announces the server id of the local node.
type metaDelegate struct {
	meta []byte
}

func (d *metaDelegate) NodeMeta(limit int) []byte {
	if len(d.meta) > limit {
		return nil
	}

	return d.meta
}

func (d *metaDelegate) NotifyMsg([]byte)                           {}
func (d *metaDelegate) GetBroadcasts(overhead, limit int) [][]byte { return nil }
func (d *metaDelegate) LocalState(join bool) []byte                { return nil }
func (d *metaDelegate) MergeRemoteState(buf []byte, join bool)     {}

type GossipConfig struct {
	Name     string
	ServerID int
	BindAddr string
	BindPort int
	Join     []string
	Logger   kitlog.Logger
}

// StartGossip creates the local gossip member and joins the given seeds.
// A zero ServerID leaves the id to be assigned by position.
func StartGossip(conf GossipConfig) (*memberlist.Memberlist, error) {
	mconf := memberlist.DefaultLANConfig()
	mconf.BindAddr = conf.BindAddr
	mconf.BindPort = conf.BindPort
	mconf.AdvertisePort = conf.BindPort

	if conf.Name != "" {
		mconf.Name = conf.Name
	}

	if conf.ServerID > 0 {
		mconf.Delegate = &metaDelegate{meta: []byte(strconv.Itoa(conf.ServerID))}
	}

	if conf.Logger != nil {
		mconf.Logger = stdlog.New(kitlog.NewStdlibAdapter(conf.Logger), "", 0)
	}

	list, err := memberlist.Create(mconf)
	if err != nil {
		return nil, fmt.Errorf("failed to create memberlist: %w", err)
	}

	if len(conf.Join) > 0 {
		if _, err := list.Join(conf.Join); err != nil {
			_ = list.Shutdown()
			return nil, fmt.Errorf("failed to join gossip cluster: %w", err)
		}
	}

	return list, nil
}

// LeaveGossip gracefully leaves the cluster and stops the member.
func LeaveGossip(list *memberlist.Memberlist, timeout time.Duration) error {
	if err := list.Leave(timeout); err != nil {
		return fmt.Errorf("failed to leave gossip cluster: %w", err)
	}

	return list.Shutdown()
}
