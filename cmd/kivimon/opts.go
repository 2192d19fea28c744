package main

import (
	"strings"
	"time"
)

var opts struct {
	Cluster struct {
		ServersSpec string `long:"servers-spec" description:"comma-separated list of [tag:]id:host entries" env:"SERVERS_SPEC"`
		Hostname    string `long:"hostname" description:"hostname of the local node" env:"HOSTNAME"`
		ConfigFile  string `long:"config-file" description:"yaml file with serversSpec and hostname, re-read every cycle" env:"CONFIG_FILE"`
		Backups     bool   `long:"backups" description:"show the backups switch" env:"BACKUPS"`
	} `group:"cluster" namespace:"cluster" env-namespace:"CLUSTER"`

	Gossip struct {
		Enabled   bool   `long:"enabled" description:"derive the roster from gossip cluster members" env:"ENABLED"`
		ServerID  int    `long:"server-id" description:"server id announced to other members" env:"SERVER_ID"`
		BindAddr  string `long:"bind-addr" description:"address to bind gossip listener" env:"BIND_ADDR" default:"0.0.0.0"`
		BindPort  int    `long:"bind-port" description:"port of gossip listener" env:"BIND_PORT" default:"7946"`
		JoinAddrs string `long:"join-addrs" description:"comma-separated list of members to join" env:"JOIN_ADDRS"`
	} `group:"gossip" namespace:"gossip" env-namespace:"GOSSIP"`

	Remote struct {
		BaseURL     string        `long:"base-url" description:"base url of the node REST endpoints" env:"BASE_URL" default:"http://localhost:8080/exhibitor/v1/"`
		Timeout     time.Duration `long:"timeout" description:"timeout of a single remote call" env:"TIMEOUT" default:"10s"`
		Loopback    string        `long:"loopback" description:"address used to reach the local node" env:"LOOPBACK" default:"localhost"`
		MaxInFlight int           `long:"max-in-flight" description:"max concurrent status requests" env:"MAX_IN_FLIGHT" default:"16"`
	} `group:"remote" namespace:"remote" env-namespace:"REMOTE"`

	Refresh struct {
		Interval time.Duration `long:"interval" description:"status refresh interval" env:"INTERVAL" default:"5s"`
	} `group:"refresh" namespace:"refresh" env-namespace:"REFRESH"`

	RestAPI struct {
		BindAddr string `long:"bind-addr" description:"address to bind the REST API" env:"BIND_ADDR" default:":8000"`
	} `group:"restapi" namespace:"restapi" env-namespace:"RESTAPI"`

	Notifications int  `long:"notifications" description:"number of undelivered notifications to keep" env:"NOTIFICATIONS" default:"100"`
	Verbose       bool `long:"verbose" description:"verbose mode" env:"VERBOSE"`
}

func parseAddrs(addrs string) []string {
	sl := strings.Split(addrs, ",")
	res := make([]string, 0, len(sl))

	for _, addr := range sl {
		trimmed := strings.TrimSpace(addr)
		if trimmed != "" {
			res = append(res, trimmed)
		}
	}

	return res
}
