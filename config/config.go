package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Cluster is the part of the configuration that defines the roster.
type Cluster struct {
	ServersSpec string `yaml:"serversSpec"`
	Hostname    string `yaml:"hostname"`
}

// Source provides the current cluster configuration. It is consulted on
// every refresh cycle, so implementations should return fresh values.
type Source interface {
	Load(ctx context.Context) (Cluster, error)
}

// Static always returns the same configuration.
type Static Cluster

func (s Static) Load(context.Context) (Cluster, error) {
	return Cluster(s), nil
}

// File reads the configuration from a YAML file on every call, so that
// edits are picked up by the next cycle.
type File struct {
	path     string
	fallback Cluster
}

// NewFile creates a file source. Values missing from the file are taken
// from fallback.
func NewFile(path string, fallback Cluster) *File {
	return &File{path: path, fallback: fallback}
}

func (f *File) Load(ctx context.Context) (Cluster, error) {
	if err := ctx.Err(); err != nil {
		return Cluster{}, err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return Cluster{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var c Cluster
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Cluster{}, fmt.Errorf("failed to parse config file %s: %w", f.path, err)
	}

	if strings.TrimSpace(c.ServersSpec) == "" {
		c.ServersSpec = f.fallback.ServersSpec
	}

	if c.Hostname == "" {
		c.Hostname = f.fallback.Hostname
	}

	return c, nil
}
