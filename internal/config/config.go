package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Peer represents a peer node in the cluster. The position of a peer in
// the roster is its rank: rank 0 is the first entry. Every node must use
// the same roster order, since primary selection walks ranks round-robin.
type Peer struct {
	Name string `yaml:"name"`
	Addr string `yaml:"addr"`
}

// Config holds the node configuration.
type Config struct {
	NodeName   string `yaml:"node_name"`
	ListenAddr string `yaml:"listen"`
	Peers      []Peer `yaml:"peers"`
	// F is the fault-tolerance bound. Zero means derive (n-1)/3 from the
	// roster size.
	F int `yaml:"f"`
	// Instances is the number of replica groups including the master.
	// Zero means derive F+1.
	Instances int `yaml:"instances"`
}

// Load reads a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// ParsePeers parses a comma-separated list of peers in the format:
// "name1=addr1,name2=addr2,name3=addr3", in rank order.
func ParsePeers(peersStr string) ([]Peer, error) {
	if peersStr == "" {
		return []Peer{}, nil
	}

	parts := strings.Split(peersStr, ",")
	peers := make([]Peer, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("invalid peer format: %s (expected name=addr)", part)
		}

		name := strings.TrimSpace(kv[0])
		addr := strings.TrimSpace(kv[1])

		if name == "" || addr == "" {
			return nil, fmt.Errorf("peer name and address cannot be empty: %s", part)
		}

		peers = append(peers, Peer{
			Name: name,
			Addr: addr,
		})
	}

	return peers, nil
}

// ApplyDefaults fills in the derivable fields: F from the roster size and
// Instances from F.
func (c *Config) ApplyDefaults() {
	if c.F == 0 && len(c.Peers) > 0 {
		c.F = (len(c.Peers) - 1) / 3
	}
	if c.Instances == 0 {
		c.Instances = c.F + 1
	}
}

// Validate checks the configuration for a runnable node.
func (c *Config) Validate() error {
	if c.NodeName == "" {
		return fmt.Errorf("node name cannot be empty")
	}
	if c.ListenAddr == "" {
		return fmt.Errorf("listen address cannot be empty")
	}
	if len(c.Peers) == 0 {
		return fmt.Errorf("peer roster cannot be empty")
	}
	seen := make(map[string]bool, len(c.Peers))
	self := false
	for _, p := range c.Peers {
		if p.Name == "" || p.Addr == "" {
			return fmt.Errorf("peer name and address cannot be empty")
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate peer name %s in roster", p.Name)
		}
		seen[p.Name] = true
		if p.Name == c.NodeName {
			self = true
		}
	}
	if !self {
		return fmt.Errorf("node %s must appear in its own peer roster", c.NodeName)
	}
	if c.F < 0 {
		return fmt.Errorf("fault bound f cannot be negative, got %d", c.F)
	}
	if len(c.Peers) < 3*c.F+1 {
		return fmt.Errorf("roster of %d nodes cannot tolerate f=%d faults, need at least %d",
			len(c.Peers), c.F, 3*c.F+1)
	}
	if c.Instances < 1 {
		return fmt.Errorf("need at least one instance, got %d", c.Instances)
	}
	return nil
}

// Rank returns the roster rank of the named node.
func (c *Config) Rank(nodeName string) (int, error) {
	for i, p := range c.Peers {
		if p.Name == nodeName {
			return i, nil
		}
	}
	return 0, fmt.Errorf("node %s not in roster", nodeName)
}
