// Package manifest parses YAML blog provisioning manifests for the apply
// command.
package manifest

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Manifest describes a set of blogs to provision.
type Manifest struct {
	Blogs []BlogSpec `yaml:"blogs"`
}

// BlogSpec describes one blog to create.
type BlogSpec struct {
	Slug      string `yaml:"slug"`
	Title     string `yaml:"title"`
	Email     string `yaml:"email"`
	NetworkID int64  `yaml:"networkId"`
	Private   bool   `yaml:"private"`
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return Parse(data)
}

// Parse parses manifest YAML.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	if len(m.Blogs) == 0 {
		return nil, fmt.Errorf("manifest defines no blogs")
	}

	for i, blog := range m.Blogs {
		if blog.Slug == "" {
			return nil, fmt.Errorf("manifest blog %d: slug is required", i+1)
		}
		if blog.Title == "" {
			return nil, fmt.Errorf("manifest blog %d (%s): title is required", i+1, blog.Slug)
		}
	}

	return &m, nil
}
