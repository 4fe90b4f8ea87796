package scenario

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"DealProjector/internal/model"
)

// DirSource reads every .yaml/.yml file in a directory. A file may hold
// several scenarios as separate YAML documents.
type DirSource struct {
	Dir string
}

// NewDirSource creates a DirSource.
func NewDirSource(dir string) *DirSource {
	return &DirSource{Dir: dir}
}

func (d *DirSource) Name() string { return "dir:" + d.Dir }

// Scenarios loads all scenario files in name order. Files that fail to parse
// are logged and skipped; a missing directory yields no scenarios.
func (d *DirSource) Scenarios(ctx context.Context) ([]model.Scenario, error) {
	entries, err := os.ReadDir(d.Dir)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("[WARN] scenario dir %s does not exist", d.Dir)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read scenario dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var out []model.Scenario
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		list, err := ReadFile(filepath.Join(d.Dir, name))
		if err != nil {
			log.Printf("[WARN] skip scenario file %s: %v", name, err)
			continue
		}
		out = append(out, list...)
	}
	return out, nil
}

// ReadFile decodes every YAML document in path. Unnamed scenarios are named
// after the file, with a document suffix when the file holds more than one.
func ReadFile(path string) ([]model.Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scenario: %w", err)
	}
	defer f.Close()

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	dec := yaml.NewDecoder(f)

	var out []model.Scenario
	for i := 1; ; i++ {
		var sc model.Scenario
		err := dec.Decode(&sc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode %s document %d: %w", filepath.Base(path), i, err)
		}
		if sc.Name == "" {
			sc.Name = base
			if i > 1 {
				sc.Name = fmt.Sprintf("%s-%d", base, i)
			}
		}
		out = append(out, sc)
	}
	return out, nil
}
