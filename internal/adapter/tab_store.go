package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/fretwork/internal/model"
)

// TabStore persists and retrieves rendered tabs.
type TabStore interface {
	// Save writes tab as <midi-stem>-trackN.yaml under dir, creating
	// dir if needed, and returns the written path.
	Save(dir, source string, tab m.Tab) (string, error)
	Load(path string) (m.Tab, error)
}

// LocalTabStore stores tabs as YAML files on disk.
type LocalTabStore struct{}

// NewTabStore constructs a TabStore implementation.
func NewTabStore() TabStore {
	return &LocalTabStore{}
}

type tabYAML struct {
	Key   keyYAML    `yaml:"key"`
	Track trackYAML  `yaml:"track"`
	Width int        `yaml:"width"`
	Staff string     `yaml:"staff"`
	Notes []noteYAML `yaml:"notes"`
}

type keyYAML struct {
	Root string `yaml:"root"`
	Mode string `yaml:"mode"`
}

type trackYAML struct {
	Index int    `yaml:"index"`
	Name  string `yaml:"name,omitempty"`
	Notes int    `yaml:"notes"`
}

type noteYAML struct {
	Note   string `yaml:"note"`
	String int    `yaml:"string"`
	Fret   int    `yaml:"fret"`
}

func (s *LocalTabStore) Save(dir, source string, tab m.Tab) (string, error) {
	if dir == "" {
		return "", fmt.Errorf("output directory path is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	doc := tabYAML{
		Key:   keyYAML{Root: string(tab.Key.Root), Mode: string(tab.Key.Mode)},
		Track: trackYAML{Index: tab.Track.Index, Name: tab.Track.Name, Notes: tab.Track.Notes},
		Width: tab.Width,
		Staff: tab.Staff,
		Notes: make([]noteYAML, 0, len(tab.Positions)),
	}
	for _, note := range tab.Positions {
		doc.Notes = append(doc.Notes, noteYAML{
			Note:   string(note.Note),
			String: int(note.String),
			Fret:   int(note.Fret),
		})
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return "", fmt.Errorf("marshal tab: %w", err)
	}

	stem := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	path := filepath.Join(dir, fmt.Sprintf("%s-track%d.yaml", stem, tab.Track.Index))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write tab report: %w", err)
	}
	return path, nil
}

func (s *LocalTabStore) Load(path string) (m.Tab, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return m.Tab{}, fmt.Errorf("read tab report: %w", err)
	}

	var doc tabYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return m.Tab{}, fmt.Errorf("unmarshal tab report: %w", err)
	}

	tab := m.Tab{
		Key:   m.Key{Root: m.Pitch(doc.Key.Root), Mode: m.Mode(doc.Key.Mode)},
		Track: m.TrackInfo{Index: doc.Track.Index, Name: doc.Track.Name, Notes: doc.Track.Notes},
		Width: doc.Width,
		Staff: doc.Staff,
	}
	for _, note := range doc.Notes {
		tab.Positions = append(tab.Positions, m.PlayedNote{
			Note:   m.Pitch(note.Note),
			String: m.StringIndex(note.String),
			Fret:   m.Fret(note.Fret),
		})
	}
	return tab, nil
}
