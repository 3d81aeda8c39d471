package version

import (
	"embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed manifests/*.yaml
var manifestFS embed.FS

// Manifest describes the subsystems and commands of one protocol release.
type Manifest struct {
	Version     string                   `yaml:"version"`
	Description string                   `yaml:"description"`
	Subsystems  map[string]SubsystemSpec `yaml:"subsystems"`
}

// SubsystemSpec describes one command namespace.
type SubsystemSpec struct {
	ID        uint8         `yaml:"id"`
	Mandatory bool          `yaml:"mandatory"`
	Commands  []CommandSpec `yaml:"commands"`
	Callbacks []CallbackDef `yaml:"callbacks"`
}

// CommandSpec is a host-to-bridge command.
type CommandSpec struct {
	ID        uint8  `yaml:"id"`
	Name      string `yaml:"name"`
	Type      string `yaml:"type"`
	Mandatory bool   `yaml:"mandatory"`
}

// CallbackDef is a bridge-to-host AREQ. Bit is zero for callbacks that are
// not gated by a subscription.
type CallbackDef struct {
	ID   uint8  `yaml:"id"`
	Name string `yaml:"name"`
	Bit  uint32 `yaml:"bit"`
}

var (
	cacheMu sync.RWMutex
	cache   = make(map[string]*Manifest)
)

// LoadManifest loads the manifest for a release (e.g. "2.1").
func LoadManifest(ver string) (*Manifest, error) {
	cacheMu.RLock()
	if m, ok := cache[ver]; ok {
		cacheMu.RUnlock()
		return m, nil
	}
	cacheMu.RUnlock()

	data, err := manifestFS.ReadFile("manifests/" + ver + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("manifest %q not found: %w", ver, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %q: %w", ver, err)
	}

	cacheMu.Lock()
	cache[ver] = &m
	cacheMu.Unlock()

	return &m, nil
}

// LoadCurrentManifest loads the manifest for Current.
func LoadCurrentManifest() (*Manifest, error) {
	return LoadManifest(Current)
}

// AvailableManifests returns the releases with an embedded manifest.
func AvailableManifests() ([]string, error) {
	entries, err := manifestFS.ReadDir("manifests")
	if err != nil {
		return nil, fmt.Errorf("reading manifests directory: %w", err)
	}

	var versions []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasSuffix(name, ".yaml") {
			versions = append(versions, strings.TrimSuffix(name, ".yaml"))
		}
	}
	sort.Strings(versions)
	return versions, nil
}

// SubsystemByID looks up a subsystem by its numeric id.
func (m *Manifest) SubsystemByID(id uint8) (string, *SubsystemSpec, bool) {
	for name, s := range m.Subsystems {
		if s.ID == id {
			return name, &s, true
		}
	}
	return "", nil, false
}

// CommandName returns "SUB.NAME" for a command or callback id, or a hex
// fallback when the manifest does not list it.
func (m *Manifest) CommandName(sub, id uint8) string {
	name, s, ok := m.SubsystemByID(sub)
	if !ok {
		return fmt.Sprintf("RES%d.0x%02X", sub, id)
	}
	for _, c := range s.Commands {
		if c.ID == id {
			return name + "." + c.Name
		}
	}
	for _, c := range s.Callbacks {
		if c.ID == id {
			return name + "." + c.Name
		}
	}
	return fmt.Sprintf("%s.0x%02X", name, id)
}

// ---------------------------------------------------------------------------
// Validation
// ---------------------------------------------------------------------------

// BridgeCapabilities lists the command ids a bridge registers per subsystem id.
type BridgeCapabilities map[uint8][]uint8

// ValidationResult holds the outcome of checking a bridge against a manifest.
type ValidationResult struct {
	Valid    bool
	Errors   []string
	Warnings []string
}

// ValidateBridge checks that a bridge registers every mandatory subsystem and
// command of m. Commands the manifest does not know are reported as warnings.
func ValidateBridge(m *Manifest, caps BridgeCapabilities) ValidationResult {
	var result ValidationResult

	names := make([]string, 0, len(m.Subsystems))
	for name := range m.Subsystems {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		sub := m.Subsystems[name]
		ids, present := caps[sub.ID]
		if !present {
			if sub.Mandatory {
				result.Errors = append(result.Errors,
					fmt.Sprintf("mandatory subsystem %s missing", name))
			}
			continue
		}

		have := makeUint8Set(ids)
		known := make(map[uint8]bool, len(sub.Commands))
		for _, c := range sub.Commands {
			known[c.ID] = true
			if c.Mandatory && !have[c.ID] {
				result.Errors = append(result.Errors,
					fmt.Sprintf("subsystem %s missing mandatory command %s (0x%02X)", name, c.Name, c.ID))
			}
		}
		for _, id := range ids {
			if !known[id] {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("subsystem %s registers unlisted command 0x%02X", name, id))
			}
		}
	}

	result.Valid = len(result.Errors) == 0
	return result
}

func makeUint8Set(ids []uint8) map[uint8]bool {
	s := make(map[uint8]bool, len(ids))
	for _, id := range ids {
		s[id] = true
	}
	return s
}
