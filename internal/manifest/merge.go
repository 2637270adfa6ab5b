package manifest

import "encoding/json"

// Entry is one ordered key/value pair, used where insertion order matters.
type Entry struct {
	Key   string
	Value string
}

// MergeDependencies merges deps into the kind section (Dependencies or
// DevDependencies). New values win and the section ends up sorted by key.
func MergeDependencies(m *Manifest, kind string, deps map[string]string) {
	sec := m.section(kind)
	for name, version := range deps {
		sec.Set(name, version)
	}
	sec.SortKeys()
}

// MergeScripts merges scripts into the scripts section. New values win,
// existing keys keep their place and new keys are appended in argument order.
func MergeScripts(m *Manifest, scripts ...Entry) {
	sec := m.section(Scripts)
	for _, e := range scripts {
		sec.Set(e.Key, e.Value)
	}
}

// ChangeKind distinguishes added from updated entries.
type ChangeKind int

const (
	Added ChangeKind = iota
	Updated
)

// Change is one entry that differs between two manifests.
type Change struct {
	Section string
	Key     string
	Old     string
	New     string
	Kind    ChangeKind
}

// Compare lists entries of the dependency and script sections that were
// added to or changed in after, relative to before. Removals are not reported
// since merges never remove.
func Compare(before, after *Manifest) []Change {
	var changes []Change
	for _, name := range []string{Dependencies, DevDependencies, Scripts} {
		next := after.Section(name)
		if next == nil {
			continue
		}
		prev := before.Section(name)
		for _, key := range next.Keys() {
			nv, _ := next.Get(key)
			if prev == nil {
				changes = append(changes, Change{Section: name, Key: key, New: display(nv), Kind: Added})
				continue
			}
			pv, ok := prev.Get(key)
			switch {
			case !ok:
				changes = append(changes, Change{Section: name, Key: key, New: display(nv), Kind: Added})
			case display(pv) != display(nv):
				changes = append(changes, Change{Section: name, Key: key, Old: display(pv), New: display(nv), Kind: Updated})
			}
		}
	}
	return changes
}

func display(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}
