package cmd

import (
	"encoding/json"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"nexus-mod-tracker/nexus"
)

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune{r}})
}

func modelWithRows(t *testing.T) Model {
	t.Helper()
	var entries []nexus.TrackedMod
	if err := json.Unmarshal([]byte(`[
		{"mod_id": 1, "domain_name": "fallout4"},
		{"mod_id": 5, "domain_name": "skyrim"},
		{"mod_id": 9, "domain_name": "skyrim"}
	]`), &entries); err != nil {
		t.Fatalf("failed to build fixture: %v", err)
	}

	view := nexus.GroupTrackedMods(entries)
	var rows []TrackedRow
	for _, domain := range view.Domains() {
		for _, mod := range view.Mods(domain) {
			rows = append(rows, TrackedRow{Domain: domain, ModID: mod})
		}
	}
	return Model{rows: rows, width: 80, height: 24}
}

// TestModelInitialization tests that the Model initializes correctly
func TestModelInitialization(t *testing.T) {
	m := initialModel(nil)

	if !m.loading {
		t.Fatal("loading should be true initially")
	}
	if m.selectedIndex != 0 {
		t.Fatal("selectedIndex not initialized correctly")
	}
	if m.width != 80 || m.height != 24 {
		t.Fatal("width or height not initialized correctly")
	}
}

// TestModelNavigation tests key-driven navigation within the model
func TestModelNavigation(t *testing.T) {
	m := modelWithRows(t)

	next, _ := m.Update(keyMsg('j'))
	m = next.(Model)
	if m.selectedIndex != 1 {
		t.Fatal("Navigation down failed")
	}

	next, _ = m.Update(keyMsg('j'))
	m = next.(Model)
	next, _ = m.Update(keyMsg('j'))
	m = next.(Model)
	if m.selectedIndex != 2 {
		t.Fatal("Navigation should stop at last row")
	}

	next, _ = m.Update(keyMsg('k'))
	m = next.(Model)
	if m.selectedIndex != 1 {
		t.Fatal("Navigation up failed")
	}

	m.selectedIndex = 0
	next, _ = m.Update(keyMsg('k'))
	m = next.(Model)
	if m.selectedIndex != 0 {
		t.Fatal("Navigation should stop at first row")
	}
}

// TestModelSelectionToggle tests marking rows with the space key
func TestModelSelectionToggle(t *testing.T) {
	m := modelWithRows(t)

	next, _ := m.Update(keyMsg(' '))
	m = next.(Model)
	if !m.rows[0].Selected {
		t.Fatal("Space should select the current row")
	}

	next, _ = m.Update(keyMsg(' '))
	m = next.(Model)
	if m.rows[0].Selected {
		t.Fatal("Space should deselect an already-selected row")
	}

	empty := Model{}
	next, _ = empty.Update(keyMsg(' '))
	empty = next.(Model)
	if len(empty.rows) != 0 {
		t.Fatal("Space on an empty model should be a no-op")
	}
}

// TestTrackedLoadedResetsSelection tests reload handling
func TestTrackedLoadedResetsSelection(t *testing.T) {
	m := modelWithRows(t)
	m.loading = true
	m.selectedIndex = 2

	next, _ := m.Update(trackedLoadedMsg{rows: m.rows[:1]})
	m = next.(Model)

	if m.loading {
		t.Fatal("loading should clear once rows arrive")
	}
	if m.selectedIndex != 0 {
		t.Fatal("selection should reset when it falls off the shorter list")
	}
}

// TestEmptyRowList tests behavior with no tracked mods
func TestEmptyRowList(t *testing.T) {
	m := Model{rows: nil, loading: false}

	view := m.View()
	if view == "" {
		t.Fatal("View should return a message for an empty row list")
	}
}

// TestViewGroupsByDomain tests that the rendered list keeps domain headings
func TestViewGroupsByDomain(t *testing.T) {
	m := modelWithRows(t)

	view := m.View()
	if !strings.Contains(view, "fallout4") || !strings.Contains(view, "skyrim") {
		t.Fatal("View should render a heading per domain")
	}
	if strings.Index(view, "fallout4") > strings.Index(view, "skyrim") {
		t.Fatal("Domains should render in sorted order")
	}
}

// TestErrorMessageStopsSpinner tests error handling
func TestErrorMessageStopsSpinner(t *testing.T) {
	m := modelWithRows(t)
	m.loading = true
	m.untracking = true

	next, _ := m.Update(errorMsg("boom"))
	m = next.(Model)

	if m.loading || m.untracking {
		t.Fatal("an error should stop both busy states")
	}
	if !strings.Contains(m.View(), "boom") {
		t.Fatal("View should surface the error text")
	}
}
