package nexus

import (
	"encoding/json"
	"testing"
)

func TestUserIdentityMembershipNeedsBothFlags(t *testing.T) {
	tests := []struct {
		name          string
		user          UserIdentity
		wantPremium   bool
		wantSupporter bool
	}{
		{"both flag pairs set", UserIdentity{Premium: true, PremiumQ: true, Supporter: true, SupporterQ: true}, true, true},
		{"only plain flags set", UserIdentity{Premium: true, Supporter: true}, false, false},
		{"only alias flags set", UserIdentity{PremiumQ: true, SupporterQ: true}, false, false},
		{"nothing set", UserIdentity{}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.IsPremium(); got != tt.wantPremium {
				t.Errorf("IsPremium() = %v, want %v", got, tt.wantPremium)
			}
			if got := tt.user.IsSupporter(); got != tt.wantSupporter {
				t.Errorf("IsSupporter() = %v, want %v", got, tt.wantSupporter)
			}
		})
	}
}

func TestUserIdentityDecodesAliasFields(t *testing.T) {
	body := `{
		"user_id": 1234,
		"key": "abc",
		"name": "tester",
		"email": "tester@example.com",
		"profile_url": "https://example.com/avatar.png",
		"is_premium?": true,
		"is_premium": true,
		"is_supporter?": false,
		"is_supporter": true
	}`

	var user UserIdentity
	if err := json.Unmarshal([]byte(body), &user); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if user.UserID != 1234 || user.Name != "tester" {
		t.Fatalf("decoded user = %#v", user)
	}
	if !user.IsPremium() {
		t.Error("IsPremium() = false, want true when both flags agree")
	}
	if user.IsSupporter() {
		t.Error("IsSupporter() = true, want false when the flags disagree")
	}
}

func TestGroupTrackedMods(t *testing.T) {
	raw := `[
		{"mod_id": 5, "domain_name": "skyrim"},
		{"mod_id": 9, "domain_name": "skyrim"},
		{"mod_id": 1, "domain_name": "fallout4"}
	]`
	var entries []TrackedMod
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}

	view := GroupTrackedMods(entries)

	if view.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", view.Len())
	}

	domains := view.Domains()
	if len(domains) != 2 || domains[0] != "fallout4" || domains[1] != "skyrim" {
		t.Fatalf("Domains() = %v, want [fallout4 skyrim]", domains)
	}

	skyrim := view.Mods("skyrim")
	if len(skyrim) != 2 || skyrim[0].Uint64() != 5 || skyrim[1].Uint64() != 9 {
		t.Errorf("Mods(skyrim) = %v, want [5 9] in insertion order", skyrim)
	}
	fallout := view.Mods("fallout4")
	if len(fallout) != 1 || fallout[0].Uint64() != 1 {
		t.Errorf("Mods(fallout4) = %v, want [1]", fallout)
	}
	if view.Mods("oblivion") != nil {
		t.Errorf("Mods(oblivion) = %v, want nil", view.Mods("oblivion"))
	}
}

func TestTraceParentCategory(t *testing.T) {
	game := GameInfo{
		Categories: []GameCategory{
			{ID: 1, Name: "Top", Parent: NoParent()},
			{ID: 2, Name: "Child", Parent: ParentCategory(1)},
			{ID: 3, Name: "Orphan", Parent: ParentCategory(99)},
		},
	}

	t.Run("resolves parent by id", func(t *testing.T) {
		parent, ok := game.TraceParentCategory(game.Categories[1])
		if !ok || parent.Name != "Top" {
			t.Errorf("TraceParentCategory(Child) = (%v, %v), want Top", parent, ok)
		}
	})

	t.Run("no parent reference", func(t *testing.T) {
		if _, ok := game.TraceParentCategory(game.Categories[0]); ok {
			t.Error("TraceParentCategory(Top) = ok, want not found")
		}
	})

	t.Run("dangling reference", func(t *testing.T) {
		if _, ok := game.TraceParentCategory(game.Categories[2]); ok {
			t.Error("TraceParentCategory(Orphan) = ok, want not found")
		}
	})
}

func TestModFilesDedup(t *testing.T) {
	files := ModFiles{
		Files: []ModFile{
			{FileID: 1, Name: "A"},
			{FileID: 2, Name: "B"},
			{FileID: 3, Name: "A"},
		},
	}

	got := files.Dedup(func(a, b ModFile) bool {
		return a.Name == b.Name
	})

	if len(got) != 2 || got[0].FileID != 1 || got[1].FileID != 2 {
		t.Errorf("Dedup = %v, want first-seen representatives [1 B=2]", got)
	}
}

func TestModFilesDedupKeepsEverythingWhenDistinct(t *testing.T) {
	files := ModFiles{
		Files: []ModFile{
			{FileID: 1, Name: "A"},
			{FileID: 2, Name: "B"},
		},
	}
	got := files.Dedup(func(a, b ModFile) bool { return false })
	if len(got) != 2 {
		t.Errorf("Dedup = %v, want both files kept", got)
	}
}

func TestModIDJSON(t *testing.T) {
	var m ModID
	if err := json.Unmarshal([]byte("266"), &m); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if m.Uint64() != 266 || m.String() != "266" {
		t.Errorf("decoded ModID = %v", m)
	}

	out, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	if string(out) != "266" {
		t.Errorf("Marshal = %s, want 266", out)
	}

	if err := json.Unmarshal([]byte("-1"), &m); err == nil {
		t.Error("Unmarshal(-1) succeeded, want error")
	}
}

func TestModFileDecodesRedundantFields(t *testing.T) {
	body := `{
		"id": [2972, 110],
		"uid": 472477442972,
		"file_id": 2972,
		"name": "Main File",
		"version": "1.2",
		"category_id": 1,
		"category_name": "MAIN",
		"is_primary": true,
		"file_name": "main-file-1-2.7z",
		"uploaded_timestamp": 1618426348,
		"uploaded_time": "2021-04-14T18:52:28.000+00:00",
		"mod_version": "1.2",
		"external_virus_scan_url": null,
		"description": "The main file.",
		"size": 1024,
		"size_kb": 1024,
		"size_in_bytes": 1048576,
		"changelog_html": null,
		"content_preview_link": "https://example.com/preview"
	}`

	var f ModFile
	if err := json.Unmarshal([]byte(body), &f); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if len(f.IDs) != 2 || f.IDs[0] != 2972 {
		t.Errorf("IDs = %v, want the historical two-element array", f.IDs)
	}
	if f.Category != FileCategoryMain {
		t.Errorf("Category = %v, want main", f.Category)
	}
	if !f.UploadedTimestamp.Time().Equal(f.UploadedTime.Time()) {
		t.Errorf("timestamp encodings disagree: %v vs %v", f.UploadedTimestamp.Time(), f.UploadedTime.Time())
	}
	if f.ExternalVirusScanURL != nil {
		t.Error("ExternalVirusScanURL should be nil for a null field")
	}
	if f.Description == nil || *f.Description != "The main file." {
		t.Errorf("Description = %v", f.Description)
	}
	if f.SizeInBytes == nil || *f.SizeInBytes != 1048576 {
		t.Errorf("SizeInBytes = %v", f.SizeInBytes)
	}
}
