package nexus

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// ModID identifies a mod on Nexus Mods. A value only exists once the API
// has confirmed the id in a response; there is no public constructor
// from raw input, so every ModID in circulation is server-confirmed.
type ModID struct {
	id uint64
}

// Uint64 returns the numeric id.
func (m ModID) Uint64() uint64 {
	return m.id
}

func (m ModID) String() string {
	return strconv.FormatUint(m.id, 10)
}

func (m *ModID) UnmarshalJSON(data []byte) error {
	var n uint64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("mod_id: %w", err)
	}
	m.id = n
	return nil
}

func (m ModID) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatUint(m.id, 10)), nil
}

// UserIdentity is the account behind an API key, as returned by the
// validate endpoint. The API reports premium and supporter membership
// twice, once under a question-mark alias; the duplication is not
// documented upstream, so both flags are kept and the predicates below
// require agreement.
type UserIdentity struct {
	UserID     uint64 `json:"user_id"`
	Key        string `json:"key"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	ProfileURL string `json:"profile_url"`
	Premium    bool   `json:"is_premium"`
	PremiumQ   bool   `json:"is_premium?"`
	Supporter  bool   `json:"is_supporter"`
	SupporterQ bool   `json:"is_supporter?"`
}

// IsPremium reports whether both premium flags agree on membership.
func (u UserIdentity) IsPremium() bool {
	return u.Premium && u.PremiumQ
}

// IsSupporter reports whether both supporter flags agree on membership.
func (u UserIdentity) IsSupporter() bool {
	return u.Supporter && u.SupporterQ
}

// GameCategory is one entry of a game's category list. Categories arrive
// as a flat list in no guaranteed order, so the parent is a same-list id
// reference resolved via GameInfo.TraceParentCategory, never a pointer.
type GameCategory struct {
	ID     uint64         `json:"category_id"`
	Name   string         `json:"name"`
	Parent CategoryParent `json:"parent_category"`
}

// GameInfo describes a game hosted on Nexus Mods.
type GameInfo struct {
	ID               uint64         `json:"id"`
	Name             string         `json:"name"`
	ForumURL         string         `json:"forum_url"`
	NexusmodsURL     string         `json:"nexusmods_url"`
	Genre            string         `json:"genre"`
	FileCount        uint64         `json:"file_count"`
	Downloads        uint64         `json:"downloads"`
	DomainName       string         `json:"domain_name"`
	ApprovedDate     Timestamp      `json:"approved_date"`
	FileViews        uint64         `json:"file_views"`
	Authors          uint64         `json:"authors"`
	FileEndorsements uint64         `json:"file_endorsements"`
	Mods             uint64         `json:"mods"`
	Categories       []GameCategory `json:"categories"`
}

// TraceParentCategory resolves the parent reference of c within this
// game's category list. The second return is false when c has no parent
// or the referenced id is missing from the list.
func (g GameInfo) TraceParentCategory(c GameCategory) (GameCategory, bool) {
	id, ok := c.Parent.ID()
	if !ok {
		return GameCategory{}, false
	}
	for _, cand := range g.Categories {
		if cand.ID == id {
			return cand, true
		}
	}
	return GameCategory{}, false
}

// TrackedMod is one raw entry of the tracked-mods list.
type TrackedMod struct {
	ModID      ModID  `json:"mod_id"`
	DomainName string `json:"domain_name"`
}

// TrackedMods groups raw tracked-mod entries by game domain. It is built
// once from the response and read-only afterward; within a domain the
// mods keep their insertion order, the domains themselves carry no
// upstream order.
type TrackedMods struct {
	entries  []TrackedMod
	byDomain map[string][]ModID
}

// GroupTrackedMods builds the grouped view from the raw entry list.
func GroupTrackedMods(entries []TrackedMod) TrackedMods {
	byDomain := make(map[string][]ModID, len(entries))
	for _, e := range entries {
		byDomain[e.DomainName] = append(byDomain[e.DomainName], e.ModID)
	}
	return TrackedMods{entries: entries, byDomain: byDomain}
}

// Entries returns the raw list in response order.
func (t TrackedMods) Entries() []TrackedMod {
	return t.entries
}

// Domains returns the game domains with at least one tracked mod,
// sorted for stable output.
func (t TrackedMods) Domains() []string {
	domains := make([]string, 0, len(t.byDomain))
	for d := range t.byDomain {
		domains = append(domains, d)
	}
	sort.Strings(domains)
	return domains
}

// Mods returns the tracked mod ids for a domain in insertion order.
func (t TrackedMods) Mods(domain string) []ModID {
	return t.byDomain[domain]
}

// Len returns the total number of tracked entries.
func (t TrackedMods) Len() int {
	return len(t.entries)
}

// TrackStatus is the outcome of a track request: the server either
// started tracking the mod or reports it was tracked already.
type TrackStatus struct {
	mod   ModID
	fresh bool
}

// ModID returns the tracked mod's server-confirmed id.
func (s TrackStatus) ModID() ModID {
	return s.mod
}

// NewlyTracked reports whether this request started the tracking.
func (s TrackStatus) NewlyTracked() bool {
	return s.fresh
}

// AlreadyTracking reports whether the mod was tracked before the request.
func (s TrackStatus) AlreadyTracking() bool {
	return !s.fresh
}

// Endorsement is one entry of the user's endorsement history.
type Endorsement struct {
	ModID      ModID         `json:"mod_id"`
	DomainName string        `json:"domain_name"`
	Date       Timestamp     `json:"date"`
	Version    *string       `json:"version"`
	Status     EndorseStatus `json:"status"`
}

// ModFile is a single downloadable file of a mod. The id field is an
// array of numeric ids for historical reasons, and the upload instant
// arrives in two encodings that describe the same moment; both are kept
// as decoded.
type ModFile struct {
	IDs                  []uint64     `json:"id"`
	UID                  uint64       `json:"uid"`
	FileID               uint64       `json:"file_id"`
	Name                 string       `json:"name"`
	Version              string       `json:"version"`
	Category             FileCategory `json:"category_id"`
	CategoryName         string       `json:"category_name"`
	IsPrimary            bool         `json:"is_primary"`
	FileName             string       `json:"file_name"`
	UploadedTimestamp    Timestamp    `json:"uploaded_timestamp"`
	UploadedTime         Timestamp    `json:"uploaded_time"`
	ModVersion           string       `json:"mod_version"`
	ExternalVirusScanURL *string      `json:"external_virus_scan_url"`
	Description          *string      `json:"description"`
	Size                 uint64       `json:"size"`
	SizeKB               uint64       `json:"size_kb"`
	SizeInBytes          *uint64      `json:"size_in_bytes"`
	ChangelogHTML        *string      `json:"changelog_html"`
	ContentPreviewLink   string       `json:"content_preview_link"`
}

// FileUpdate records that one file superseded another.
type FileUpdate struct {
	OldFileID         uint64    `json:"old_file_id"`
	NewFileID         uint64    `json:"new_file_id"`
	OldFileName       string    `json:"old_file_name"`
	NewFileName       string    `json:"new_file_name"`
	UploadedTimestamp Timestamp `json:"uploaded_timestamp"`
	UploadedTime      Timestamp `json:"uploaded_time"`
}

// ModFiles bundles a mod's file list with its parallel update history.
type ModFiles struct {
	Files       []ModFile    `json:"files"`
	FileUpdates []FileUpdate `json:"file_updates"`
}

// Dedup collapses files that eq considers equivalent, keeping the first
// representative of each class in original order.
func (m ModFiles) Dedup(eq func(a, b ModFile) bool) []ModFile {
	var out []ModFile
	for _, f := range m.Files {
		dup := false
		for _, kept := range out {
			if eq(kept, f) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, f)
		}
	}
	return out
}
