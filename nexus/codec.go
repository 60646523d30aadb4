package nexus

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

var (
	jsonTrue  = []byte("true")
	jsonFalse = []byte("false")
)

// CategoryParent is the parent reference of a game category: either the
// id of another category in the same game, or no parent at all. The API
// encodes "no parent" as the literal false, so a plain integer field
// cannot represent this (0 is a valid category id).
type CategoryParent struct {
	id  uint64
	set bool
}

// ParentCategory returns a reference to the category with the given id.
func ParentCategory(id uint64) CategoryParent {
	return CategoryParent{id: id, set: true}
}

// NoParent returns the empty parent reference.
func NoParent() CategoryParent {
	return CategoryParent{}
}

// ID returns the parent category id and whether a parent exists.
func (p CategoryParent) ID() (uint64, bool) {
	return p.id, p.set
}

// UnmarshalJSON accepts a non-negative integer or the literal false.
// true and negative integers are rejected.
func (p *CategoryParent) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, jsonFalse) {
		*p = CategoryParent{}
		return nil
	}
	if bytes.Equal(data, jsonTrue) {
		return fmt.Errorf("parent_category: true is not a valid parent reference")
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("parent_category: %w", err)
	}
	if n < 0 {
		return fmt.Errorf("parent_category: negative category id %d", n)
	}
	*p = CategoryParent{id: uint64(n), set: true}
	return nil
}

// MarshalJSON emits the parent id, or false when there is none.
func (p CategoryParent) MarshalJSON() ([]byte, error) {
	if !p.set {
		return jsonFalse, nil
	}
	return []byte(strconv.FormatUint(p.id, 10)), nil
}

// EndorseStatus is the endorsement state of a mod as reported by the
// endorsements endpoint.
type EndorseStatus int

const (
	NotEndorsed EndorseStatus = iota
	Endorsed
)

func (s EndorseStatus) String() string {
	if s == Endorsed {
		return "Endorsed"
	}
	return "Undecided"
}

// UnmarshalJSON maps the exact tag "Endorsed" to Endorsed. Every other
// well-formed value in this position means the mod is not endorsed; the
// set of non-endorsed tags is open-ended upstream, so unknown values are
// not an error.
func (s *EndorseStatus) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err == nil && tag == "Endorsed" {
		*s = Endorsed
		return nil
	}
	if !json.Valid(data) {
		return fmt.Errorf("endorsement status: invalid JSON value")
	}
	*s = NotEndorsed
	return nil
}

func (s EndorseStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// FileCategory classifies a mod file. Unlike the endorsement status this
// union is closed: a category id outside the six documented variants
// signals a contract break and fails decoding.
type FileCategory int

const (
	FileCategoryMain FileCategory = iota + 1
	FileCategoryUpdate
	FileCategoryOptional
	FileCategoryOldVersion
	FileCategoryMiscellaneous
	FileCategoryRemoved
)

func (c FileCategory) String() string {
	switch c {
	case FileCategoryMain:
		return "main"
	case FileCategoryUpdate:
		return "update"
	case FileCategoryOptional:
		return "optional"
	case FileCategoryOldVersion:
		return "old_version"
	case FileCategoryMiscellaneous:
		return "miscellaneous"
	case FileCategoryRemoved:
		return "removed"
	}
	return fmt.Sprintf("file category %d", int(c))
}

func (c *FileCategory) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("category_id: %w", err)
	}
	if n < int(FileCategoryMain) || n > int(FileCategoryRemoved) {
		return fmt.Errorf("category_id: unknown file category %d", n)
	}
	*c = FileCategory(n)
	return nil
}

func (c FileCategory) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(c))), nil
}

// timestampLayouts covers the string encodings the API uses across
// endpoints. The rate-limit reset headers use the space-separated form.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.000000-07:00",
	"2006-01-02 15:04:05 -0700",
}

// Timestamp is an instant that decodes from either a Unix epoch integer
// or an ISO-8601 string. The wire form is remembered so that encoding a
// decoded value reproduces the shape it arrived in.
type Timestamp struct {
	t   time.Time
	iso bool
}

// Time returns the decoded instant.
func (ts Timestamp) Time() time.Time {
	return ts.t
}

func (ts Timestamp) IsZero() bool {
	return ts.t.IsZero()
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("timestamp: %w", err)
		}
		for _, layout := range timestampLayouts {
			if t, err := time.Parse(layout, raw); err == nil {
				*ts = Timestamp{t: t, iso: true}
				return nil
			}
		}
		return fmt.Errorf("timestamp: unrecognized time string %q", raw)
	}
	var epoch int64
	if err := json.Unmarshal(data, &epoch); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	*ts = Timestamp{t: time.Unix(epoch, 0).UTC()}
	return nil
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.iso {
		return json.Marshal(ts.t.Format(time.RFC3339))
	}
	return []byte(strconv.FormatInt(ts.t.Unix(), 10)), nil
}
