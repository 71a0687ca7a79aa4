package diary

import "encoding/json"

// Entry is the todo/contents/thanks triple stored for one date.
// Fields are never nil: absent input normalizes to "" or an empty slice.
type Entry struct {
	TodoItems []string `json:"todo"`
	Contents  string   `json:"contents"`
	Thanks    string   `json:"thanks"`
}

func emptyEntry() Entry {
	return Entry{TodoItems: []string{}}
}

func (e Entry) clone() Entry {
	items := make([]string, len(e.TodoItems))
	copy(items, e.TodoItems)
	e.TodoItems = items
	return e
}

// Flags reports which parts of an entry are non-empty.
type Flags struct {
	HasContents bool `json:"haveContents"`
	HasTodos    bool `json:"haveTodos"`
}

func (e Entry) Flags() Flags {
	return Flags{
		HasContents: e.Contents != "",
		HasTodos:    len(e.TodoItems) > 0,
	}
}

// Summary lists the dates that have contents and the dates that have todos,
// both ascending.
type Summary struct {
	HaveContents []string `json:"haveContents"`
	HaveTodos    []string `json:"haveTodos"`
}

// Input is a loosely typed full write. Any field may hold any decoded JSON value.
type Input struct {
	Todo     any `json:"todo"`
	Contents any `json:"contents"`
	Thanks   any `json:"thanks"`
}

// Optional is a JSON field that remembers whether its key was present in the body.
// An explicit null counts as present.
type Optional struct {
	Value any
	Set   bool
}

func Some(v any) Optional {
	return Optional{Value: v, Set: true}
}

func (o *Optional) UnmarshalJSON(b []byte) error {
	o.Set = true
	return json.Unmarshal(b, &o.Value)
}

// Patch is a partial write: unset fields keep the stored value.
type Patch struct {
	Todo     Optional `json:"todo"`
	Contents Optional `json:"contents"`
	Thanks   Optional `json:"thanks"`
}
