package core

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SyncStatus describes the synchronization state of a note.
// It is informational: the core records it but never acts on it.
type SyncStatus string

const (
	SyncStatusSynced    SyncStatus = "SYNCED"
	SyncStatusPending   SyncStatus = "PENDING"
	SyncStatusLocalOnly SyncStatus = "LOCAL_ONLY"
	SyncStatusConflict  SyncStatus = "CONFLICT"
)

// NoteType discriminates between plain-text notes and checklists.
type NoteType string

const (
	NoteTypeText      NoteType = "TEXT"
	NoteTypeChecklist NoteType = "CHECKLIST"
)

// Display-ordering preferences for checklist items. Persisted verbatim;
// the core does not interpret them.
const (
	SortManual           = "MANUAL"
	SortAlphabeticalAsc  = "ALPHABETICAL_ASC"
	SortAlphabeticalDesc = "ALPHABETICAL_DESC"
	SortUncheckedFirst   = "UNCHECKED_FIRST"
	SortCheckedFirst     = "CHECKED_FIRST"
)

// ChecklistItem is one entry of a checklist note.
type ChecklistItem struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	IsChecked bool   `json:"isChecked"`
	// Order defines display and serialization order, 0-based. Duplicates are
	// allowed; ties keep their original parse order.
	Order int `json:"order"`
}

// NewChecklistItem creates an unchecked item with a fresh id.
func NewChecklistItem(text string, order int) ChecklistItem {
	return ChecklistItem{
		ID:    uuid.NewString(),
		Text:  text,
		Order: order,
	}
}

// Note is the structured representation of one document. The ID doubles as
// the storage filename stem and is immutable after creation.
type Note struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	CreatedAt  int64      `json:"createdAt"`
	UpdatedAt  int64      `json:"updatedAt"`
	DeviceID   string     `json:"deviceId"`
	SyncStatus SyncStatus `json:"syncStatus"`
	NoteType   NoteType   `json:"noteType"`

	// ChecklistItems is present (possibly empty) for checklist notes and
	// absent for text notes. omitzero keeps an empty-but-present list in the
	// wire form while dropping the key entirely when nil.
	ChecklistItems []ChecklistItem `json:"checklistItems,omitzero"`

	ChecklistSortOption string `json:"checklistSortOption,omitempty"`
}

// NewNote creates an empty text note with both timestamps set to now.
func NewNote(title, deviceID string) Note {
	now := time.Now().UnixMilli()
	return Note{
		ID:         uuid.NewString(),
		Title:      title,
		CreatedAt:  now,
		UpdatedAt:  now,
		DeviceID:   deviceID,
		SyncStatus: SyncStatusSynced,
		NoteType:   NoteTypeText,
	}
}

// NewChecklistNote creates an empty checklist note.
func NewChecklistNote(title, deviceID string) Note {
	n := NewNote(title, deviceID)
	n.NoteType = NoteTypeChecklist
	n.ChecklistItems = []ChecklistItem{}
	n.ChecklistSortOption = SortUncheckedFirst
	return n
}

// Touch advances UpdatedAt to now.
func (n *Note) Touch() {
	n.UpdatedAt = time.Now().UnixMilli()
}

// Normalize repairs legacy shape issues after deserialization.
//
// Content implies type: a note carrying checklist items is a checklist no
// matter what the stored type tag says (old clients wrote items without a
// noteType field). A checklist without an item list gets an empty one, and a
// missing sync status defaults to SYNCED.
func (n *Note) Normalize() {
	if len(n.ChecklistItems) > 0 {
		n.NoteType = NoteTypeChecklist
	}
	if n.NoteType == NoteTypeChecklist && n.ChecklistItems == nil {
		n.ChecklistItems = []ChecklistItem{}
	}
	if n.NoteType == "" {
		n.NoteType = NoteTypeText
	}
	if n.SyncStatus == "" {
		n.SyncStatus = SyncStatusSynced
	}
}

// FallbackContent renders the note's checklist items as bullet-less checkbox
// lines, the plain-text stand-in stored in Content for checklist notes.
func (n *Note) FallbackContent() string {
	return FallbackContent(n.ChecklistItems)
}

// FallbackContent renders items sorted by Order as "[x] text" lines.
func FallbackContent(items []ChecklistItem) string {
	sorted := make([]ChecklistItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })

	lines := make([]string, 0, len(sorted))
	for _, item := range sorted {
		check := " "
		if item.IsChecked {
			check = "x"
		}
		lines = append(lines, "["+check+"] "+item.Text)
	}
	return strings.Join(lines, "\n")
}

// NoteSummary is the listing projection of a Note. It omits the fields a
// list view never needs (createdAt, deviceId, syncStatus).
type NoteSummary struct {
	ID                  string          `json:"id"`
	Title               string          `json:"title"`
	Content             string          `json:"content"`
	UpdatedAt           int64           `json:"updatedAt"`
	NoteType            NoteType        `json:"noteType"`
	ChecklistItems      []ChecklistItem `json:"checklistItems,omitzero"`
	ChecklistSortOption string          `json:"checklistSortOption,omitempty"`
}

// Summary projects the note for listings.
func (n *Note) Summary() NoteSummary {
	return NoteSummary{
		ID:                  n.ID,
		Title:               n.Title,
		Content:             n.Content,
		UpdatedAt:           n.UpdatedAt,
		NoteType:            n.NoteType,
		ChecklistItems:      n.ChecklistItems,
		ChecklistSortOption: n.ChecklistSortOption,
	}
}
