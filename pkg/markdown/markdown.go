// Package markdown converts between the structured note model and its
// frontmatter-annotated plain-text mirror document.
//
// The parser is deliberately lenient: the mirror files are author-editable
// and several historical format variants exist, so it favors graceful
// degradation (generated ids, defaulted types) over rejection.
package markdown

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aretw0/notedav/pkg/core"
)

var (
	// frontmatterRe captures the block between the leading "---" delimiters
	// and the remainder of the document.
	frontmatterRe = regexp.MustCompile(`(?s)\A---\n(.*?)\n---\n(.*)\z`)

	// checklistItemRe matches bulleted checkbox lines ("- [ ] foo").
	checklistItemRe = regexp.MustCompile(`^-\s*\[([ xX])\]\s*(.+)$`)

	// checklistRecoveryRe is the permissive variant without the bullet,
	// for salvaging items from degraded documents.
	checklistRecoveryRe = regexp.MustCompile(`^\s*\[([ xX])\]\s*(.+)$`)
)

// Parse pulls the frontmatter block from the head of the document and
// interprets the rest as title heading plus body. serverMtime is the last
// known server modification time in Unix milliseconds; pass 0 when unknown.
// It overrides the frontmatter's own updated value only when strictly
// greater, so a server clock running behind the document never rewinds it.
func Parse(doc string, serverMtime int64) (core.Note, error) {
	m := frontmatterRe.FindStringSubmatch(doc)
	if m == nil {
		return core.Note{}, &core.ParseError{Detail: "no frontmatter found"}
	}
	meta := parseFrontmatter(m[1])
	body := m[2]

	title, content := splitTitle(body)

	noteType := core.NoteTypeText
	if meta["type"] == "checklist" {
		noteType = core.NoteTypeChecklist
	}

	createdAt := time.Now().UnixMilli()
	if v, ok := meta["created"]; ok {
		if ts, err := FromISO(v); err == nil {
			createdAt = ts
		}
	}

	updatedAt := createdAt
	if v, ok := meta["updated"]; ok {
		if ts, err := FromISO(v); err == nil {
			updatedAt = ts
		}
	}
	if serverMtime > updatedAt {
		updatedAt = serverMtime
	}

	var items []core.ChecklistItem
	if noteType == core.NoteTypeChecklist {
		items = parseChecklistItems(content)
		// Store a bullet-less rendering so the content field stays usable
		// even if the item list is lost downstream.
		content = core.FallbackContent(items)
	}

	id := meta["id"]
	if id == "" {
		id = uuid.NewString()
	}

	device := meta["device"]
	if device == "" {
		device = "unknown"
	}

	var sortOption string
	if v, ok := meta["sort"]; ok {
		sortOption = strings.ReplaceAll(strings.ToUpper(v), "-", "_")
	}

	return core.Note{
		ID:                  id,
		Title:               title,
		Content:             content,
		CreatedAt:           createdAt,
		UpdatedAt:           updatedAt,
		DeviceID:            device,
		SyncStatus:          core.SyncStatusSynced,
		NoteType:            noteType,
		ChecklistItems:      items,
		ChecklistSortOption: sortOption,
	}, nil
}

// Render emits the mirror document: frontmatter, "# title" heading, blank
// line, then the body. Checklist items render as "- [ ]"/"- [x]" lines in
// ascending order; text notes carry their content verbatim.
func Render(n core.Note) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("id: " + n.ID + "\n")
	b.WriteString("created: " + ToISO(n.CreatedAt) + "\n")
	b.WriteString("updated: " + ToISO(n.UpdatedAt) + "\n")
	b.WriteString("device: " + n.DeviceID + "\n")
	b.WriteString("type: " + typeTag(n.NoteType))
	if n.ChecklistSortOption != "" {
		b.WriteString("\nsort: " + strings.ToLower(n.ChecklistSortOption))
	}
	b.WriteString("\n---\n\n# " + n.Title + "\n\n")

	if n.NoteType == core.NoteTypeChecklist {
		sorted := make([]core.ChecklistItem, len(n.ChecklistItems))
		copy(sorted, n.ChecklistItems)
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })
		for _, item := range sorted {
			checkbox := "[ ]"
			if item.IsChecked {
				checkbox = "[x]"
			}
			b.WriteString("- " + checkbox + " " + item.Text + "\n")
		}
	} else {
		b.WriteString(n.Content)
	}

	return b.String()
}

// RecoverChecklist scans arbitrary text for checkbox-like lines without
// requiring the leading bullet. It reconstructs items from a degraded or
// hand-edited mirror document when the structured fields are gone.
func RecoverChecklist(content string) []core.ChecklistItem {
	return scanItems(content, checklistRecoveryRe)
}

func typeTag(t core.NoteType) string {
	if t == core.NoteTypeChecklist {
		return "checklist"
	}
	return "text"
}

// parseFrontmatter reads flat "key: value" pairs, splitting on the first
// colon. No nesting, no escaping; the format intentionally stays simple
// enough to survive hand edits.
func parseFrontmatter(block string) map[string]string {
	meta := make(map[string]string)
	for _, line := range strings.Split(block, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		meta[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return meta
}

// splitTitle returns the first "# " heading as title and everything after
// that heading line as body.
func splitTitle(body string) (title, rest string) {
	title = "Untitled"
	rest = body
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "# ") {
			title = strings.TrimSpace(line[2:])
			rest = strings.Join(lines[i+1:], "\n")
			break
		}
	}
	return title, strings.TrimSpace(rest)
}

func parseChecklistItems(content string) []core.ChecklistItem {
	return scanItems(content, checklistItemRe)
}

func scanItems(content string, re *regexp.Regexp) []core.ChecklistItem {
	items := []core.ChecklistItem{}
	for _, line := range strings.Split(content, "\n") {
		m := re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		items = append(items, core.ChecklistItem{
			ID:        uuid.NewString(),
			Text:      strings.TrimSpace(m[2]),
			IsChecked: strings.EqualFold(m[1], "x"),
			Order:     len(items),
		})
	}
	return items
}
