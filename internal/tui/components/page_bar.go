package components

import (
	"strconv"
	"strings"

	"github.com/mmcdole/marquee/internal/catalog"
	"github.com/mmcdole/marquee/internal/tui/styles"
)

// PageBarItem is one clickable-looking cell of the page bar
type PageBarItem struct {
	Label    string
	Active   bool
	Disabled bool
}

// PageBarItems lays out "‹ Prev", one cell per page, then "Next ›".
// Prev and Next are disabled at the boundaries.
func PageBarItems(page catalog.Page) []PageBarItem {
	if page.TotalPages == 0 {
		return nil
	}

	items := []PageBarItem{{Label: "‹ Prev", Disabled: !page.HasPrev()}}
	for n := 1; n <= page.TotalPages; n++ {
		items = append(items, PageBarItem{Label: strconv.Itoa(n), Active: n == page.Number})
	}
	return append(items, PageBarItem{Label: "Next ›", Disabled: !page.HasNext()})
}

// RenderPageBar renders the page bar for the given page
func RenderPageBar(page catalog.Page) string {
	var b strings.Builder
	for _, item := range PageBarItems(page) {
		switch {
		case item.Disabled:
			b.WriteString(styles.PageDisabledStyle.Render(item.Label))
		case item.Active:
			b.WriteString(styles.PageActiveStyle.Render(item.Label))
		default:
			b.WriteString(styles.PageStyle.Render(item.Label))
		}
	}
	return b.String()
}
