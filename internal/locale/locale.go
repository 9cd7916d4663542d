// Package locale provides the localized labels used by report output.
package locale

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. The English text doubles as the key.
const (
	keyTask     = "Task"
	keyDuration = "Duration"
	keyTotal    = "Total:"
	keySkipped  = "Skipped"
	keyStatus   = "Status"
	keyCategory = "Category"
	keyTitle    = "Task Summary"
)

// Supported lists the languages with a translation, default first.
var Supported = []language.Tag{
	language.English,
	language.SimplifiedChinese,
}

var (
	cat     = newCatalog()
	matcher = language.NewMatcher(Supported)
)

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	set := func(tag language.Tag, pairs ...string) {
		for i := 0; i+1 < len(pairs); i += 2 {
			// SetString only fails for malformed tags or messages, neither of which occur here.
			_ = b.SetString(tag, pairs[i], pairs[i+1])
		}
	}
	set(language.English,
		keyTask, "Task",
		keyDuration, "Duration",
		keyTotal, "Total:",
		keySkipped, "Skipped",
		keyStatus, "Status",
		keyCategory, "Category",
		keyTitle, "Task Summary",
	)
	set(language.SimplifiedChinese,
		keyTask, "任务",
		keyDuration, "时间",
		keyTotal, "总计:",
		keySkipped, "已跳过",
		keyStatus, "状态",
		keyCategory, "类别",
		keyTitle, "任务摘要",
	)
	return b
}

// Match resolves a user locale such as "zh-CN", "en_US" or "" to a supported language.
// Unknown or malformed locales resolve to English.
func Match(s string) language.Tag {
	tag, _ := match(s)
	return tag
}

// Recognized reports whether s names a language with a translation.
// The empty locale counts as recognized.
func Recognized(s string) bool {
	_, ok := match(s)
	return ok
}

func match(s string) (language.Tag, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, "_", "-"))
	if s == "" {
		return language.English, true
	}
	// Strip encodings like "en-US.UTF-8" that come from LANG.
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.English, false
	}
	_, index, conf := matcher.Match(tag)
	if conf == language.No {
		return language.English, false
	}
	return Supported[index], true
}

// Titles holds the labels of a printed report.
type Titles struct {
	Task     string
	Duration string
	Total    string
	Skipped  string
	Status   string
	Category string
	Title    string
}

// NewTitles returns the labels for the given language.
func NewTitles(tag language.Tag) Titles {
	p := message.NewPrinter(tag, message.Catalog(cat))
	return Titles{
		Task:     p.Sprintf(keyTask),
		Duration: p.Sprintf(keyDuration),
		Total:    p.Sprintf(keyTotal),
		Skipped:  p.Sprintf(keySkipped),
		Status:   p.Sprintf(keyStatus),
		Category: p.Sprintf(keyCategory),
		Title:    p.Sprintf(keyTitle),
	}
}
