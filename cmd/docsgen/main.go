package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/appengine-ltd/deep-mine/internal/format"
	"github.com/appengine-ltd/deep-mine/internal/items"
)

type docFile struct {
	Name    string
	Title   string
	Content string
}

func main() {
	root := filepath.Join("docs", "reference")
	if err := os.MkdirAll(root, 0o755); err != nil {
		fatal(err)
	}

	files := []docFile{
		generateItemsDoc(items.DefaultCatalog()),
		generateNumberFormatsDoc(),
		generateDurationFormatsDoc(),
	}
	for _, f := range files {
		path := filepath.Join(root, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote %s\n", path)
	}

	index := generateIndex(files)
	indexPath := filepath.Join(root, "README.md")
	if err := os.WriteFile(indexPath, []byte(index), 0o644); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %s\n", indexPath)
}

func generateIndex(files []docFile) string {
	var b strings.Builder
	b.WriteString("# Reference\n\n")
	b.WriteString("Generated from the current Go source using `go run ./cmd/docsgen`.\n\n")
	for _, f := range files {
		b.WriteString(fmt.Sprintf("- [%s](./%s)\n", f.Title, f.Name))
	}
	return b.String()
}

func generateItemsDoc(catalog *items.Catalog) docFile {
	names := catalog.Names()

	var b strings.Builder
	b.WriteString("# Items\n\n")
	b.WriteString("Source: `internal/items/catalog.go` (`DefaultCatalog`).\n\n")
	b.WriteString(fmt.Sprintf("Total items: **%d**.\n\n", len(names)))
	b.WriteString("| Key | Name | Rarity | Tool | Cursor While Held | Icon |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- |\n")
	for _, name := range names {
		it, ok := catalog.ByName(name)
		if !ok {
			continue
		}
		b.WriteString("| ")
		b.WriteString(escape(it.Key()))
		b.WriteString(" | ")
		b.WriteString(escape(it.Name))
		b.WriteString(" | ")
		b.WriteString(escape(it.Rarity.String()))
		b.WriteString(" | ")
		b.WriteString(yesNo(it.Tool))
		b.WriteString(" | ")
		b.WriteString(cursorName(it.HoldIcon))
		b.WriteString(" | ")
		b.WriteString(escape(it.Icon))
		b.WriteString(" |\n")
	}

	return docFile{Name: "items.md", Title: "Items", Content: b.String()}
}

func generateNumberFormatsDoc() docFile {
	samples := []int64{0, 999, 1234, 99999, 100000, 999999, 1000000, 1500000, 2750000000, 1000000000000, 1000000000000000}

	var b strings.Builder
	b.WriteString("# Number Formats\n\n")
	b.WriteString("Source: `internal/format/number.go`.\n\n")
	b.WriteString("Counts below 100,000 are shown with thousands separators; larger counts are floored to one decimal and given a K/M/B/T/Q suffix.\n\n")
	b.WriteString("| Value | CommaFormat | SuffixedNumber | Parsed Back |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, n := range samples {
		suffixed := format.SuffixedNumber(n)
		parsed, err := format.ParseSuffixedNumber(suffixed)
		back := formatFloat(parsed)
		if err != nil {
			back = err.Error()
		}
		b.WriteString("| ")
		b.WriteString(strconv.FormatInt(n, 10))
		b.WriteString(" | ")
		b.WriteString(format.CommaFormat(n))
		b.WriteString(" | ")
		b.WriteString(escape(suffixed))
		b.WriteString(" | ")
		b.WriteString(escape(back))
		b.WriteString(" |\n")
	}

	return docFile{Name: "number-formats.md", Title: "Number Formats", Content: b.String()}
}

func generateDurationFormatsDoc() docFile {
	samples := []string{"45s", "5m 10s", "1h 1m 1s", "1d 5h 10s", "2w", "3 minutes"}

	var b strings.Builder
	b.WriteString("# Duration Formats\n\n")
	b.WriteString("Source: `internal/format/duration.go`.\n\n")
	b.WriteString("Units: s/second(s), m/minute(s), h/hour(s), d/day(s), w/week(s). Unknown units are ignored.\n\n")
	b.WriteString("| Input | Seconds | Timer | Remaining |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, in := range samples {
		secs := format.ToSeconds(in)
		timer, err := format.TimerFormat(secs)
		if err != nil {
			fatal(err)
		}
		remaining, err := format.RemainingTime(secs)
		if err != nil {
			fatal(err)
		}
		b.WriteString("| ")
		b.WriteString(escape(in))
		b.WriteString(" | ")
		b.WriteString(format.CommaFormat(secs))
		b.WriteString(" | ")
		b.WriteString(timer)
		b.WriteString(" | ")
		b.WriteString(escape(remaining))
		b.WriteString(" |\n")
	}

	return docFile{Name: "duration-formats.md", Title: "Duration Formats", Content: b.String()}
}

func cursorName(c items.Cursor) string {
	switch c {
	case items.CursorDrag:
		return "drag"
	default:
		return "default"
	}
}

func formatFloat(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escape(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	v = strings.ReplaceAll(v, "|", "\\|")
	v = strings.ReplaceAll(v, "\n", "<br>")
	return v
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
