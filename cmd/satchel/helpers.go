// Shared output helpers for satchel CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"
)

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// printTable renders rows with aligned columns. header and rows use tabs
// as column separators.
func printTable(header string, rows []string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, header)
	for _, r := range rows {
		fmt.Fprintln(w, r)
	}
	w.Flush()
}

// shortID trims a UUID for table display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// displayTime formats a timestamp for table output.
func displayTime(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}

// joinTags renders a tag set for table output.
func joinTags(tags []string) string {
	if len(tags) == 0 {
		return "-"
	}
	return strings.Join(tags, ",")
}

// truncate shortens s for table display. Counting runes keeps multi-byte
// characters from being cut in half.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

// optionalFlag returns a pointer to the flag value when the flag was
// changed, nil otherwise. Partial updates use this to tell "not supplied"
// apart from "set to empty".
func optionalFlag(changed bool, value string) *string {
	if !changed {
		return nil
	}
	return &value
}
