package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// outputCitation writes the final citation string to stdout.
func outputCitation(citation string) {
	fmt.Println(citation)
}

// outputRawJSON pretty-prints a raw upstream payload to stdout. Used by
// permissive dispatch when the work type has no extraction rules.
func outputRawJSON(raw json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return fmt.Errorf("formatting raw payload: %w", err)
	}
	fmt.Println(buf.String())
	return nil
}

// dumpJSON writes a raw upstream payload to a file for debugging,
// creating parent directories as needed.
func dumpJSON(path string, raw json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return fmt.Errorf("formatting debug dump: %w", err)
	}
	buf.WriteByte('\n')
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating debug dump directory: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing debug dump: %w", err)
	}
	return nil
}
