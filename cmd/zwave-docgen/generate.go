package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zwave-protocol/zwave-go/pkg/specparse"
)

// GenerateClassPage produces the Markdown reference page for one command class.
func GenerateClassPage(c *ClassDoc) string {
	var b strings.Builder

	writeClassHeader(&b, c)
	writeClassCommands(&b, c)
	writeClassLayouts(&b, c)

	return b.String()
}

func writeClassHeader(b *strings.Builder, c *ClassDoc) {
	fmt.Fprintf(b, "# %s\n\n", c.Name)

	if c.Description != "" {
		fmt.Fprintf(b, "> %s\n\n", strings.TrimSpace(c.Description))
	}

	fmt.Fprintf(b, "| | |\n|---|---|\n")
	fmt.Fprintf(b, "| **ID** | %s |\n", hexByte(c.ID))
	fmt.Fprintf(b, "| **Version** | %d |\n", c.Version)
	fmt.Fprintf(b, "| **Catalog** | `%s` |\n", filepath.Base(c.Source))
	b.WriteString("\n")
}

func writeClassCommands(b *strings.Builder, c *ClassDoc) {
	b.WriteString("## Commands\n\n")
	b.WriteString("| ID | Name | Since | Direction | Description |\n")
	b.WriteString("|---:|------|:-----:|-----------|-------------|\n")

	for _, cmd := range c.Commands {
		fmt.Fprintf(b, "| %s | %s | v%d | %s | %s |\n",
			hexByte(cmd.ID),
			cmd.Name,
			cmd.Since,
			directionLabel(cmd.Direction),
			cmd.Description,
		)
	}
	b.WriteString("\n")
}

// writeClassLayouts documents commands whose payload layout the catalog
// describes field by field.
func writeClassLayouts(b *strings.Builder, c *ClassDoc) {
	var withFields []specparse.RawCommand
	for _, cmd := range c.Commands {
		if len(cmd.Fields) > 0 {
			withFields = append(withFields, cmd)
		}
	}
	if len(withFields) == 0 {
		return
	}

	b.WriteString("## Payload Layouts\n\n")
	for _, cmd := range withFields {
		fmt.Fprintf(b, "### %s (%s)\n\n", cmd.Name, hexByte(cmd.ID))
		b.WriteString("| # | Field | Type | Details |\n")
		b.WriteString("|--:|-------|------|---------|\n")
		for i, f := range cmd.Fields {
			fmt.Fprintf(b, "| %d | `%s` | `%s` | %s |\n", i+1, f.Name, formatFieldType(f), formatFieldDetail(f))
		}
		b.WriteString("\n")
	}
}

// GenerateIndexPage produces the overview of all command classes.
func GenerateIndexPage(m *DocModel) string {
	var b strings.Builder

	b.WriteString("# Command Class Reference\n\n")
	b.WriteString("| ID | Command Class | Version | Commands |\n")
	b.WriteString("|---:|---------------|:-------:|---------:|\n")
	for _, c := range m.Classes {
		fmt.Fprintf(&b, "| %s | [%s](%s.md) | %d | %d |\n",
			hexByte(c.ID), c.Name, classSlug(c.Name), c.Version, len(c.Commands))
	}
	b.WriteString("\n")
	return b.String()
}

// generateAll writes one page per class plus index.md to outputDir.
func generateAll(m *DocModel, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	for _, c := range m.Classes {
		path := filepath.Join(outputDir, classSlug(c.Name)+".md")
		if err := os.WriteFile(path, []byte(GenerateClassPage(c)), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", c.Name, err)
		}
	}

	indexPath := filepath.Join(outputDir, "index.md")
	if err := os.WriteFile(indexPath, []byte(GenerateIndexPage(m)), 0o644); err != nil {
		return fmt.Errorf("writing index: %w", err)
	}
	return nil
}
