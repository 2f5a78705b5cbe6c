package main

import (
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/vlad9486/elf64/lib/elf64"
	"github.com/vlad9486/elf64/lib/logging"
)

// renderTable draws rows under a colored header, in the same style for
// every view.
func renderTable(header []string, rows [][]string) string {
	builder := new(strings.Builder)
	table := tablewriter.NewWriter(builder)
	table.SetHeader(header)
	table.SetBorder(true)
	table.SetRowLine(false)
	table.SetAutoWrapText(false)

	headerColors := make([]tablewriter.Colors, len(header))
	columnColors := make([]tablewriter.Colors, len(header))
	for i := range header {
		headerColors[i] = tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor}
		columnColors[i] = tablewriter.Colors{tablewriter.FgBlueColor}
	}
	table.SetHeaderColor(headerColors...)
	table.SetColumnColor(columnColors...)

	table.AppendBulk(rows)
	table.Render()
	return builder.String()
}

func cmdHeader() *cobra.Command {
	return &cobra.Command{
		Use:   "header",
		Short: "Display the ELF file header",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadELF(cmd)
			if err != nil {
				return err
			}
			rows := [][]string{
				{"Class", f.Class().String()},
				{"Data", f.Encoding().String()},
				{"Ident version", fmt.Sprintf("%d", f.Version())},
				{"OS/ABI", f.ABI().String()},
				{"ABI version", fmt.Sprintf("%d", f.ABIVersion())},
				{"Type", f.Type().String()},
				{"Machine", f.Machine().String()},
				{"Version", fmt.Sprintf("0x%x", f.FormatVersion())},
				{"Entry point", fmt.Sprintf("0x%x", f.Entry())},
				{"Flags", fmt.Sprintf("0x%x", f.Flags())},
				{"Program headers", fmt.Sprintf("%d", f.ProgramCount())},
				{"Section headers", fmt.Sprintf("%d", f.SectionCount())},
				{"Section name table", f.Header().SectionNames.String()},
			}
			logging.Printf("\n%s", renderTable([]string{"Field", "Value"}, rows))
			return nil
		},
	}
}

func cmdSegments() *cobra.Command {
	return &cobra.Command{
		Use:   "segments",
		Short: "Display the program headers",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadELF(cmd)
			if err != nil {
				return err
			}
			var rows [][]string
			for i := 0; i < f.ProgramCount(); i++ {
				ph, phErr := f.ProgramHeader(i)
				if phErr != nil {
					return phErr
				}
				rows = append(rows, []string{
					fmt.Sprintf("%d", i),
					ph.Type.String(),
					ph.Flags.String(),
					fmt.Sprintf("0x%06x", ph.FileOffset),
					fmt.Sprintf("0x%x", ph.VirtualAddress),
					fmt.Sprintf("0x%x", ph.FileSize),
					fmt.Sprintf("0x%x", ph.MemorySize),
					fmt.Sprintf("0x%x", ph.Alignment),
				})
			}
			logging.Printf("\n%s", renderTable(
				[]string{"Idx", "Type", "Flags", "Offset", "VirtAddr", "FileSize", "MemSize", "Align"}, rows))

			for i := 0; i < f.ProgramCount(); i++ {
				seg, segErr := f.Program(i)
				if segErr != nil {
					logging.Warningf("Segment %d: %v", i, segErr)
					continue
				}
				if seg == nil {
					continue
				}
				if interp, ok := seg.Data.(*elf64.InterpreterData); ok {
					logging.Printf("Program interpreter: %s", interp.Path)
				}
			}
			return nil
		},
	}
}

func cmdSections() *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "Display the section headers",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadELF(cmd)
			if err != nil {
				return err
			}
			var rows [][]string
			for i := 0; i < f.SectionCount(); i++ {
				sh, shErr := f.SectionHeader(i)
				if shErr != nil {
					return shErr
				}
				name, nameErr := f.SectionName(i)
				if nameErr != nil {
					logging.Debugf("Section %d name: %v", i, nameErr)
					name = nil
				}
				rows = append(rows, []string{
					fmt.Sprintf("%d", i),
					string(name),
					sh.Type.String(),
					sh.Flags.String(),
					fmt.Sprintf("0x%x", sh.Address),
					fmt.Sprintf("0x%06x", sh.Offset),
					fmt.Sprintf("0x%x", sh.Size),
					sh.Link.String(),
					fmt.Sprintf("%d", sh.Info),
				})
			}
			logging.Printf("\n%s", renderTable(
				[]string{"Idx", "Name", "Type", "Flags", "Address", "Offset", "Size", "Link", "Info"}, rows))
			return nil
		},
	}
}

func cmdSymbols() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "symbols",
		Short: "Display the symbol tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadELF(cmd)
			if err != nil {
				return err
			}
			keyword, _ := cmd.Flags().GetString("grep")

			found := false
			for i := 0; i < f.SectionCount(); i++ {
				sec, secErr := f.Section(i)
				if secErr != nil {
					logging.Debugf("Section %d: %v", i, secErr)
					continue
				}
				if sec == nil {
					continue
				}
				switch data := sec.Data.(type) {
				case *elf64.SymbolTableData:
					found = true
					dumpSymbols(f, sec, data.Table, data.Locals, keyword)
				case *elf64.DynamicSymbolTableData:
					found = true
					dumpSymbols(f, sec, data.Table, data.Locals, keyword)
				}
			}
			if !found {
				logging.Warningf("No symbol tables in this file")
			}
			return nil
		},
	}
	cmd.Flags().StringP("grep", "g", "", "Fuzzy-match symbol names against this keyword")
	return cmd
}

func dumpSymbols(f *elf64.File, sec *elf64.Section, table elf64.Table[elf64.SymbolEntry], locals int, keyword string) {
	names := linkedStrings(f, sec.Link)

	logging.Printf("Symbol table '%s': %d entries, %d local", sec.Name, table.Len(), locals)
	var rows [][]string
	for j := 0; j < table.Len(); j++ {
		sym, err := table.Pick(j)
		if err != nil {
			logging.Warningf("Symbol %d: %v", j, err)
			continue
		}
		name := ""
		if names != nil {
			if raw, nameErr := names.Pick(sym.Name); nameErr == nil {
				name = string(raw)
			}
		}
		if keyword != "" && !fuzzy.MatchFold(keyword, name) {
			continue
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", j),
			fmt.Sprintf("0x%016x", sym.Value),
			fmt.Sprintf("%d", sym.Size),
			sym.Info.Type().String(),
			sym.Info.Binding().String(),
			sym.Section.String(),
			name,
		})
	}
	logging.Printf("\n%s", renderTable(
		[]string{"Num", "Value", "Size", "Type", "Bind", "Ndx", "Name"}, rows))
}

// linkedStrings resolves a section's link field to the string table it
// points at, or nil when the link is unset or points elsewhere.
func linkedStrings(f *elf64.File, link elf64.Index) *elf64.StringTable {
	idx, ok := link.Regular()
	if !ok {
		return nil
	}
	sec, err := f.Section(int(idx))
	if err != nil || sec == nil {
		return nil
	}
	strs, ok := sec.Data.(*elf64.StringTableData)
	if !ok {
		return nil
	}
	return &strs.Strings
}

func cmdRelocs() *cobra.Command {
	return &cobra.Command{
		Use:   "relocs",
		Short: "Display the relocation tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadELF(cmd)
			if err != nil {
				return err
			}
			found := false
			for i := 0; i < f.SectionCount(); i++ {
				sec, secErr := f.Section(i)
				if secErr != nil {
					logging.Debugf("Section %d: %v", i, secErr)
					continue
				}
				if sec == nil {
					continue
				}
				switch data := sec.Data.(type) {
				case *elf64.RelaData:
					found = true
					logging.Printf("Relocation section '%s' applies to section %s: %d entries",
						sec.Name, data.AppliesTo, data.Table.Len())
					var rows [][]string
					for j := 0; j < data.Table.Len(); j++ {
						rel, relErr := data.Table.Pick(j)
						if relErr != nil {
							logging.Warningf("Relocation %d: %v", j, relErr)
							continue
						}
						rows = append(rows, []string{
							fmt.Sprintf("0x%012x", rel.Address),
							fmt.Sprintf("%d", rel.SymbolIndex),
							fmt.Sprintf("0x%x", rel.Type),
							fmt.Sprintf("%d", rel.Addend),
						})
					}
					logging.Printf("\n%s", renderTable([]string{"Offset", "Symbol", "Type", "Addend"}, rows))
				case *elf64.RelData:
					found = true
					logging.Printf("Relocation section '%s' applies to section %s: %d entries",
						sec.Name, data.AppliesTo, data.Table.Len())
					var rows [][]string
					for j := 0; j < data.Table.Len(); j++ {
						rel, relErr := data.Table.Pick(j)
						if relErr != nil {
							logging.Warningf("Relocation %d: %v", j, relErr)
							continue
						}
						rows = append(rows, []string{
							fmt.Sprintf("0x%012x", rel.Address),
							fmt.Sprintf("%d", rel.SymbolIndex),
							fmt.Sprintf("0x%x", rel.Type),
						})
					}
					logging.Printf("\n%s", renderTable([]string{"Offset", "Symbol", "Type"}, rows))
				}
			}
			if !found {
				logging.Warningf("No relocation tables in this file")
			}
			return nil
		},
	}
}

func cmdNotes() *cobra.Command {
	return &cobra.Command{
		Use:   "notes",
		Short: "Display the note entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadELF(cmd)
			if err != nil {
				return err
			}
			found := false
			for i := 0; i < f.SectionCount(); i++ {
				sec, secErr := f.Section(i)
				if secErr != nil || sec == nil {
					continue
				}
				if notes, ok := sec.Data.(*elf64.NoteData); ok {
					found = true
					logging.Printf("Notes in section '%s':", sec.Name)
					dumpNotes(notes.Notes)
				}
			}
			// notes may live only in a PT_NOTE segment, e.g. in a
			// stripped core dump
			if !found {
				for i := 0; i < f.ProgramCount(); i++ {
					seg, segErr := f.Program(i)
					if segErr != nil || seg == nil {
						continue
					}
					if notes, ok := seg.Data.(*elf64.NoteData); ok {
						found = true
						logging.Printf("Notes in segment %d:", i)
						dumpNotes(notes.Notes)
					}
				}
			}
			if !found {
				logging.Warningf("No notes in this file")
			}
			return nil
		},
	}
}

func dumpNotes(notes elf64.NoteTable) {
	var rows [][]string
	position := 0
	for {
		entry, err := notes.Next(&position)
		if err != nil {
			break
		}
		desc := fmt.Sprintf("%x", entry.Desc)
		if len(desc) > 32 {
			desc = desc[:32] + "..."
		}
		rows = append(rows, []string{
			string(entry.Name),
			fmt.Sprintf("0x%x", entry.Type),
			fmt.Sprintf("%d", len(entry.Desc)),
			desc,
		})
	}
	logging.Printf("\n%s", renderTable([]string{"Owner", "Type", "DescLen", "Desc"}, rows))
}
