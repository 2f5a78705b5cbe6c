package main

import (
	"os"
	"strings"

	"github.com/cavaliergopher/grab/v3"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vlad9486/elf64/lib/elf64"
	"github.com/vlad9486/elf64/lib/logging"
)

func main() {
	rootCmd := &cobra.Command{
		Use:              "readelf",
		Short:            "Inspect ELF64 binaries",
		Long:             "Decode and display the header, segments, sections, symbols, relocations and notes of an ELF64 binary, local or remote",
		PersistentPreRun: logging.CmdSetDebugLevel,
	}
	rootCmd.PersistentFlags().StringP("file", "f", "", "ELF file to inspect: a local path or an http(s) URL")
	rootCmd.PersistentFlags().IntP("debug", "d", 2, "Debug level: 0 (least verbose) to 3 (most verbose)")

	rootCmd.AddCommand(cmdHeader(), cmdSegments(), cmdSections(), cmdSymbols(), cmdRelocs(), cmdNotes())

	if err := rootCmd.Execute(); err != nil {
		logging.Fatalf("readelf: %v", err)
	}
}

// loadELF reads the target named by --file into memory and decodes it.
// http(s) URLs are downloaded to a temp dir first; the decoded File
// only references the in-memory copy, so the temp dir is removed
// before returning.
func loadELF(cmd *cobra.Command) (*elf64.File, error) {
	target, err := cmd.Flags().GetString("file")
	if err != nil || target == "" {
		return nil, errors.New("no target, specify one with -f")
	}

	if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
		tmpdir, mkErr := os.MkdirTemp("", "readelf")
		if mkErr != nil {
			return nil, errors.Wrap(mkErr, "temp dir for download")
		}
		defer os.RemoveAll(tmpdir)
		logging.Debugf("Downloading '%s' to '%s'", target, tmpdir)
		resp, dlErr := grab.Get(tmpdir, target)
		if dlErr != nil {
			return nil, errors.Wrapf(dlErr, "download %s", target)
		}
		target = resp.Filename
	}

	data, err := os.ReadFile(target)
	if err != nil {
		return nil, errors.Wrap(err, "read ELF file")
	}
	logging.Debugf("Decoding %s (%d bytes)", target, len(data))
	f, err := elf64.New(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", target)
	}
	return f, nil
}
