package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"bennypowers.dev/dtx/internal/exporter"
	"bennypowers.dev/dtx/internal/log"
	"bennypowers.dev/dtx/internal/pipeline"
	"bennypowers.dev/dtx/internal/report"
	"bennypowers.dev/dtx/internal/tokens"
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>...",
	Short: "Import token files and export them in one or more formats",
	Long: `Convert reads one or more token files (format auto-detected),
merges them into a single collection, validates it, and writes the
requested output formats to the output directory.

Later files win on token name collisions.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringSliceP("format", "f", []string{"css"}, "Output formats (style-dictionary, w3c-dtcg, css, tailwind, typescript)")
	convertCmd.Flags().StringP("out", "o", "dist", "Output directory")
	convertCmd.Flags().StringP("name", "n", "", "Collection name override")
	convertCmd.Flags().StringSliceP("types", "t", nil, "Only export tokens of these types")
	convertCmd.Flags().Bool("group-by-category", false, "Group CSS output by category; nest the Tailwind palette")
	convertCmd.Flags().Bool("type-definitions", false, "Emit key-union types in the TypeScript module")
	convertCmd.Flags().Bool("docs", false, "Include token descriptions as comments")
	convertCmd.Flags().String("css-prefix", "", "Prefix for CSS custom property names")
	convertCmd.Flags().String("ts-namespace", "", "Wrap TypeScript declarations in a namespace")
	convertCmd.Flags().Bool("resolve", false, "Replace token aliases with their literal values before export")
	convertCmd.Flags().BoolP("watch", "w", false, "Re-run on input file changes")
}

func runConvert(cmd *cobra.Command, args []string) error {
	paths, err := expandInputs(args)
	if err != nil {
		return err
	}

	opts, err := exportOptions(cmd)
	if err != nil {
		return err
	}
	outDir := configString("out", "out", "dist")
	name, _ := cmd.Flags().GetString("name")

	run := func() error {
		return convertOnce(cmd, paths, name, outDir, opts)
	}

	if err := run(); err != nil {
		return err
	}

	if watch, _ := cmd.Flags().GetBool("watch"); watch {
		return watchInputs(paths, run)
	}
	return nil
}

// convertOnce imports every input file into one session, reports
// validation, and writes the export outputs.
func convertOnce(cmd *cobra.Command, paths []string, name, outDir string, opts exporter.Options) error {
	session := pipeline.NewSession()
	reporter := newReporter(cmd)

	for i, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		mode := pipeline.ModeMerge
		if i == 0 {
			mode = pipeline.ModeReplace
		}
		if _, err := session.ImportTokens(string(content), pipeline.ImportOptions{
			Mode:           mode,
			FileName:       filepath.Base(path),
			CollectionName: name,
		}); err != nil {
			return fmt.Errorf("importing %s: %w", path, err)
		}
		reporter.PrintImportWarnings(session.ImportWarnings())
	}

	if result := session.Validation(); result != nil {
		reporter.PrintResult(result)
	}

	if resolve, _ := cmd.Flags().GetBool("resolve"); resolve {
		if _, err := session.ResolveAliases(); err != nil {
			return fmt.Errorf("resolving aliases: %w", err)
		}
	}

	exported, err := session.ExportTokens(opts)
	if err != nil {
		return err
	}
	if len(exported.Formats) == 0 {
		return fmt.Errorf("no recognized output formats")
	}

	for _, file := range exported.Files {
		target := filepath.Join(outDir, file.Path)
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		if err := os.WriteFile(target, []byte(file.Content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", target, err)
		}
		log.Info("wrote %s", target)
	}
	log.Info("exported %d token(s) to %d format(s)", exported.TokenCount, len(exported.Formats))
	return nil
}

// exportOptions builds exporter options from flags and config.
func exportOptions(cmd *cobra.Command) (exporter.Options, error) {
	var opts exporter.Options

	for _, name := range configStrings("format", "formats") {
		format, ok := exporter.ParseFormat(name)
		if !ok {
			return opts, fmt.Errorf("unknown output format %q", name)
		}
		opts.Formats = append(opts.Formats, format)
	}

	for _, name := range configStrings("types", "types") {
		tokenType, ok := tokens.ParseType(name)
		if !ok {
			return opts, fmt.Errorf("unknown token type %q", name)
		}
		opts.IncludeTypes = append(opts.IncludeTypes, tokenType)
	}

	opts.GroupByCategory, _ = cmd.Flags().GetBool("group-by-category")
	opts.IncludeTypeDefinitions, _ = cmd.Flags().GetBool("type-definitions")
	opts.GenerateDocs, _ = cmd.Flags().GetBool("docs")
	opts.CSSPrefix = configString("css-prefix", "css.prefix", "")
	opts.TSNamespace = configString("ts-namespace", "ts.namespace", "")
	return opts, nil
}

// expandInputs resolves glob patterns in args to a sorted, deduplicated
// file list. A literal path that exists passes through unchanged.
func expandInputs(args []string) ([]string, error) {
	seen := map[string]bool{}
	var paths []string
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			paths = append(paths, path)
		}
	}

	for _, arg := range args {
		if _, err := os.Stat(arg); err == nil {
			add(arg)
			continue
		}
		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", arg)
		}
		sort.Strings(matches)
		for _, match := range matches {
			add(match)
		}
	}
	return paths, nil
}

// watchInputs re-runs the conversion whenever an input file's directory
// reports a change to one of the inputs. Blocks until interrupted.
func watchInputs(paths []string, run func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer watcher.Close()

	watched := map[string]bool{}
	inputs := map[string]bool{}
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		inputs[abs] = true
		// Watch the directory, not the file: editors replace files on
		// save, which drops a direct file watch.
		dir := filepath.Dir(abs)
		if !watched[dir] {
			if err := watcher.Add(dir); err != nil {
				return fmt.Errorf("watching %s: %w", dir, err)
			}
			watched[dir] = true
		}
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	log.Info("watching %d file(s) for changes", len(inputs))

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !inputs[abs] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			log.Info("%s changed, rebuilding", event.Name)
			if err := run(); err != nil {
				log.Error("rebuild failed: %v", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error: %v", err)
		case <-interrupt:
			return nil
		}
	}
}

func newReporter(cmd *cobra.Command) *report.Reporter {
	force, _ := cmd.Flags().GetBool("color")
	return report.NewReporter(cmd.OutOrStdout(), report.ShouldUseColors(force))
}
