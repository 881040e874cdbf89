// Package main provides the entry point for the clipsmith application.
// It exposes the utility layer of the media-generation toolchain as a
// small CLI: checking the FFmpeg installation, inspecting job spec files,
// collecting source files, and running FFmpeg commands.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/gertd/go-pluralize"
	"github.com/iancoleman/orderedmap"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v2"

	"github.com/clipsmith/clipsmith/ffmpeg"
	"github.com/clipsmith/clipsmith/fsutil"
	"github.com/clipsmith/clipsmith/jobspec"
)

// Private constants (alphabetical)

const (
	// specSummaryFileName is the name of the report written by the
	// inspect command inside the output directory.
	specSummaryFileName = "spec-summary.txt"
)

// Public constants (alphabetical)
// None currently defined

// Private variables (alphabetical)
// None currently defined

// Public variables (alphabetical)

// BuildDate contains the date when the binary was built.
// This value is set during build using ldflags.
var BuildDate = "unknown"

// Commit contains the git commit hash that the binary was built from.
// This value is set during build using ldflags.
var Commit = "unknown"

// Version contains the current version of the application.
// This value can be overridden during build using ldflags:
// go build -ldflags="-X 'main.Version=v1.0.0'"
var Version = "Development Version"

// Private functions (alphabetical)

// describeSpecValue renders a single spec value for the inspect summary.
// Lists and nested objects are summarized by their size; scalars are
// rendered directly.
func describeSpecValue(value interface{}) string {
	pluralizeClient := pluralize.NewClient()

	switch v := value.(type) {
	case []interface{}:
		return fmt.Sprintf("list of %d %s", len(v), pluralizeClient.Pluralize("entry", len(v), false))
	case orderedmap.OrderedMap:
		keys := v.Keys()
		return fmt.Sprintf("object with %d %s", len(keys), pluralizeClient.Pluralize("key", len(keys), false))
	case string:
		return fmt.Sprintf("%q", v)
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%v", v)
	}
}

// resolveFFmpeg resolves the FFmpeg installation to use, honoring an
// explicit path from the configuration file before falling back to
// search-path detection.
func resolveFFmpeg(config *Config) (*ffmpeg.Info, error) {
	if config.FFmpegPath != "" {
		return ffmpeg.DetectAt(config.FFmpegPath)
	}
	return ffmpeg.Detect()
}

// spinWhile displays an indeterminate spinner until the returned stop
// function is called. It keeps long FFmpeg invocations from looking
// stalled.
func spinWhile(description string) (stop func()) {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSpinnerType(14),
	)

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				_ = bar.Add(1)
			}
		}
	}()

	return func() {
		close(done)
		_ = bar.Finish()
		fmt.Fprintln(os.Stderr)
	}
}

// versionPrinter prints the application version with build metadata.
func versionPrinter(_ *cli.Context) {
	summaryStyle := color.New(color.FgCyan, color.Bold)
	valueStyle := color.New(color.Bold)
	regularStyle := color.New(color.Reset)

	summaryStyle.Printf("🎬 clipsmith %s\n", Version)
	regularStyle.Printf("  🛠️ Build date: ")
	valueStyle.Printf("%s\n", BuildDate)
	regularStyle.Printf("  🔍 Commit: ")
	valueStyle.Printf("%s\n", Commit)
}

// writeSpecSummary writes a plain-text summary of a job spec into the
// output directory, creating the directory if needed.
func writeSpecSummary(spec *orderedmap.OrderedMap, specPath, outputDir string) error {
	outputDir = fsutil.SanitizeDirName(outputDir)
	if err := fsutil.EnsureDir(outputDir); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}

	file, err := os.Create(outputDir + specSummaryFileName)
	if err != nil {
		return fmt.Errorf("error creating summary file: %w", err)
	}
	defer file.Close()

	w := tabwriter.NewWriter(file, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "===========================================")
	fmt.Fprintln(w, "JOB SPEC SUMMARY")
	fmt.Fprintln(w, "===========================================")
	fmt.Fprintf(w, "Spec file:\t%s\n", filepath.Base(specPath))
	fmt.Fprintln(w)

	for _, key := range spec.Keys() {
		value, _ := spec.Get(key)
		fmt.Fprintf(w, "%s:\t%s\n", key, describeSpecValue(value))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "===========================================")
	fmt.Fprintf(w, "Summary Generated: %s\n", time.Now().Format(time.RFC1123))
	fmt.Fprintf(w, "clipsmith Version: %s\n", Version)
	fmt.Fprintln(w, "===========================================")

	if err := w.Flush(); err != nil {
		return fmt.Errorf("error flushing output: %w", err)
	}

	return nil
}

// Public functions (alphabetical)

// checkCommand reports whether FFmpeg is installed and which version was
// found.
func checkCommand(c *cli.Context) error {
	valueStyle := color.New(color.Bold)
	regularStyle := color.New(color.Reset)
	successStyle := color.New(color.FgGreen)
	errorStyle := color.New(color.FgRed)

	config, err := loadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	info, err := resolveFFmpeg(config)
	if err != nil {
		return fmt.Errorf("error detecting FFmpeg: %w", err)
	}

	if !info.Installed {
		errorStyle.Println("❌ FFmpeg was not found on this system.")
		return fmt.Errorf("ffmpeg not found")
	}

	regularStyle.Printf("🔧 Using FFmpeg at ")
	valueStyle.Printf("%s\n", info.Path)
	regularStyle.Printf("🔖 FFmpeg version: ")
	valueStyle.Printf("%s\n", info.Version)
	successStyle.Println("✅ FFmpeg is ready.")
	return nil
}

// collectCommand resolves the given sources into a flat list of files and
// prints them in order.
func collectCommand(c *cli.Context) error {
	summaryStyle := color.New(color.FgCyan, color.Bold)
	regularStyle := color.New(color.Reset)

	if c.NArg() < 1 {
		return fmt.Errorf("missing required argument: SOURCES")
	}

	files, err := fsutil.CollectFiles(c.Args().Slice())
	if err != nil {
		return fmt.Errorf("error collecting files: %w", err)
	}

	pluralizeClient := pluralize.NewClient()
	summaryStyle.Printf("📁 Collected %d %s\n", len(files),
		pluralizeClient.Pluralize("file", len(files), false))
	for _, file := range files {
		regularStyle.Printf("  %s\n", file)
	}
	return nil
}

// execCommand runs FFmpeg with the arguments given after the command
// name, reporting a non-zero exit with its code and captured error
// output.
func execCommand(c *cli.Context) error {
	regularStyle := color.New(color.Reset)
	successStyle := color.New(color.FgGreen)
	errorStyle := color.New(color.FgRed)

	if c.NArg() < 1 {
		return fmt.Errorf("missing required argument: FFMPEG_ARGS")
	}

	config, err := loadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	info, err := resolveFFmpeg(config)
	if err != nil {
		return fmt.Errorf("error detecting FFmpeg: %w", err)
	}
	if !info.Installed {
		return fmt.Errorf("ffmpeg not found")
	}

	args := append([]string{info.Path}, c.Args().Slice()...)

	stop := spinWhile("⚙️ Running ffmpeg")
	output, err := ffmpeg.ExecuteCommand(c.Context, args)
	stop()

	if err != nil {
		errorStyle.Printf("❌ FFmpeg failed: %v\n", err)
		return err
	}

	if strings.TrimSpace(output) != "" {
		regularStyle.Print(output)
	}
	successStyle.Println("✅ FFmpeg command completed.")
	return nil
}

// inspectCommand loads a job spec file and reports its top-level keys in
// document order, optionally writing a summary report to the output
// directory.
func inspectCommand(c *cli.Context) error {
	summaryStyle := color.New(color.FgCyan, color.Bold)
	valueStyle := color.New(color.Bold)
	regularStyle := color.New(color.Reset)
	successStyle := color.New(color.FgGreen)

	if c.NArg() < 1 {
		return fmt.Errorf("missing required argument: SPEC_FILE")
	}
	specPath := c.Args().Get(0)

	spec, err := jobspec.ParseFile(specPath)
	if err != nil {
		return fmt.Errorf("error loading spec: %w", err)
	}

	keys := spec.Keys()
	pluralizeClient := pluralize.NewClient()

	summaryStyle.Println("📋 SPEC SUMMARY")
	regularStyle.Println("----------------")
	regularStyle.Printf("🎬 Spec file: ")
	valueStyle.Printf("%s\n", filepath.Base(specPath))
	regularStyle.Printf("🔑 %d top-level %s\n\n", len(keys),
		pluralizeClient.Pluralize("key", len(keys), false))

	for _, key := range keys {
		value, _ := spec.Get(key)
		regularStyle.Printf("  %s: ", key)
		valueStyle.Printf("%s\n", describeSpecValue(value))
	}

	outputDir := c.String("dir")
	if outputDir == "" {
		config, err := loadConfig(c.String("config"))
		if err != nil {
			return fmt.Errorf("error loading configuration: %w", err)
		}
		outputDir = config.OutputDir
	}
	if outputDir != "" {
		if err := writeSpecSummary(spec, specPath, outputDir); err != nil {
			return err
		}
		successStyle.Printf("\n✅ Spec summary saved to %s\n", fsutil.SanitizeDirName(outputDir))
	}

	return nil
}

// main is the entry point of the application. It wires the commands and
// global flags and dispatches to the requested operation.
func main() {
	// Override the default version printer
	cli.VersionPrinter = versionPrinter

	app := &cli.App{
		Name:  "clipsmith",
		Usage: "Utilities supporting media generation with FFmpeg",
		Description: "clipsmith bundles the filesystem, spec-file, and FFmpeg plumbing used by " +
			"the media-generation toolchain: checking the FFmpeg installation, inspecting " +
			"job specs, collecting source files, and running FFmpeg commands.",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the clipsmith configuration file",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "check",
				Usage:  "Verify that FFmpeg is installed and report its version",
				Action: checkCommand,
			},
			{
				Name:      "collect",
				Usage:     "Resolve sources into a flat list of files",
				ArgsUsage: "SOURCES...",
				Action:    collectCommand,
			},
			{
				Name:      "exec",
				Usage:     "Run FFmpeg with the given arguments",
				ArgsUsage: "-- FFMPEG_ARGS...",
				Action:    execCommand,
			},
			{
				Name:      "inspect",
				Usage:     "Load a job spec file and summarize its contents",
				ArgsUsage: "SPEC_FILE",
				Action:    inspectCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "dir",
						Aliases: []string{"d"},
						Usage:   "Directory where to write the spec summary",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		errorStyle := color.New(color.FgRed)
		errorStyle.Fprintf(os.Stderr, "⚠️ Error: %v\n", err)
		os.Exit(1)
	}
}
