// Package main is the Clausewise CLI entry point.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/hyperjump/clausewise/internal/cli"
	"github.com/hyperjump/clausewise/internal/config"
	"github.com/hyperjump/clausewise/internal/models"
	"github.com/hyperjump/clausewise/internal/patterns"
	"github.com/hyperjump/clausewise/internal/server"
	"github.com/hyperjump/clausewise/internal/summarize"
	"github.com/hyperjump/clausewise/internal/watcher"
	"github.com/hyperjump/clausewise/pkg/utils"
)

var version = "dev"

func main() {
	// .env is optional; it usually carries GEMINI_API_KEY.
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "server":
		runServer()
	case "analyze":
		runAnalyze()
	case "summarize":
		runSummarize()
	case "watch":
		runWatch()
	case "patterns":
		runPatterns()
	case "version", "--version", "-v":
		fmt.Printf("clausewise version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

// setup loads config and builds the logger and components shared by the
// local subcommands.
func setup(configPath string, debug bool) (*config.Config, string, *zap.Logger, *Components) {
	cfg, resolved, err := config.Resolve(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("config loaded", zap.String("config_path", resolved), zap.Bool("debug", debugMode))

	components, err := initializeComponents(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize components", zap.Error(err))
	}
	return cfg, resolved, logger, components
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", "", "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, logger, components := setup(*configPath, *debug)
	defer logger.Sync()
	defer components.Close()

	watchCtx, watchCancel := context.WithCancel(context.Background())
	defer watchCancel()
	watchSvc := newWatcher(cfg, components, logger)
	if err := watchSvc.Start(watchCtx); err != nil {
		logger.Fatal("Failed to start watcher", zap.Error(err))
	}
	defer watchSvc.Stop()
	watchSvc.SyncExistingFiles()

	srv := server.NewServer(components.Processor, components.Summaries, cfg, logger, watchSvc, resolvedConfigPath)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	watchCancel()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

func newWatcher(cfg *config.Config, components *Components, logger *zap.Logger) *watcher.Watcher {
	reporter := watcher.NewReporter(components.Processor, cfg.Watch.OutputDir, logger)
	return watcher.New(
		cfg.Watch.Directories,
		cfg.Watch.Extensions,
		cfg.Watch.RecursiveOrDefault(),
		reporter,
		watcher.WithLogger(logger),
		watcher.WithResync(cfg.Watch.ResyncSchedule),
	)
}

// argsReorder moves flags that follow the positional arguments to the front
// so that "clausewise analyze nda.pdf -output json" parses the same as the
// flags-first form. The flag package stops at the first non-flag argument.
func argsReorder(args []string) []string {
	for i, a := range args {
		if len(a) > 0 && a[0] == '-' {
			if i == 0 {
				return args
			}
			reordered := make([]string, 0, len(args))
			reordered = append(reordered, args[i:]...)
			reordered = append(reordered, args[:i]...)
			return reordered
		}
	}
	return args
}

func runAnalyze() {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	configPath := fs.String("config", "", "config file path")
	outputFormat := fs.String("output", "text", "output format: text or json")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(argsReorder(os.Args[2:]))

	if fs.NArg() < 1 {
		fmt.Println("Usage: clausewise analyze [flags] <file>")
		os.Exit(1)
	}
	format, err := cli.ParseFormat(*outputFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	_, _, logger, components := setup(*configPath, *debug)
	defer logger.Sync()
	defer components.Close()

	doc, err := components.Processor.ProcessFile(context.Background(), fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Analysis failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteAnalysis(os.Stdout, doc, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runSummarize() {
	fs := flag.NewFlagSet("summarize", flag.ExitOnError)
	configPath := fs.String("config", "", "config file path")
	kind := fs.String("kind", "extractive", "summary kind: extractive, abstractive, or focused")
	sentences := fs.Int("sentences", 0, "sentences in an extractive summary (0 = config default)")
	maxLength := fs.Int("max-length", 0, "maximum words in an abstractive summary (0 = config default)")
	minLength := fs.Int("min-length", 0, "minimum words in an abstractive summary (0 = config default)")
	focus := fs.String("focus", "", "comma-separated focus areas (default: "+strings.Join(summarize.DefaultFocusAreas, ",")+")")
	outputFormat := fs.String("output", "text", "output format: text or json")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(argsReorder(os.Args[2:]))

	if fs.NArg() < 1 {
		fmt.Println("Usage: clausewise summarize [flags] <file>")
		os.Exit(1)
	}
	format, err := cli.ParseFormat(*outputFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	_, _, logger, components := setup(*configPath, *debug)
	defer logger.Sync()
	defer components.Close()

	ctx := context.Background()
	doc, err := components.Processor.ProcessFile(ctx, fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Extraction failed: %v\n", err)
		os.Exit(1)
	}
	summary, err := components.Summaries.Summarize(ctx, models.SummaryRequest{
		Text:      doc.Document.CleanText,
		Kind:      models.SummaryKind(*kind),
		Sentences: *sentences,
		MaxLength: *maxLength,
		MinLength: *minLength,
		Focus:     splitList(*focus),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Summarize failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteSummary(os.Stdout, summary, format); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

// splitList splits a comma-separated flag value, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func runPatterns() {
	fs := flag.NewFlagSet("patterns", flag.ExitOnError)
	path := fs.String("file", "", "validate and print this override file instead of the built-in vocabulary")
	_ = fs.Parse(os.Args[2:])

	var (
		data []byte
		err  error
	)
	if *path == "" {
		data, err = patterns.BuiltinYAML()
	} else {
		var lib *patterns.Library
		if lib, err = patterns.LoadFile(*path); err == nil {
			data, err = lib.Marshal()
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Patterns failed: %v\n", err)
		os.Exit(1)
	}
	_, _ = os.Stdout.Write(data)
}

func runWatch() {
	if len(os.Args) < 3 {
		printWatchUsage()
		os.Exit(1)
	}
	sub := os.Args[2]
	if sub == "run" {
		runWatchLocal()
		return
	}
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	serverURL := fs.String("server", "http://localhost:8080", "server URL")
	_ = fs.Parse(os.Args[3:])
	switch sub {
	case "add":
		if fs.NArg() < 1 {
			fmt.Println("Usage: clausewise watch add <path>")
			os.Exit(1)
		}
		path, _ := filepath.Abs(fs.Arg(0))
		body, _ := json.Marshal(map[string]interface{}{"path": path, "sync": true})
		resp, err := http.Post(*serverURL+"/api/v1/watch/directories", "application/json", bytes.NewReader(body))
		if err != nil {
			fmt.Printf("Request failed: %v\n", err)
			os.Exit(1)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusCreated {
			b, _ := io.ReadAll(resp.Body)
			fmt.Printf("Add failed (%d): %s\n", resp.StatusCode, string(b))
			os.Exit(1)
		}
		fmt.Printf("Added: %s\n", path)
	case "remove":
		if fs.NArg() < 1 {
			fmt.Println("Usage: clausewise watch remove <path>")
			os.Exit(1)
		}
		path, _ := filepath.Abs(fs.Arg(0))
		req, _ := http.NewRequest(http.MethodDelete, *serverURL+"/api/v1/watch/directories?path="+url.QueryEscape(path), nil)
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			fmt.Printf("Request failed: %v\n", err)
			os.Exit(1)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			b, _ := io.ReadAll(resp.Body)
			fmt.Printf("Remove failed (%d): %s\n", resp.StatusCode, string(b))
			os.Exit(1)
		}
		fmt.Printf("Removed: %s\n", path)
	case "list":
		resp, err := http.Get(*serverURL + "/api/v1/watch/directories")
		if err != nil {
			fmt.Printf("Request failed: %v\n", err)
			os.Exit(1)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			b, _ := io.ReadAll(resp.Body)
			fmt.Printf("List failed (%d): %s\n", resp.StatusCode, string(b))
			os.Exit(1)
		}
		var out struct {
			Directories []string `json:"directories"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			fmt.Printf("Parse failed: %v\n", err)
			os.Exit(1)
		}
		for _, d := range out.Directories {
			fmt.Println(d)
		}
	default:
		fmt.Printf("Unknown watch subcommand: %s\n", sub)
		printWatchUsage()
		os.Exit(1)
	}
}

// runWatchLocal watches the given (or configured) directories without a
// server and writes a report per analyzed file.
func runWatchLocal() {
	fs := flag.NewFlagSet("watch run", flag.ExitOnError)
	configPath := fs.String("config", "", "config file path")
	outputDir := fs.String("output-dir", "", "directory for JSON reports (default from config)")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(argsReorder(os.Args[3:]))

	cfg, _, logger, components := setup(*configPath, *debug)
	defer logger.Sync()
	defer components.Close()

	if fs.NArg() > 0 {
		cfg.Watch.Directories = cfg.Watch.Directories[:0]
		for _, arg := range fs.Args() {
			abs, err := filepath.Abs(arg)
			if err != nil {
				logger.Fatal("invalid directory", zap.String("path", arg), zap.Error(err))
			}
			cfg.Watch.Directories = append(cfg.Watch.Directories, abs)
		}
	}
	if len(cfg.Watch.Directories) == 0 {
		fmt.Println("Usage: clausewise watch run [flags] <directory>...")
		os.Exit(1)
	}
	if *outputDir != "" {
		cfg.Watch.OutputDir = *outputDir
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	w := newWatcher(cfg, components, logger)
	if err := w.Start(ctx); err != nil {
		logger.Fatal("Failed to start watcher", zap.Error(err))
	}
	defer w.Stop()
	w.SyncExistingFiles()
	logger.Info("watching", zap.Strings("directories", w.Directories()), zap.String("output_dir", cfg.Watch.OutputDir))
	<-ctx.Done()
	logger.Info("Shutting down...")
}

func printWatchUsage() {
	fmt.Println("Usage: clausewise watch <run|add|remove|list> [path]")
	fmt.Println("  clausewise watch run <dir>...    Watch directories locally and write reports")
	fmt.Println("  clausewise watch add <path>      Add directory to the server's watch list")
	fmt.Println("  clausewise watch remove <path>   Remove directory from the server's watch list")
	fmt.Println("  clausewise watch list            List the server's watched directories")
}

func printUsage() {
	fmt.Println(`clausewise - Legal document analysis

Usage:
  clausewise server [flags]              Start the HTTP server
  clausewise analyze [flags] <file>      Analyze a document
  clausewise summarize [flags] <file>    Summarize a document
  clausewise watch <run|add|remove|list> Watch directories for documents
  clausewise patterns [flags]            Print the pattern vocabulary as YAML
  clausewise version                     Show version
  clausewise help                        Show this help

Common Flags:
  --config string    Config file path (default: /usr/local/etc/clausewise/config.yaml, then ./config.yaml)
  --debug            Enable debug logging

Analyze Flags:
  --output string    Output format: text or json (default: text)

Summarize Flags:
  --kind string      extractive, abstractive, or focused (default: extractive)
  --sentences int    Sentences in an extractive summary
  --max-length int   Maximum words in an abstractive summary
  --min-length int   Minimum words in an abstractive summary
  --focus string     Comma-separated focus areas for focused summaries
  --output string    Output format: text or json (default: text)

Watch Flags:
  --server string      Server URL for add/remove/list (default: http://localhost:8080)
  --output-dir string  Report directory for watch run

Abstractive summaries use Gemini and read the API key from GEMINI_API_KEY
(or the variable named by summarizer.api_key_env). A .env file in the
working directory is loaded automatically.

Examples:
  clausewise server
  clausewise analyze contract.pdf
  clausewise analyze --output json nda.docx
  clausewise summarize --kind focused --focus parties,dates lease.pdf
  clausewise watch run ~/contracts --output-dir ~/reports
  clausewise watch add /path/to/contracts
  clausewise patterns > patterns.yaml`)
}
