package cli

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/docdex-cli/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild artifacts whenever the input folder changes",
	Long: `Runs an initial build, then watches the input folder and re-runs a
FULL build whenever files change. There is no incremental processing:
every rebuild reprocesses the entire input set, so artifacts stay
deterministic. Rebuilds are throttled to avoid thrashing on bursts of
file events.`,
	RunE: runWatch,
}

var (
	watchIn        string
	watchOut       string
	watchChunkSize int
	watchOverlap   int
)

// rebuildInterval caps how often file events may trigger a rebuild.
const rebuildInterval = 2 * time.Second

func init() {
	watchCmd.Flags().StringVar(&watchIn, "in", "", "Input folder containing documents")
	watchCmd.Flags().StringVar(&watchOut, "out", "", "Output folder for artifacts")
	watchCmd.Flags().IntVar(&watchChunkSize, "chunk-size", 0, "Chunk size in words (default from config, 800)")
	watchCmd.Flags().IntVar(&watchOverlap, "overlap", -1, "Chunk overlap in words (default from config, 120)")
	_ = watchCmd.MarkFlagRequired("in")
	_ = watchCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	if err := rebuild(ctx, cmd); err != nil {
		return fmt.Errorf("watch failed: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch failed: %w", err)
	}
	defer watcher.Close()

	if err := watchRecursive(watcher, watchIn); err != nil {
		return fmt.Errorf("watch failed: %w", err)
	}

	limiter := rate.NewLimiter(rate.Every(rebuildInterval), 1)
	cmd.Printf("Watching %s (Ctrl-C to stop)\n", watchIn)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			logger.Debug("Change detected: %s %s", event.Op, event.Name)

			// New subdirectories must join the watch set before
			// their contents produce events we would miss.
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := watchRecursive(watcher, event.Name); err != nil {
						logger.Warn("Cannot watch %s: %v", event.Name, err)
					}
				}
			}

			if err := limiter.Wait(ctx); err != nil {
				return nil
			}
			drainEvents(watcher)

			if err := rebuild(ctx, cmd); err != nil {
				// A failed rebuild leaves the previous artifacts in
				// place; keep watching.
				logger.Warn("Rebuild failed: %v", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}

// rebuild runs one full build and writes the artifacts.
func rebuild(ctx context.Context, cmd *cobra.Command) error {
	result, err := runPipeline(ctx, watchIn, watchChunkSize, watchOverlap)
	if err != nil {
		return err
	}
	if err := writeArtifacts(ctx, result, watchOut, false); err != nil {
		return err
	}
	cmd.Printf("Rebuilt: %d cards, %d chunks, %d skipped\n",
		result.Manifest.TotalCards, result.Manifest.TotalChunks,
		len(result.Manifest.SkippedFiles))
	return nil
}

// watchRecursive adds root and all its subdirectories to the watcher.
func watchRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}

// relevant filters out chmod-only events.
func relevant(event fsnotify.Event) bool {
	return event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Write) ||
		event.Op.Has(fsnotify.Remove) || event.Op.Has(fsnotify.Rename)
}

// drainEvents discards events queued during the throttle wait so one
// burst of changes triggers one rebuild.
func drainEvents(watcher *fsnotify.Watcher) {
	for {
		select {
		case <-watcher.Events:
		default:
			return
		}
	}
}
