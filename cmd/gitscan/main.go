// Package main implements the gitscan CLI, an opinionated pre-commit
// safety advisor. It inspects repository state, flags risky actions and
// risky staged content, and reports through the exit code. It never
// mutates the repository.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/gitscan/internal/aggregate"
	"github.com/fyrsmithlabs/gitscan/internal/config"
	"github.com/fyrsmithlabs/gitscan/internal/gitio"
	"github.com/fyrsmithlabs/gitscan/internal/logging"
	"github.com/fyrsmithlabs/gitscan/internal/render"
	"github.com/fyrsmithlabs/gitscan/internal/rules"
	"github.com/fyrsmithlabs/gitscan/internal/secrets"
	"github.com/fyrsmithlabs/gitscan/internal/snapshot"
	"github.com/fyrsmithlabs/gitscan/internal/tui"
)

var version = "dev"

var (
	flagOverride    bool
	flagStageAll    bool
	flagForcePush   bool
	flagStash       bool
	flagDeep        bool
	flagInteractive bool
	flagDebug       bool
	flagFormat      string
	flagConfig      string
)

// exitCode carries the scan verdict from RunE to main; cobra errors only
// cover fatal failures, which all map to exit 1.
var exitCode = aggregate.ExitOK

var rootCmd = &cobra.Command{
	Use:   "gitscan",
	Short: "Pre-commit safety advisor for git working trees",
	Long: `gitscan inspects the current repository and warns about risky actions
(broad staging, force push, rebase, stashing) and risky content (tracked
junk files, likely secrets in staged files). It only ever reads.

Exit codes: 0 clean or overridden, 1 not a repository, 2 secrets staged.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runScan,
}

func init() {
	rootCmd.Flags().BoolVar(&flagOverride, "i-know-what-im-doing", false, "acknowledge risk: Block findings no longer fail the run (they are still shown)")
	rootCmd.Flags().BoolVar(&flagStageAll, "stage-all", false, "signal that you are about to stage everything (git add .)")
	rootCmd.Flags().BoolVar(&flagForcePush, "force-push", false, "signal that you intend to force-push")
	rootCmd.Flags().BoolVar(&flagStash, "stash", false, "signal that you intend to stash")
	rootCmd.Flags().BoolVar(&flagDeep, "deep", false, "also run the gitleaks pattern set on staged content")
	rootCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "browse findings in a read-only TUI (requires a terminal)")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "debug logging")
	rootCmd.Flags().StringVarP(&flagFormat, "format", "f", "text", "output format (text, json)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "config file (default: <repo>/.gitscan.yaml, then ~/.config/gitscan/config.yaml)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, snapshot.ErrNotARepository) {
			fmt.Fprintln(os.Stderr, "gitscan: not a git repository")
		} else {
			fmt.Fprintln(os.Stderr, "gitscan:", err)
		}
		os.Exit(aggregate.ExitNotARepository)
	}
	os.Exit(exitCode)
}

func runScan(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("working directory: %w", err)
	}

	root, branch, err := gitio.Discover(cwd)
	if err != nil {
		return err
	}

	cfg, err := config.Load(flagConfig, root)
	if err != nil {
		return err
	}
	if flagDebug {
		cfg.Log.Level = "debug"
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck // stderr sync failures are harmless

	src := gitio.NewSource(gitio.NewExecRunner(root))

	statusText, err := src.StatusText(ctx)
	if err != nil {
		return err
	}
	tracked, err := src.TrackedFiles(ctx)
	if err != nil {
		return err
	}
	gitDir, err := src.GitDir(ctx)
	if err != nil {
		return err
	}
	if !filepath.IsAbs(gitDir) {
		gitDir = filepath.Join(root, gitDir)
	}
	rebase, merge := gitio.Markers(gitDir)

	snap := snapshot.Build(snapshot.BuildInput{
		StatusText:       statusText,
		Tracked:          tracked,
		IgnorePatterns:   gitio.ReadIgnorePatterns(root),
		Root:             root,
		Branch:           branch,
		RebaseInProgress: rebase,
		MergeInProgress:  merge,
		Context: snapshot.ActionContext{
			StageAll:  flagStageAll,
			ForcePush: flagForcePush,
			Stash:     flagStash,
			Override:  flagOverride,
		},
	})
	logger.Debug("snapshot built",
		zap.String("root", snap.Root),
		zap.String("branch", snap.Branch),
		zap.Int("staged", len(snap.Staged)),
		zap.Int("modified", len(snap.Modified)),
		zap.Int("untracked", len(snap.Untracked)),
		zap.Bool("rebase_in_progress", snap.RebaseInProgress),
	)

	scannerCfg := cfg.ScannerConfig()
	if allow, err := secrets.LoadAllowlists(root, cfg.Secrets.UserAllowlist); err != nil {
		// A broken allowlist must not suppress detection: scan without it.
		logger.Warn("ignoring allowlist", zap.Error(err))
	} else {
		allow.Apply(scannerCfg)
	}
	scanner, err := secrets.New(scannerCfg)
	if err != nil {
		// Invalid user-supplied rules fall back to the built-in table with
		// no allowlist: detection narrows, never widens or turns off.
		logger.Warn("invalid secret rule configuration, using built-in rules", zap.Error(err))
		scanner = secrets.MustNew(nil)
	}

	staged := src.StagedContents(ctx, snap.StagedPaths())
	set := rules.DefaultSet(rules.Options{
		Scanner: scanner,
		Staged:  staged,
		Junk:    cfg.JunkTable(),
		Deep:    flagDeep || cfg.Deep,
	})

	report := aggregate.Run(snap, set)
	logger.Debug("scan complete",
		zap.Int("findings", len(report.Findings)),
		zap.Int("exit_code", report.ExitCode),
		zap.Bool("overridden", report.Overridden),
	)

	renderer := render.New()
	switch flagFormat {
	case "json":
		if err := renderer.JSON(os.Stdout, snap, report); err != nil {
			return err
		}
	default:
		renderer.Text(os.Stdout, snap, report)
	}

	if flagInteractive && len(report.Findings) > 0 {
		if isTerminal(os.Stdin) && isTerminal(os.Stdout) {
			if err := tui.Run(report.Findings); err != nil {
				logger.Warn("interactive browser failed", zap.Error(err))
			}
		}
		// Not a terminal: the plain summary above already covers it.
	}

	exitCode = report.ExitCode
	return nil
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
