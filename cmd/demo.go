// File: cmd/demo.go
package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xkilldash9x/ghosthand/api/schemas"
	"github.com/xkilldash9x/ghosthand/internal/cdpexec"
	"github.com/xkilldash9x/ghosthand/internal/dryrun"
	"github.com/xkilldash9x/ghosthand/internal/humanoid"
	"github.com/xkilldash9x/ghosthand/internal/observability"
)

var (
	demoURL      string
	demoHeadless bool
	demoDryRun   bool
)

// demoCmd drives a short scripted sequence through the engine so a
// behavior profile can be watched end to end: move, click, type, scroll,
// idle, then the derived behavior pattern.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted input sequence against a browser (or dry-run)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		logger := observability.GetLogger()

		if !cmd.Flags().Changed("url") {
			demoURL = cfg.Demo.URL
		}
		if !cmd.Flags().Changed("headless") {
			demoHeadless = cfg.Demo.Headless
		}
		if !cmd.Flags().Changed("dry-run") {
			demoDryRun = cfg.Demo.DryRun
		}

		var executor humanoid.Executor
		if demoDryRun {
			executor = dryrun.New(logger)
		} else {
			tabCtx, cleanup, err := newBrowserTab(ctx, demoURL, demoHeadless)
			if err != nil {
				return fmt.Errorf("demo: starting browser: %w", err)
			}
			defer cleanup()
			executor = cdpexec.New(tabCtx, logger)
		}

		sim, err := humanoid.New(humanoid.Options{
			Delays: cfg.DelayProfile(),
			Motion: cfg.MotionProfile(),
			Screen: cfg.Geometry(),
		}, logger, executor)
		if err != nil {
			return err
		}

		return runDemoScript(ctx, sim, logger)
	},
}

// runDemoScript is the smoke sequence: each public action once.
func runDemoScript(ctx context.Context, sim *humanoid.Simulator, logger *zap.Logger) error {
	logger.Info("Demo: moving pointer")
	if err := sim.MoveTo(ctx, 500, 300); err != nil {
		return err
	}

	logger.Info("Demo: clicking")
	if err := sim.Click(ctx, humanoid.ClickOptions{At: &schemas.Point{X: 600, Y: 400}}); err != nil {
		return err
	}

	logger.Info("Demo: typing")
	if err := sim.TypeText(ctx, "Hello, World!", humanoid.TypeOptions{
		ErrorProb:      0.01,
		CorrectionProb: 0.8,
	}); err != nil {
		return err
	}

	logger.Info("Demo: scrolling")
	if err := sim.Scroll(ctx, schemas.ScrollDown, 3, humanoid.ScrollOptions{}); err != nil {
		return err
	}

	logger.Info("Demo: idling")
	if err := sim.Idle(ctx, 2*time.Second, 3*time.Second); err != nil {
		return err
	}

	pattern := sim.BehaviorPattern()
	logger.Info("Demo: behavior pattern",
		zap.Int("total_actions", pattern.TotalActions),
		zap.Int("history_length", pattern.HistoryLength),
		zap.Float64("average_speed_px_s", pattern.AverageSpeed),
		zap.Time("last_action", pattern.LastActionTime))
	return nil
}

// newBrowserTab launches a browser and navigates a fresh tab to url.
func newBrowserTab(ctx context.Context, url string, headless bool) (context.Context, func(), error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", headless),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	tabCtx, cancelTab := chromedp.NewContext(allocCtx)

	cleanup := func() {
		cancelTab()
		cancelAlloc()
	}
	if err := chromedp.Run(tabCtx, chromedp.Navigate(url)); err != nil {
		cleanup()
		return nil, nil, err
	}
	return tabCtx, cleanup, nil
}

func init() {
	demoCmd.Flags().StringVar(&demoURL, "url", "about:blank", "page to open before the sequence runs")
	demoCmd.Flags().BoolVar(&demoHeadless, "headless", true, "run the browser headless")
	demoCmd.Flags().BoolVar(&demoDryRun, "dry-run", false, "log primitives instead of driving a browser")
	rootCmd.AddCommand(demoCmd)
}
