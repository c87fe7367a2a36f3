// Command outline-points extracts outline points of the main silhouette of an image
// and saves sampled and simplified point sets as JSON.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/LdDl/outline-go/outline"
	"github.com/pkg/errors"
)

func main() {
	defaults := outline.DefaultConfig()
	inputImageName := flag.String("input", "", "Input image path, required")
	sampledName := flag.String("sampled", "outline_points.json", "Output JSON for sampled points")
	simplifiedName := flag.String("simplified", "outline_points_simplified.json", "Output JSON for simplified points")
	step := flag.Int("step", defaults.Step, "Take every n-th boundary point")
	eps := flag.Float64("eps", defaults.Epsilon, "RDP tolerance in pixels")
	threshold := flag.Uint("threshold", uint(defaults.Threshold), "Threshold value (0-255)")
	invert := flag.Bool("invert", defaults.Invert, "Invert grayscale before thresholding (dark outline on light background)")
	closeKernel := flag.Int("close-kernel", defaults.CloseKernel, "Kernel size of morphological closing")
	closeIterations := flag.Int("close-iterations", defaults.CloseIterations, "Iterations of morphological closing, 0 disables it")
	seed := flag.Uint64("seed", 0, "Seed for size hints, 0 uses process-wide generator")
	visualizeName := flag.String("visualize", "", "Optional PNG path for four-panel comparison")
	jcodeName := flag.String("jcode", "", "Optional path for plotter JCode of simplified outline")
	verbose := flag.Bool("verbose", false, "Log pipeline stages to stderr")
	flag.Parse()

	if *inputImageName == "" {
		failf("Please specify an input image")
	}
	if *threshold > 255 {
		failf("threshold must be in range 0-255, got %d", *threshold)
	}
	if *verbose {
		outline.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfg := outline.Config{
		Step:            *step,
		Epsilon:         *eps,
		Threshold:       uint8(*threshold),
		Invert:          *invert,
		CloseKernel:     *closeKernel,
		CloseIterations: *closeIterations,
	}
	var sizes outline.SizeSource
	if *seed != 0 {
		sizes = outline.NewSeededSizeSource(*seed)
	}
	pipeline, err := outline.NewPipeline(cfg, sizes)
	if err != nil {
		failE(err)
	}

	res, mask, img, err := pipeline.RunImage(*inputImageName)
	if err != nil {
		failE(err)
	}

	if err := outline.SaveResult(res, *sampledName, *simplifiedName); err != nil {
		failE(errors.Wrap(err, "save stage"))
	}
	fmt.Printf("Saved %d points to %s\n", len(res.Sampled), *sampledName)
	fmt.Printf("Saved %d simplified points to %s (EPS=%v)\n", len(res.Simplified), *simplifiedName, res.Epsilon)

	if *visualizeName != "" {
		if err := outline.SaveComparison(*visualizeName, img, mask, res); err != nil {
			failE(errors.Wrap(err, "visualize stage"))
		}
		fmt.Printf("Saved comparison to %s\n", *visualizeName)
	}

	if *jcodeName != "" {
		if err := outline.SaveJCode(*jcodeName, res, mask.Bounds(), outline.DefaultPlotConfig()); err != nil {
			failE(errors.Wrap(err, "jcode stage"))
		}
		fmt.Printf("Exported JCode to %s\n", *jcodeName)
	}
	fmt.Println(res.Summary())
}

func failf(f string, args ...any) {
	fmt.Printf(f+"\n", args...)
	os.Exit(1)
}

func failE(err error) {
	fmt.Println("Fatal:", err)
	os.Exit(1)
}
