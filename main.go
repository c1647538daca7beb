package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/hmartin/go-shader-tracer/pkg/core"
	"github.com/hmartin/go-shader-tracer/pkg/publish"
	"github.com/hmartin/go-shader-tracer/pkg/renderer"
	"github.com/hmartin/go-shader-tracer/pkg/scene"
	"github.com/hmartin/go-shader-tracer/web/server"
)

func main() {
	sceneName := flag.String("scene", "cornell", "Scene to render: 'cornell' or 'furnace'")
	width := flag.Int("width", 400, "Image width in pixels")
	height := flag.Int("height", 400, "Image height in pixels")
	passes := flag.Int("passes", 64, "Number of accumulation passes (one sample per pixel each)")
	workers := flag.Int("workers", 0, "Number of render workers (0 = CPU count)")
	outDir := flag.String("out", "output", "Output directory")
	serve := flag.Bool("serve", false, "Start the web server instead of rendering")
	port := flag.Int("port", 8080, "Web server port")
	upload := flag.Bool("upload", false, "Upload the render and thumbnail to S3 after saving")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Shader Tracer")
		fmt.Println("Usage: shader-tracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		for _, name := range scene.Names() {
			fmt.Printf("  %s\n", name)
		}
		fmt.Println()
		fmt.Println("Output will be saved to <out>/<scene>/render_<timestamp>.png")
		return
	}

	// Publish settings come from the environment; a local .env is optional
	_ = godotenv.Load()

	logger := renderer.NewDefaultLogger()

	if *serve {
		srv := server.NewServer(*port, logger)
		if err := srv.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	config := renderer.DefaultConfig(*width, *height)
	config.Passes = *passes
	config.NumWorkers = *workers

	if err := run(*sceneName, config, *outDir, *upload, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(sceneName string, config renderer.Config, outDir string, upload bool, logger core.Logger) error {
	selected, err := createScene(sceneName)
	if err != nil {
		return err
	}

	logger.Printf("Rendering %s at %dx%d, %d passes...\n",
		selected.Name, config.Width, config.Height, config.Passes)

	cameraConfig := selected.Camera
	cameraConfig.AspectRatio = float64(config.Width) / float64(config.Height)
	camera := renderer.NewCamera(cameraConfig)

	raytracer := renderer.NewRaytracer(selected.World, camera, config)
	progressive := renderer.NewProgressiveRenderer(raytracer, logger)

	// Ctrl-C stops after the current pass and saves what has accumulated
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	startTime := time.Now()
	img, stats, err := progressive.Render(ctx, nil)
	if err != nil {
		logger.Printf("Render interrupted: %v, saving partial image\n", err)
	}
	logger.Printf("Render completed in %v, %.1f samples per pixel\n",
		time.Since(startTime), stats.AverageSamples)

	filename := outputPath(outDir, selected.Name, time.Now())
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	data, err := publish.EncodePNG(img)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to save render: %w", err)
	}
	logger.Printf("Render saved as %s\n", filename)

	thumb := publish.Thumbnail(img)
	thumbData, err := publish.EncodePNG(thumb)
	if err != nil {
		return err
	}
	thumbFile := thumbPath(filename)
	if err := os.WriteFile(thumbFile, thumbData, 0644); err != nil {
		return fmt.Errorf("failed to save thumbnail: %w", err)
	}

	if upload {
		publisher, err := publish.New(publish.ConfigFromEnv())
		if err != nil {
			return err
		}
		// Uploads run even after an interrupted render
		uploadCtx := context.Background()
		if err := publisher.UploadPNG(uploadCtx, filename, img); err != nil {
			return err
		}
		if err := publisher.UploadPNG(uploadCtx, thumbFile, thumb); err != nil {
			return err
		}
		logger.Printf("Uploaded %s and thumbnail\n", filename)
	}

	return nil
}

// createScene creates a scene based on the scene name
func createScene(sceneName string) (*scene.Scene, error) {
	return scene.New(sceneName)
}

// outputPath builds the timestamped render filename for a scene
func outputPath(outDir, sceneName string, t time.Time) string {
	return filepath.Join(outDir, sceneName, fmt.Sprintf("render_%s.png", t.Format("20060102_150405")))
}

// thumbPath derives the thumbnail filename from the render filename
func thumbPath(renderPath string) string {
	return strings.TrimSuffix(renderPath, ".png") + "_thumb.png"
}
