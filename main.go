package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/halvorsen-dev/pathtracer/pkg/camera"
	"github.com/halvorsen-dev/pathtracer/pkg/core"
	"github.com/halvorsen-dev/pathtracer/pkg/encode"
	"github.com/halvorsen-dev/pathtracer/pkg/integrator"
	"github.com/halvorsen-dev/pathtracer/pkg/progress"
	"github.com/halvorsen-dev/pathtracer/pkg/scene"
	"github.com/halvorsen-dev/pathtracer/pkg/tile"
)

// Hard-coded render configuration: resolution, sampling, and recursion
// depth for the default scene.
const (
	imageWidth      = 960
	imageHeight     = 540
	samplesPerPixel = 64
	maxDepth        = 12
	numWorkers      = tile.DefaultWorkers
	tileSize        = tile.DefaultSize
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: pathtracer <output-filename>")
		os.Exit(1)
	}

	outputPath := withBMPExtension(os.Args[1])

	fmt.Println("Starting path tracer...")
	startTime := time.Now()

	if err := run(outputPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render completed in %v\n", time.Since(startTime))
	fmt.Printf("Saved to %s\n", outputPath)
}

// withBMPExtension appends ".bmp" to path if it doesn't already end in it.
func withBMPExtension(path string) string {
	if strings.HasSuffix(path, ".bmp") {
		return path
	}
	return path + ".bmp"
}

func run(outputPath string) error {
	aspectRatio := float64(imageWidth) / float64(imageHeight)

	scn, err := scene.NewDefaultScene(aspectRatio)
	if err != nil {
		return err
	}
	scn.Build(rand.New(rand.NewSource(time.Now().UnixNano())))

	pixels := render(scn)

	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return encode.WriteBMP(f, pixels, imageWidth, imageHeight)
}

// render drives the tile scheduler over the image, each worker casting
// samplesPerPixel rays per pixel through the integrator and averaging
// them.
func render(scn *scene.Scene) []core.V4 {
	in := integrator.NewIntegrator(scn, maxDepth)

	pixels := make([]core.V4, imageWidth*imageHeight)
	tiles := tile.Partition(imageWidth, imageHeight, tileSize)
	prog := tile.NewProgress(len(tiles))

	scheduler := tile.NewScheduler(numWorkers)

	renderTile := func(t tile.Tile) {
		rng := rand.New(rand.NewSource(time.Now().UnixNano() + int64(t.X0)*31 + int64(t.Y0)))
		sampler := core.NewSampler(rng)

		for y := t.Y0; y < t.Y1; y++ {
			for x := t.X0; x < t.X1; x++ {
				pixels[y*imageWidth+x] = samplePixel(scn.Camera, in, x, y, rng, sampler)
			}
		}
	}

	bar, barErr := progress.NewBar()
	if barErr == nil {
		go bar.Watch(prog, 200*time.Millisecond)
		defer bar.Close()
	}

	scheduler.Run(tiles, renderTile, prog)
	return pixels
}

// samplePixel averages samplesPerPixel independent cast_ray calls with
// jittered sub-pixel positions and a uniformly sampled ray time, clamping
// the mean to [0, 1].
func samplePixel(cam *camera.Camera, in *integrator.Integrator, x, y int, rng *rand.Rand, sampler core.Sampler) core.V4 {
	var accum core.V4
	for s := 0; s < samplesPerPixel; s++ {
		u := (float64(x) + rng.Float64()) / float64(imageWidth)
		v := (float64(y) + rng.Float64()) / float64(imageHeight)

		timeStart, timeEnd := in.Scene.World.StartTime, in.Scene.World.EndTime
		rayTime := timeStart
		if timeEnd > timeStart {
			rayTime = timeStart + rng.Float64()*(timeEnd-timeStart)
		}

		ray := cam.GetRay(u, v, sampler)
		accum = accum.Add(in.CastRay(ray, in.MaxDepth, rayTime, sampler))
	}

	return accum.Multiply(1.0 / float64(samplesPerPixel)).Clamp(0, 1)
}
