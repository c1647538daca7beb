package renderer

import (
	"runtime"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// TileTask represents one tile of one pass for the worker pool
type TileTask struct {
	Tile       *Tile
	Jitter     mgl64.Vec2     // sub-pixel offset for this pass
	SeedBase   float64        // RNG seed base for this pass
	TaskID     int            // for deterministic result ordering
	PixelStats [][]PixelStats // shared stats array to write into
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TaskID int
	Stats  RenderStats
}

// WorkerPool renders tiles in parallel. Invocations are independent: the
// only shared mutable state is the pixel stats array, and tile bounds are
// disjoint, so workers need no locking.
type WorkerPool struct {
	raytracer   *Raytracer
	taskQueue   chan TileTask
	resultQueue chan TileResult
	numWorkers  int
	wg          sync.WaitGroup
}

// NewWorkerPool creates a worker pool for the raytracer
func NewWorkerPool(raytracer *Raytracer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	config := raytracer.Config()
	maxTiles := ((config.Width + config.TileSize - 1) / config.TileSize) *
		((config.Height + config.TileSize - 1) / config.TileSize)

	return &WorkerPool{
		raytracer:   raytracer,
		taskQueue:   make(chan TileTask, maxTiles),
		resultQueue: make(chan TileResult, maxTiles),
		numWorkers:  numWorkers,
	}
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

// Stop closes the task queue, waits for workers to drain it, then closes
// the result queue
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask submits a tile task to the worker pool
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed tile result
func (wp *WorkerPool) GetResult() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (wp *WorkerPool) run() {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		stats := wp.raytracer.RenderBounds(task.Tile.Bounds, task.PixelStats, task.Jitter, task.SeedBase)
		wp.resultQueue <- TileResult{TaskID: task.TaskID, Stats: stats}
	}
}
