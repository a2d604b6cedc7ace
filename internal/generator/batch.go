package generator

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"
	"golang.org/x/sync/errgroup"
)

// Batch generates every object listed in a manifest. Objects that the
// manifest sends to the same file are generated together and rendered once.
// Each file runs the same single-threaded pipeline as Generator.RunFile with
// its own loader; only the number of files in flight is shared.
type Batch struct {
	NewLoader   func() Loader
	Log         logr.Logger
	Concurrency int
}

// fileJob is one output file and the objects rendered into it.
type fileJob struct {
	cfg     Config
	objects []string
}

// Run generates all manifest jobs, stopping at the first failure.
func (b *Batch) Run(ctx context.Context, base Config, m *Manifest) error {
	var (
		files  []*fileJob
		byPath = make(map[string]*fileJob)
	)
	for _, job := range m.Jobs() {
		cfg := base
		cfg.Object = job.Object
		cfg.Mode = job.Mode
		cfg.OutputFile = job.OutputFile
		cfg.PackageName = valueOr(base.PackageName, job.Mode)

		// Reject bad modes before anything is fetched.
		if _, err := cfg.SchemaLocator(); err != nil {
			return fmt.Errorf("manifest entry %s: %w", job.Object, err)
		}

		path := outputPath(cfg.OutputFile)
		if f, ok := byPath[path]; ok {
			f.objects = append(f.objects, job.Object)
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		f := &fileJob{cfg: cfg, objects: []string{job.Object}}
		byPath[path] = f
		files = append(files, f)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, b.Concurrency))
	for _, f := range files {
		g.Go(func() error {
			gen := &Generator{
				Loader: b.NewLoader(),
				Log:    b.Log,
				Stdout: io.Discard,
			}
			return gen.RunFile(ctx, f.cfg, f.objects...)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	b.Log.Info("Batch complete", "files", len(files), "objects", len(m.Jobs()))
	return nil
}
