// Command conicplot solves one conic section, prints its report and
// optionally renders the plane to a PNG file.
//
//	conicplot -kind ellipse -a 5 -b 3 -out ellipse.png
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"conic-visualizer/internal/geometry"
	"conic-visualizer/internal/render"
	"conic-visualizer/internal/report"
	"conic-visualizer/internal/session"

	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(os.Args[1:], os.Stdout, logger); err != nil {
		logger.Fatal("conicplot failed", zap.Error(err))
	}
}

type options struct {
	kind   geometry.Kind
	params geometry.Params
	out    string
	width  int
	height int
	scale  float64
	lang   string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("conicplot", flag.ContinueOnError)
	fs.SetOutput(stderr)

	kind := fs.String("kind", "parabola", "conic kind: parabola, ellipse or hyperbola")
	a := fs.Float64("a", 0, "parabola A coefficient, or semi-axis a")
	b := fs.Float64("b", 0, "parabola B coefficient, or semi-axis b")
	c := fs.Float64("c", 0, "parabola C coefficient")
	cx := fs.Float64("cx", 0, "center x (ellipse, hyperbola)")
	cy := fs.Float64("cy", 0, "center y (ellipse, hyperbola)")
	out := fs.String("out", "", "write the rendered plane to this PNG file")
	width := fs.Int("width", 800, "image width in pixels")
	height := fs.Int("height", 600, "image height in pixels")
	scale := fs.Float64("scale", session.DefaultScale, "pixels per plot unit (0.5 to 100000)")
	lang := fs.String("lang", "en", "report language (en, pt-BR)")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	k, err := geometry.ParseKind(*kind)
	if err != nil {
		return options{}, err
	}

	// Unset parameters take the defaults of the input form.
	params := geometry.DefaultParams(k)
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "a":
			params.A = *a
		case "b":
			params.B = *b
		case "c":
			params.C = *c
		case "cx":
			params.CenterX = *cx
		case "cy":
			params.CenterY = *cy
		}
	})

	return options{
		kind:   k,
		params: params,
		out:    *out,
		width:  *width,
		height: *height,
		scale:  *scale,
		lang:   *lang,
	}, nil
}

func run(args []string, stdout io.Writer, logger *zap.Logger) error {
	opts, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}

	d, err := geometry.Solve(opts.kind, opts.params)
	if err != nil {
		return fmt.Errorf("solve %s: %w", opts.kind, err)
	}
	logger.Debug("conic solved",
		zap.Stringer("kind", d.Kind()),
		zap.Float64("eccentricity", d.Eccentricity()),
	)

	sample := geometry.Verify(d)
	if err := report.Write(stdout, d, sample, report.ParseLanguage(opts.lang)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if opts.out == "" {
		return nil
	}
	return writePNG(opts, d, logger)
}

func writePNG(opts options, d geometry.Descriptor, logger *zap.Logger) (err error) {
	renderer, err := render.New()
	if err != nil {
		return err
	}
	defer renderer.Close()

	f, err := os.Create(opts.out)
	if err != nil {
		return fmt.Errorf("create %s: %w", opts.out, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	vp := session.Viewport{Scale: opts.scale}
	if err := renderer.PNG(f, d, vp, opts.width, opts.height); err != nil {
		return fmt.Errorf("render %s: %w", opts.out, err)
	}

	logger.Info("plot written",
		zap.String("path", opts.out),
		zap.Int("width", opts.width),
		zap.Int("height", opts.height),
	)
	return nil
}
