package mupdf

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/fitzgo/mupdf-go/pkg/mupdf/internal/ffi"
)

// RenderOptions configure RenderPages.
type RenderOptions struct {
	// Pages are the zero-based pages to render. Nil means every page.
	Pages []int

	// Matrix transforms page space to pixels. The zero value renders
	// at 1:1 (72 dpi).
	Matrix Matrix

	// Colorspace of the output pixmaps. Nil means device RGB.
	Colorspace *Colorspace

	// Alpha renders onto a transparent background instead of white.
	Alpha bool

	// Workers caps the number of rendering goroutines. Zero means
	// GOMAXPROCS.
	Workers int
}

// RenderPages rasterizes pages of doc in parallel. Display lists are
// recorded sequentially on the base context (page loading is not
// thread-safe), then rasterized on a fan-out of cloned contexts, one
// per worker. Cancellation of ctx aborts in-flight renders through
// bound cookies.
//
// The returned pixmaps are owned by the base context c and indexed
// like opts.Pages.
func RenderPages(ctx context.Context, c *Context, doc *Document, opts RenderOptions) ([]*Pixmap, error) {
	if _, err := c.handle(); err != nil {
		return nil, err
	}

	var err error
	pages := opts.Pages
	if pages == nil {
		count, err := doc.PageCount()
		if err != nil {
			return nil, err
		}
		pages = make([]int, count)
		for i := range pages {
			pages[i] = i
		}
	}
	ctm := opts.Matrix
	if ctm == (Matrix{}) {
		ctm = Identity
	}
	cs := opts.Colorspace
	if cs == nil {
		cs, err = DeviceRGB(c)
		if err != nil {
			return nil, err
		}
	}

	// Phase 1: record every page into a display list on the base
	// context.
	lists := make([]*DisplayList, len(pages))
	defer func() {
		for _, dl := range lists {
			dl.Drop()
		}
	}()
	for i, pageNo := range pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pg, err := doc.LoadPage(pageNo)
		if err != nil {
			return nil, err
		}
		dl, err := pg.ToDisplayList(true)
		pg.Drop()
		if err != nil {
			return nil, err
		}
		lists[i] = dl
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(lists) {
		workers = len(lists)
	}
	if workers == 0 {
		return nil, nil
	}

	// Phase 2: rasterize on cloned contexts. The lists are immutable
	// now and the clones share the base's lock table, so concurrent
	// replays are safe.
	clones := make([]*Context, 0, workers)
	for w := 0; w < workers; w++ {
		clone, err := c.Clone()
		if err != nil {
			for _, cl := range clones {
				_ = cl.Close()
			}
			return nil, err
		}
		clones = append(clones, clone)
	}

	out := make([]*Pixmap, len(lists))
	indexes := make(chan int)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(indexes)
		for i := range lists {
			select {
			case indexes <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})
	for _, clone := range clones {
		clone := clone
		g.Go(func() error {
			defer clone.Close()
			for i := range indexes {
				px, err := renderList(gctx, clone, c, lists[i], ctm, cs, opts.Alpha)
				if err != nil {
					return err
				}
				out[i] = px
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		for _, px := range out {
			px.Drop()
		}
		return nil, err
	}
	return out, nil
}

// renderList rasterizes one display list on the clone context and
// hands the pixmap over to the owner context.
func renderList(ctx context.Context, clone, owner *Context, dl *DisplayList, ctm Matrix, cs *Colorspace, alpha bool) (*Pixmap, error) {
	fcl, err := clone.handle()
	if err != nil {
		return nil, err
	}
	bounds, err := dl.Bounds()
	if err != nil {
		return nil, err
	}
	bbox := bounds.Transform(ctm).Round()
	px, err := ffi.NewPixmap(fcl, cs.h, int(bbox.X0), int(bbox.Y0), int(bbox.Width()), int(bbox.Height()), alpha)
	if err != nil {
		return nil, remapError(err)
	}
	fail := func(err error) (*Pixmap, error) {
		px.Drop(fcl)
		return nil, err
	}
	if alpha {
		err = px.Clear(fcl)
	} else {
		err = px.ClearWithValue(fcl, 0xff)
	}
	if err != nil {
		return fail(remapError(err))
	}
	dev, err := ffi.NewDrawDevice(fcl, px, ffi.InfiniteIRect)
	if err != nil {
		return fail(remapError(err))
	}
	cookie, err := ffi.NewCookie(fcl)
	if err != nil {
		dev.Drop(fcl)
		return fail(remapError(err))
	}
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			cookie.Abort()
		case <-done:
		}
	}()
	runErr := dl.h.Run(fcl, dev, ctm.ffi(), ffi.InfiniteRect, cookie)
	close(done)
	closeErr := dev.Close(fcl)
	dev.Drop(fcl)
	cookie.Drop(fcl)
	if err := ctx.Err(); err != nil {
		return fail(err)
	}
	if runErr != nil {
		return fail(remapError(runErr))
	}
	if closeErr != nil {
		return fail(remapError(closeErr))
	}
	return newPixmap(owner, px), nil
}
