package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fitzgo/mupdf-go/pkg/mupdf"
)

// renderProfile is the YAML shape accepted by draw -profile. Flags given
// on the command line win over profile values.
type renderProfile struct {
	DPI        float32 `yaml:"dpi"`
	Rotate     float32 `yaml:"rotate"`
	Colorspace string  `yaml:"colorspace"`
	Alpha      bool    `yaml:"alpha"`
	Format     string  `yaml:"format"`
	Workers    int     `yaml:"workers"`
}

func loadProfile(path string) (renderProfile, error) {
	p := renderProfile{DPI: 72, Colorspace: "rgb", Format: "png"}
	if path == "" {
		return p, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return p, err
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("profile %s: %w", path, err)
	}
	if p.DPI <= 0 {
		p.DPI = 72
	}
	if p.Colorspace == "" {
		p.Colorspace = "rgb"
	}
	if p.Format == "" {
		p.Format = "png"
	}
	return p, nil
}

func runDraw(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("draw", flag.ExitOnError)
	pages := fs.String("pages", "", "1-based page range, such as 1-3 or 2; empty means all")
	dpi := fs.Float64("dpi", 0, "render resolution; overrides the profile")
	out := fs.String("out", ".", "output directory")
	profilePath := fs.String("profile", "", "YAML render profile")
	password := fs.String("password", "", "document password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("draw: expected exactly one file")
	}

	profile, err := loadProfile(*profilePath)
	if err != nil {
		return err
	}
	if *dpi > 0 {
		profile.DPI = float32(*dpi)
	}

	c, err := openContext()
	if err != nil {
		return err
	}
	defer c.Close()

	doc, err := mupdf.OpenDocument(c, fs.Arg(0))
	if err != nil {
		return err
	}
	defer doc.Drop()

	if err := authenticate(doc, *password); err != nil {
		return err
	}

	count, err := doc.PageCount()
	if err != nil {
		return err
	}
	pageList, err := parsePageRange(*pages, count)
	if err != nil {
		return err
	}

	cs, err := colorspaceByName(c, profile.Colorspace)
	if err != nil {
		return err
	}
	format, err := saveFormatByName(profile.Format)
	if err != nil {
		return err
	}

	ctm := mupdf.Scale(profile.DPI/72, profile.DPI/72)
	if profile.Rotate != 0 {
		ctm = ctm.Concat(mupdf.Rotate(profile.Rotate))
	}

	pixmaps, err := mupdf.RenderPages(ctx, c, doc, mupdf.RenderOptions{
		Pages:      pageList,
		Matrix:     ctm,
		Colorspace: cs,
		Alpha:      profile.Alpha,
		Workers:    profile.Workers,
	})
	if err != nil {
		return err
	}

	base := strings.TrimSuffix(filepath.Base(fs.Arg(0)), filepath.Ext(fs.Arg(0)))
	for i, px := range pixmaps {
		name := filepath.Join(*out, fmt.Sprintf("%s-%03d.%s", base, pageList[i]+1, profile.Format))
		err := px.SaveAs(name, format)
		px.Drop()
		if err != nil {
			return err
		}
		fmt.Println(name)
	}
	return nil
}

// parsePageRange expands "2" or "1-3" into zero-based page numbers.
func parsePageRange(s string, count int) ([]int, error) {
	if s == "" {
		pages := make([]int, count)
		for i := range pages {
			pages[i] = i
		}
		return pages, nil
	}
	first, last := s, s
	if i := strings.IndexByte(s, '-'); i >= 0 {
		first, last = s[:i], s[i+1:]
	}
	lo, err := strconv.Atoi(first)
	if err != nil {
		return nil, fmt.Errorf("bad page range %q", s)
	}
	hi, err := strconv.Atoi(last)
	if err != nil {
		return nil, fmt.Errorf("bad page range %q", s)
	}
	if lo < 1 || hi > count || lo > hi {
		return nil, fmt.Errorf("page range %q outside 1-%d", s, count)
	}
	pages := make([]int, 0, hi-lo+1)
	for p := lo; p <= hi; p++ {
		pages = append(pages, p-1)
	}
	return pages, nil
}

func colorspaceByName(c *mupdf.Context, name string) (*mupdf.Colorspace, error) {
	switch name {
	case "gray":
		return mupdf.DeviceGray(c)
	case "rgb":
		return mupdf.DeviceRGB(c)
	case "cmyk":
		return mupdf.DeviceCMYK(c)
	}
	return nil, fmt.Errorf("unknown colorspace %q", name)
}

func saveFormatByName(name string) (mupdf.SaveFormat, error) {
	switch name {
	case "png":
		return mupdf.SavePNG, nil
	case "pnm":
		return mupdf.SavePNM, nil
	case "pam":
		return mupdf.SavePAM, nil
	case "psd":
		return mupdf.SavePSD, nil
	case "ps":
		return mupdf.SavePS, nil
	}
	return 0, fmt.Errorf("unknown output format %q", name)
}
