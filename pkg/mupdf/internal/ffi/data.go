package ffi

// Data records copied out of native structures during a walk. Once
// returned they hold no native references and never need dropping.

// Link is one hyperlink region on a page.
type Link struct {
	Bounds Rect
	URI    string
}

// Outline is one entry of the document outline tree.
type Outline struct {
	Title  string
	URI    string
	Page   Location
	X, Y   float32
	IsOpen bool
	Down   []Outline
}

// TextBlockKind discriminates text blocks from image blocks in a
// structured text page.
type TextBlockKind int

const (
	TextBlockText  TextBlockKind = 0
	TextBlockImage TextBlockKind = 1
)

// TextChar is a single placed character.
type TextChar struct {
	Rune     rune
	Origin   Point
	Quad     Quad
	Size     float32
	FontName string
}

// TextLine is one line of placed characters.
type TextLine struct {
	WMode int
	Dir   Point
	BBox  Rect
	Chars []TextChar
}

// TextBlock is one block of a structured text page. Lines is populated
// for text blocks, Transform for image blocks.
type TextBlock struct {
	Kind      TextBlockKind
	BBox      Rect
	Lines     []TextLine
	Transform Matrix
}

// StextFlags configure structured text extraction.
const (
	StextPreserveLigatures  = 1 << 0
	StextPreserveWhitespace = 1 << 1
	StextPreserveImages     = 1 << 2
	StextInhibitSpaces      = 1 << 3
	StextDehyphenate        = 1 << 4
	StextPreserveSpans      = 1 << 5
)

// PDFWriteOptions mirror the native document save options.
type PDFWriteOptions struct {
	Incremental      bool
	Pretty           bool
	ASCII            bool
	Compress         bool
	CompressImages   bool
	CompressFonts    bool
	Decompress       bool
	Garbage          int
	Linearize        bool
	Clean            bool
	Sanitize         bool
	Appearance       bool
	Encrypt          int
	DontRegenerateID bool
	Permissions      int
	OwnerPassword    string
	UserPassword     string
}

// Permission selects a document permission to test, using the native
// single-character encoding.
type Permission rune

const (
	PermissionPrint    Permission = 'p'
	PermissionCopy     Permission = 'c'
	PermissionEdit     Permission = 'e'
	PermissionAnnotate Permission = 'n'
)

// LineCap styles for stroke ends.
type LineCap int32

const (
	LineCapButt     LineCap = 0
	LineCapRound    LineCap = 1
	LineCapSquare   LineCap = 2
	LineCapTriangle LineCap = 3
)

// LineJoin styles for stroke corners.
type LineJoin int32

const (
	LineJoinMiter    LineJoin = 0
	LineJoinRound    LineJoin = 1
	LineJoinBevel    LineJoin = 2
	LineJoinMiterXPS LineJoin = 3
)

// ColorParams tune color conversion and rendering.
type ColorParams struct {
	RI  uint8
	BP  uint8
	OP  uint8
	OPM uint8
}

// DefaultColorParams matches the native defaults, relative colorimetric
// intent with black point compensation.
var DefaultColorParams = ColorParams{RI: 1, BP: 1}

// PathWalker receives the commands of a path, decomposed to the four
// basic operators.
type PathWalker interface {
	MoveTo(x, y float32)
	LineTo(x, y float32)
	CurveTo(cx1, cy1, cx2, cy2, ex, ey float32)
	ClosePath()
}
