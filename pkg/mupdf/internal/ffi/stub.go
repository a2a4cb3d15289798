//go:build !cgo || windows

package ffi

// Stub surface for builds without the native library. Every type and
// function of the cgo build exists here with the same signature;
// anything that can fail reports ErrNotBuilt, everything else reports
// zero values.

// Built reports whether the native library is linked into this binary.
const Built = false

// Version is the native library version string.
func Version() string { return "" }

type Context struct{}

func NewContext(maxStore uint64) (*Context, error)    { return nil, ErrNotBuilt }
func (c *Context) Clone() (*Context, error)           { return nil, ErrNotBuilt }
func (c *Context) IsBase() bool                       { return false }
func (c *Context) Drop()                              {}
func (c *Context) InstallWarningHandler(func(string)) {}
func (c *Context) ClearWarningHandler()               {}
func (c *Context) AdjustRectForStroke(Rect, *StrokeState, Matrix) (Rect, error) {
	return Rect{}, ErrNotBuilt
}

type Cookie struct{}

func NewCookie(*Context) (*Cookie, error)  { return nil, ErrNotBuilt }
func (k *Cookie) Abort()                   {}
func (k *Cookie) Aborted() bool            { return false }
func (k *Cookie) Progress() (done, max int) { return 0, 0 }
func (k *Cookie) Errors() int              { return 0 }
func (k *Cookie) Incomplete() bool         { return false }
func (k *Cookie) Drop(*Context)            {}

type Buffer struct{}

func NewBuffer(*Context, int) (*Buffer, error)              { return nil, ErrNotBuilt }
func NewBufferFromBytes(*Context, []byte) (*Buffer, error)  { return nil, ErrNotBuilt }
func NewBufferFromString(*Context, string) (*Buffer, error) { return nil, ErrNotBuilt }
func NewBufferFromBase64(*Context, string) (*Buffer, error) { return nil, ErrNotBuilt }
func (b *Buffer) Len(*Context) (int, error)                 { return 0, ErrNotBuilt }
func (b *Buffer) ReadAt(*Context, []byte, int) (int, error) { return 0, ErrNotBuilt }
func (b *Buffer) Write(*Context, []byte) (int, error)       { return 0, ErrNotBuilt }
func (b *Buffer) Bytes(*Context) ([]byte, error)            { return nil, ErrNotBuilt }
func (b *Buffer) Drop(*Context)                             {}

type Document struct{}

func OpenDocument(*Context, string) (*Document, error)                  { return nil, ErrNotBuilt }
func OpenDocumentFromBytes(*Context, *Buffer, string) (*Document, error) { return nil, ErrNotBuilt }
func RecognizeDocument(*Context, string) (bool, error)                  { return false, ErrNotBuilt }
func (d *Document) NeedsPassword(*Context) (bool, error)                { return false, ErrNotBuilt }
func (d *Document) AuthenticatePassword(*Context, string) (bool, error) { return false, ErrNotBuilt }
func (d *Document) HasPermission(*Context, Permission) (bool, error)    { return false, ErrNotBuilt }
func (d *Document) PageCount(*Context) (int, error)                     { return 0, ErrNotBuilt }
func (d *Document) Metadata(*Context, string) (string, error)           { return "", ErrNotBuilt }
func (d *Document) IsReflowable(*Context) (bool, error)                 { return false, ErrNotBuilt }
func (d *Document) Layout(*Context, float32, float32, float32) error    { return ErrNotBuilt }
func (d *Document) LoadPage(*Context, int) (*Page, error)               { return nil, ErrNotBuilt }
func (d *Document) ConvertToPDF(*Context, int, int, int, *Cookie) (*PDFDocument, error) {
	return nil, ErrNotBuilt
}
func (d *Document) ResolveLink(*Context, string) (Location, Point, error) {
	return Location{}, Point{}, ErrNotBuilt
}
func (d *Document) ResolveLinkDest(*Context, string) (LinkDest, error) {
	return LinkDest{}, ErrNotBuilt
}
func (d *Document) OutputIntent(*Context) (*Colorspace, error) { return nil, ErrNotBuilt }
func (d *Document) LoadOutline(*Context) ([]Outline, error)    { return nil, ErrNotBuilt }
func (d *Document) Drop(*Context)                              {}

type Page struct{}

func (pg *Page) Bound(*Context) (Rect, error) { return Rect{}, ErrNotBuilt }
func (pg *Page) ToPixmap(*Context, Matrix, *Colorspace, bool, bool) (*Pixmap, error) {
	return nil, ErrNotBuilt
}
func (pg *Page) ToSVG(*Context, Matrix, *Cookie) (string, error)     { return "", ErrNotBuilt }
func (pg *Page) ToTextPage(*Context, int) (*TextPage, error)         { return nil, ErrNotBuilt }
func (pg *Page) ToDisplayList(*Context, bool) (*DisplayList, error)  { return nil, ErrNotBuilt }
func (pg *Page) Run(*Context, *Device, Matrix, *Cookie) error        { return ErrNotBuilt }
func (pg *Page) RunContents(*Context, *Device, Matrix, *Cookie) error { return ErrNotBuilt }
func (pg *Page) RunAnnots(*Context, *Device, Matrix, *Cookie) error  { return ErrNotBuilt }
func (pg *Page) RunWidgets(*Context, *Device, Matrix, *Cookie) error { return ErrNotBuilt }
func (pg *Page) Links(*Context) ([]Link, error)                      { return nil, ErrNotBuilt }
func (pg *Page) Search(*Context, string, int) ([]Quad, error)        { return nil, ErrNotBuilt }
func (pg *Page) Drop(*Context)                                       {}

type Pixmap struct{}

func NewPixmap(*Context, *Colorspace, int, int, int, int, bool) (*Pixmap, error) {
	return nil, ErrNotBuilt
}
func (px *Pixmap) Clone(*Context) (*Pixmap, error)           { return nil, ErrNotBuilt }
func (px *Pixmap) Clear(*Context) error                      { return ErrNotBuilt }
func (px *Pixmap) ClearWithValue(*Context, int) error        { return ErrNotBuilt }
func (px *Pixmap) Invert(*Context) error                     { return ErrNotBuilt }
func (px *Pixmap) Gamma(*Context, float32) error             { return ErrNotBuilt }
func (px *Pixmap) Tint(*Context, int, int) error             { return ErrNotBuilt }
func (px *Pixmap) SaveAs(*Context, string, int) error        { return ErrNotBuilt }
func (px *Pixmap) ImageData(*Context, int) (*Buffer, error)  { return nil, ErrNotBuilt }
func (px *Pixmap) X(*Context) int                            { return 0 }
func (px *Pixmap) Y(*Context) int                            { return 0 }
func (px *Pixmap) Width(*Context) int                        { return 0 }
func (px *Pixmap) Height(*Context) int                       { return 0 }
func (px *Pixmap) N(*Context) int                            { return 0 }
func (px *Pixmap) Alpha(*Context) bool                       { return false }
func (px *Pixmap) Stride(*Context) int                       { return 0 }
func (px *Pixmap) Resolution() (xres, yres int)              { return 0, 0 }
func (px *Pixmap) SetResolution(xres, yres int)              {}
func (px *Pixmap) Colorspace(*Context) *Colorspace           { return nil }
func (px *Pixmap) Samples(*Context) []byte                   { return nil }
func (px *Pixmap) Drop(*Context)                             {}

type Colorspace struct{}

func DeviceGray(*Context) *Colorspace      { return &Colorspace{} }
func DeviceRGB(*Context) *Colorspace       { return &Colorspace{} }
func DeviceBGR(*Context) *Colorspace       { return &Colorspace{} }
func DeviceCMYK(*Context) *Colorspace      { return &Colorspace{} }
func (cs *Colorspace) N(*Context) int      { return 0 }
func (cs *Colorspace) Name(*Context) string { return "" }
func (cs *Colorspace) ConvertColor(*Context, *Colorspace, *Colorspace, []float32, ColorParams) ([]float32, error) {
	return nil, ErrNotBuilt
}
func (cs *Colorspace) Drop(*Context) {}

type Font struct{}

func NewFont(*Context, string, int) (*Font, error)                   { return nil, ErrNotBuilt }
func NewFontFromBuffer(*Context, string, int, *Buffer) (*Font, error) { return nil, ErrNotBuilt }
func (f *Font) Name(*Context) string                                 { return "" }
func (f *Font) EncodeCharacter(*Context, rune) (int, error)          { return 0, ErrNotBuilt }
func (f *Font) AdvanceGlyph(*Context, int, bool) (float32, error)    { return 0, ErrNotBuilt }
func (f *Font) OutlineGlyph(*Context, int, Matrix) (*Path, error)    { return nil, ErrNotBuilt }
func (f *Font) Drop(*Context)                                        {}

type Image struct{}

func NewImageFromPixmap(*Context, *Pixmap) (*Image, error) { return nil, ErrNotBuilt }
func NewImageFromFile(*Context, string) (*Image, error)    { return nil, ErrNotBuilt }
func NewImageFromDisplayList(*Context, *DisplayList, float32, float32) (*Image, error) {
	return nil, ErrNotBuilt
}
func (im *Image) Width() int                         { return 0 }
func (im *Image) Height() int                        { return 0 }
func (im *Image) ToPixmap(*Context) (*Pixmap, error) { return nil, ErrNotBuilt }
func (im *Image) Drop(*Context)                      {}

type Text struct{}

func NewText(*Context) (*Text, error)  { return nil, ErrNotBuilt }
func TextLanguageFromString(string) int { return 0 }
func (t *Text) ShowString(*Context, *Font, Matrix, string, bool, int) (Matrix, error) {
	return Matrix{}, ErrNotBuilt
}
func (t *Text) Bound(*Context, *StrokeState, Matrix) (Rect, error) { return Rect{}, ErrNotBuilt }
func (t *Text) Drop(*Context)                                      {}

type Path struct{}

func NewPath(*Context) (*Path, error)                          { return nil, ErrNotBuilt }
func (p *Path) Clone(*Context) (*Path, error)                  { return nil, ErrNotBuilt }
func (p *Path) Trim(*Context) error                            { return ErrNotBuilt }
func (p *Path) MoveTo(*Context, float32, float32) error        { return ErrNotBuilt }
func (p *Path) LineTo(*Context, float32, float32) error        { return ErrNotBuilt }
func (p *Path) ClosePath(*Context) error                       { return ErrNotBuilt }
func (p *Path) RectTo(*Context, float32, float32, float32, float32) error { return ErrNotBuilt }
func (p *Path) CurveTo(*Context, float32, float32, float32, float32, float32, float32) error {
	return ErrNotBuilt
}
func (p *Path) CurveToV(*Context, float32, float32, float32, float32) error { return ErrNotBuilt }
func (p *Path) CurveToY(*Context, float32, float32, float32, float32) error { return ErrNotBuilt }
func (p *Path) Transform(*Context, Matrix) error                            { return ErrNotBuilt }
func (p *Path) Bound(*Context, *StrokeState, Matrix) (Rect, error)          { return Rect{}, ErrNotBuilt }
func (p *Path) Walk(*Context, PathWalker) error                             { return ErrNotBuilt }
func (p *Path) Drop(*Context)                                               {}

type StrokeState struct{}

func DefaultStrokeState(*Context) (*StrokeState, error) { return nil, ErrNotBuilt }
func NewStrokeState(*Context, LineCap, LineCap, LineCap, LineJoin, float32, float32, float32, []float32) (*StrokeState, error) {
	return nil, ErrNotBuilt
}
func (s *StrokeState) StartCap() LineCap   { return 0 }
func (s *StrokeState) DashCap() LineCap    { return 0 }
func (s *StrokeState) EndCap() LineCap     { return 0 }
func (s *StrokeState) LineJoin() LineJoin  { return 0 }
func (s *StrokeState) LineWidth() float32  { return 0 }
func (s *StrokeState) MiterLimit() float32 { return 0 }
func (s *StrokeState) DashPhase() float32  { return 0 }
func (s *StrokeState) Dashes() []float32   { return nil }
func (s *StrokeState) Drop(*Context)       {}

type Device struct{}

func NewDrawDevice(*Context, *Pixmap, IRect) (*Device, error)      { return nil, ErrNotBuilt }
func NewDisplayListDevice(*Context, *DisplayList) (*Device, error) { return nil, ErrNotBuilt }
func NewStextDevice(*Context, *TextPage, int) (*Device, error)     { return nil, ErrNotBuilt }
func (d *Device) Close(*Context) error                             { return ErrNotBuilt }
func (d *Device) FillPath(*Context, *Path, bool, Matrix, *Colorspace, []float32, float32, ColorParams) error {
	return ErrNotBuilt
}
func (d *Device) StrokePath(*Context, *Path, *StrokeState, Matrix, *Colorspace, []float32, float32, ColorParams) error {
	return ErrNotBuilt
}
func (d *Device) ClipPath(*Context, *Path, bool, Matrix) error               { return ErrNotBuilt }
func (d *Device) ClipStrokePath(*Context, *Path, *StrokeState, Matrix) error { return ErrNotBuilt }
func (d *Device) FillText(*Context, *Text, Matrix, *Colorspace, []float32, float32, ColorParams) error {
	return ErrNotBuilt
}
func (d *Device) StrokeText(*Context, *Text, *StrokeState, Matrix, *Colorspace, []float32, float32, ColorParams) error {
	return ErrNotBuilt
}
func (d *Device) ClipText(*Context, *Text, Matrix) error                     { return ErrNotBuilt }
func (d *Device) ClipStrokeText(*Context, *Text, *StrokeState, Matrix) error { return ErrNotBuilt }
func (d *Device) IgnoreText(*Context, *Text, Matrix) error                   { return ErrNotBuilt }
func (d *Device) FillImage(*Context, *Image, Matrix, float32, ColorParams) error {
	return ErrNotBuilt
}
func (d *Device) FillImageMask(*Context, *Image, Matrix, *Colorspace, []float32, float32, ColorParams) error {
	return ErrNotBuilt
}
func (d *Device) ClipImageMask(*Context, *Image, Matrix) error { return ErrNotBuilt }
func (d *Device) PopClip(*Context) error                       { return ErrNotBuilt }
func (d *Device) BeginMask(*Context, Rect, bool, *Colorspace, []float32, ColorParams) error {
	return ErrNotBuilt
}
func (d *Device) EndMask(*Context) error { return ErrNotBuilt }
func (d *Device) BeginGroup(*Context, Rect, *Colorspace, bool, bool, int, float32) error {
	return ErrNotBuilt
}
func (d *Device) EndGroup(*Context) error { return ErrNotBuilt }
func (d *Device) BeginTile(*Context, Rect, Rect, float32, float32, Matrix, int) (int, error) {
	return 0, ErrNotBuilt
}
func (d *Device) EndTile(*Context) error            { return ErrNotBuilt }
func (d *Device) BeginLayer(*Context, string) error { return ErrNotBuilt }
func (d *Device) EndLayer(*Context) error           { return ErrNotBuilt }
func (d *Device) Drop(*Context)                     {}

type DisplayList struct{}

func NewDisplayList(*Context, Rect) (*DisplayList, error) { return nil, ErrNotBuilt }
func (dl *DisplayList) Bounds(*Context) Rect              { return Rect{} }
func (dl *DisplayList) ToPixmap(*Context, Matrix, *Colorspace, bool) (*Pixmap, error) {
	return nil, ErrNotBuilt
}
func (dl *DisplayList) ToTextPage(*Context, int) (*TextPage, error) { return nil, ErrNotBuilt }
func (dl *DisplayList) Run(*Context, *Device, Matrix, Rect, *Cookie) error {
	return ErrNotBuilt
}
func (dl *DisplayList) Search(*Context, string, int) ([]Quad, error) { return nil, ErrNotBuilt }
func (dl *DisplayList) Drop(*Context)                                {}

type TextPage struct{}

func NewTextPage(*Context, Rect) (*TextPage, error)             { return nil, ErrNotBuilt }
func (tp *TextPage) Blocks(*Context) []TextBlock                { return nil }
func (tp *TextPage) AsText(*Context) (string, error)            { return "", ErrNotBuilt }
func (tp *TextPage) AsHTML(*Context, int) (string, error)       { return "", ErrNotBuilt }
func (tp *TextPage) AsXHTML(*Context, int) (string, error)      { return "", ErrNotBuilt }
func (tp *TextPage) AsXML(*Context, int) (string, error)        { return "", ErrNotBuilt }
func (tp *TextPage) AsJSON(*Context, float32) (string, error)   { return "", ErrNotBuilt }
func (tp *TextPage) Search(*Context, string, int) ([]Quad, error) { return nil, ErrNotBuilt }
func (tp *TextPage) HighlightSelection(*Context, Point, Point, int) ([]Quad, error) {
	return nil, ErrNotBuilt
}
func (tp *TextPage) Drop(*Context) {}

type DocumentWriter struct{}

func NewDocumentWriter(*Context, string, string, string) (*DocumentWriter, error) {
	return nil, ErrNotBuilt
}
func NewPDFOCRWriter(*Context, string, string) (*DocumentWriter, error) {
	return nil, ErrNotBuilt
}
func (w *DocumentWriter) BeginPage(*Context, Rect) (*Device, error) { return nil, ErrNotBuilt }
func (w *DocumentWriter) EndPage(*Context) error                    { return ErrNotBuilt }
func (w *DocumentWriter) Close(*Context) error                      { return ErrNotBuilt }
func (w *DocumentWriter) Drop(*Context)                             {}

type PDFDocument struct{}

func NewPDFDocument(*Context) (*PDFDocument, error)                  { return nil, ErrNotBuilt }
func OpenPDFDocument(*Context, string) (*PDFDocument, error)         { return nil, ErrNotBuilt }
func OpenPDFDocumentFromBytes(*Context, *Buffer) (*PDFDocument, error) { return nil, ErrNotBuilt }
func PDFDocumentFromDocument(*Context, *Document) (*PDFDocument, error) {
	return nil, ErrNotBuilt
}
func (pd *PDFDocument) Super(*Context) (*Document, error)           { return nil, ErrNotBuilt }
func (pd *PDFDocument) Version(*Context) (int, error)               { return 0, ErrNotBuilt }
func (pd *PDFDocument) HasUnsavedChanges(*Context) (bool, error)    { return false, ErrNotBuilt }
func (pd *PDFDocument) CanBeSavedIncrementally(*Context) (bool, error) {
	return false, ErrNotBuilt
}
func (pd *PDFDocument) Save(*Context, string, PDFWriteOptions) error { return ErrNotBuilt }
func (pd *PDFDocument) WriteToBuffer(*Context, PDFWriteOptions) (*Buffer, error) {
	return nil, ErrNotBuilt
}
func (pd *PDFDocument) EnableJS(*Context) error                   { return ErrNotBuilt }
func (pd *PDFDocument) DisableJS(*Context) error                  { return ErrNotBuilt }
func (pd *PDFDocument) JSSupported(*Context) (bool, error)        { return false, ErrNotBuilt }
func (pd *PDFDocument) CalculateForm(*Context) error              { return ErrNotBuilt }
func (pd *PDFDocument) Trailer(*Context) (*PDFObject, error)      { return nil, ErrNotBuilt }
func (pd *PDFDocument) Catalog(*Context) (*PDFObject, error)      { return nil, ErrNotBuilt }
func (pd *PDFDocument) CountObjects(*Context) (int, error)        { return 0, ErrNotBuilt }
func (pd *PDFDocument) CountPages(*Context) (int, error)          { return 0, ErrNotBuilt }
func (pd *PDFDocument) AddObject(*Context, *PDFObject) (*PDFObject, error) {
	return nil, ErrNotBuilt
}
func (pd *PDFDocument) CreateObject(*Context) (*PDFObject, error) { return nil, ErrNotBuilt }
func (pd *PDFDocument) DeleteObject(*Context, int) error          { return ErrNotBuilt }
func (pd *PDFDocument) AddImage(*Context, *Image) (*PDFObject, error) { return nil, ErrNotBuilt }
func (pd *PDFDocument) AddFont(*Context, *Font) (*PDFObject, error)   { return nil, ErrNotBuilt }
func (pd *PDFDocument) AddCJKFont(*Context, *Font, int, int, bool) (*PDFObject, error) {
	return nil, ErrNotBuilt
}
func (pd *PDFDocument) AddSimpleFont(*Context, *Font, int) (*PDFObject, error) {
	return nil, ErrNotBuilt
}
func (pd *PDFDocument) NewGraftMap(*Context) (*PDFGraftMap, error) { return nil, ErrNotBuilt }
func (pd *PDFDocument) GraftObject(*Context, *PDFObject) (*PDFObject, error) {
	return nil, ErrNotBuilt
}
func (pd *PDFDocument) NewPage(*Context, int, float32, float32) (*PDFPage, error) {
	return nil, ErrNotBuilt
}
func (pd *PDFDocument) LookupPageObj(*Context, int) (*PDFObject, error) { return nil, ErrNotBuilt }
func (pd *PDFDocument) InsertPage(*Context, int, *PDFObject) error      { return ErrNotBuilt }
func (pd *PDFDocument) DeletePage(*Context, int) error                  { return ErrNotBuilt }
func (pd *PDFDocument) Drop(*Context)                                   {}

type PDFGraftMap struct{}

func (gm *PDFGraftMap) GraftMappedObject(*Context, *PDFObject) (*PDFObject, error) {
	return nil, ErrNotBuilt
}
func (gm *PDFGraftMap) Drop(*Context) {}

type PDFObject struct{}

func (o *PDFObject) BoundDocument(*Context) *PDFDocument { return nil }
func NewPDFNull() *PDFObject                             { return &PDFObject{} }
func NewPDFBool(bool) *PDFObject                         { return &PDFObject{} }
func NewPDFInt(*Context, int64) (*PDFObject, error)      { return nil, ErrNotBuilt }
func NewPDFReal(*Context, float32) (*PDFObject, error)   { return nil, ErrNotBuilt }
func NewPDFString(*Context, string) (*PDFObject, error)  { return nil, ErrNotBuilt }
func NewPDFName(*Context, string) (*PDFObject, error)    { return nil, ErrNotBuilt }
func NewPDFIndirect(*Context, *PDFDocument, int, int) (*PDFObject, error) {
	return nil, ErrNotBuilt
}
func NewPDFArray(*Context, *PDFDocument, int) (*PDFObject, error) { return nil, ErrNotBuilt }
func NewPDFDict(*Context, *PDFDocument, int) (*PDFObject, error)  { return nil, ErrNotBuilt }
func NewPDFObjectFromString(*Context, *PDFDocument, string) (*PDFObject, error) {
	return nil, ErrNotBuilt
}
func (o *PDFObject) IsIndirect(*Context) (bool, error)          { return false, ErrNotBuilt }
func (o *PDFObject) IsNull(*Context) (bool, error)              { return false, ErrNotBuilt }
func (o *PDFObject) IsBool(*Context) (bool, error)              { return false, ErrNotBuilt }
func (o *PDFObject) IsInt(*Context) (bool, error)               { return false, ErrNotBuilt }
func (o *PDFObject) IsReal(*Context) (bool, error)              { return false, ErrNotBuilt }
func (o *PDFObject) IsNumber(*Context) (bool, error)            { return false, ErrNotBuilt }
func (o *PDFObject) IsString(*Context) (bool, error)            { return false, ErrNotBuilt }
func (o *PDFObject) IsName(*Context) (bool, error)              { return false, ErrNotBuilt }
func (o *PDFObject) IsArray(*Context) (bool, error)             { return false, ErrNotBuilt }
func (o *PDFObject) IsDict(*Context) (bool, error)              { return false, ErrNotBuilt }
func (o *PDFObject) IsStream(*Context) (bool, error)            { return false, ErrNotBuilt }
func (o *PDFObject) ToBool(*Context) (bool, error)              { return false, ErrNotBuilt }
func (o *PDFObject) ToInt(*Context) (int64, error)              { return 0, ErrNotBuilt }
func (o *PDFObject) ToFloat(*Context) (float32, error)          { return 0, ErrNotBuilt }
func (o *PDFObject) ToIndirect(*Context) (int, error)           { return 0, ErrNotBuilt }
func (o *PDFObject) ToString(*Context) (string, error)          { return "", ErrNotBuilt }
func (o *PDFObject) ToName(*Context) (string, error)            { return "", ErrNotBuilt }
func (o *PDFObject) ToBytes(*Context) ([]byte, error)           { return nil, ErrNotBuilt }
func (o *PDFObject) ResolveIndirect(*Context) (*PDFObject, error) { return nil, ErrNotBuilt }
func (o *PDFObject) ArrayLen(*Context) (int, error)             { return 0, ErrNotBuilt }
func (o *PDFObject) ArrayGet(*Context, int) (*PDFObject, error) { return nil, ErrNotBuilt }
func (o *PDFObject) ArrayPut(*Context, int, *PDFObject) error   { return ErrNotBuilt }
func (o *PDFObject) ArrayPush(*Context, *PDFObject) error       { return ErrNotBuilt }
func (o *PDFObject) ArrayDelete(*Context, int) error            { return ErrNotBuilt }
func (o *PDFObject) DictLen(*Context) (int, error)              { return 0, ErrNotBuilt }
func (o *PDFObject) DictGetKey(*Context, int) (*PDFObject, error) { return nil, ErrNotBuilt }
func (o *PDFObject) DictGetVal(*Context, int) (*PDFObject, error) { return nil, ErrNotBuilt }
func (o *PDFObject) DictGet(*Context, *PDFObject) (*PDFObject, error) { return nil, ErrNotBuilt }
func (o *PDFObject) DictGetInheritable(*Context, *PDFObject) (*PDFObject, error) {
	return nil, ErrNotBuilt
}
func (o *PDFObject) DictPut(*Context, *PDFObject, *PDFObject) error { return ErrNotBuilt }
func (o *PDFObject) DictDelete(*Context, *PDFObject) error          { return ErrNotBuilt }
func (o *PDFObject) ReadStream(*Context) (*Buffer, error)           { return nil, ErrNotBuilt }
func (o *PDFObject) ReadRawStream(*Context) (*Buffer, error)        { return nil, ErrNotBuilt }
func (o *PDFObject) WriteObject(*Context, *PDFObject) error         { return ErrNotBuilt }
func (o *PDFObject) WriteStreamBuffer(*Context, *Buffer, bool) error { return ErrNotBuilt }
func (o *PDFObject) String(*Context, bool, bool) (string, error)    { return "", ErrNotBuilt }
func (o *PDFObject) Clone(*Context) (*PDFObject, error)             { return nil, ErrNotBuilt }
func (o *PDFObject) Drop(*Context)                                  {}

type PDFPage struct{}

func PDFPageFromPage(*Context, *Page) (*PDFPage, error) { return nil, ErrNotBuilt }
func (pp *PDFPage) Obj(*Context) (*PDFObject, error)    { return nil, ErrNotBuilt }
func (pp *PDFPage) Rotation(*Context) (int, error)      { return 0, ErrNotBuilt }
func (pp *PDFPage) SetRotation(*Context, int) error     { return ErrNotBuilt }
func (pp *PDFPage) CropBox(*Context) (Rect, error)      { return Rect{}, ErrNotBuilt }
func (pp *PDFPage) SetCropBox(*Context, Rect) error     { return ErrNotBuilt }
func (pp *PDFPage) CropBoxPosition(*Context) Point      { return Point{} }
func (pp *PDFPage) MediaBox(*Context) Rect              { return Rect{} }
func (pp *PDFPage) Transform(*Context) (Matrix, error)  { return Matrix{}, ErrNotBuilt }
func PDFPageObjTransform(*Context, *PDFObject) (Matrix, error) {
	return Matrix{}, ErrNotBuilt
}
func (pp *PDFPage) Update(*Context) (bool, error) { return false, ErrNotBuilt }
func (pp *PDFPage) Redact(*Context) (bool, error) { return false, ErrNotBuilt }
func (pp *PDFPage) FirstAnnot(*Context) (*PDFAnnotation, error) { return nil, ErrNotBuilt }
func (pp *PDFPage) CreateAnnot(*Context, int) (*PDFAnnotation, error) {
	return nil, ErrNotBuilt
}
func (pp *PDFPage) DeleteAnnot(*Context, *PDFAnnotation) error { return ErrNotBuilt }
func (pp *PDFPage) Drop(*Context)                              {}

type PDFAnnotation struct{}

func (a *PDFAnnotation) Next(*Context) (*PDFAnnotation, error) { return nil, ErrNotBuilt }
func (a *PDFAnnotation) Type(*Context) (int, error)            { return 0, ErrNotBuilt }
func (a *PDFAnnotation) Author(*Context) (string, error)       { return "", ErrNotBuilt }
func (a *PDFAnnotation) SetAuthor(*Context, string) error      { return ErrNotBuilt }
func (a *PDFAnnotation) Contents(*Context) (string, error)     { return "", ErrNotBuilt }
func (a *PDFAnnotation) SetContents(*Context, string) error    { return ErrNotBuilt }
func (a *PDFAnnotation) Rect(*Context) (Rect, error)           { return Rect{}, ErrNotBuilt }
func (a *PDFAnnotation) SetRect(*Context, Rect) error          { return ErrNotBuilt }
func (a *PDFAnnotation) SetColor(*Context, []float32) error    { return ErrNotBuilt }
func (a *PDFAnnotation) Flags(*Context) (int, error)           { return 0, ErrNotBuilt }
func (a *PDFAnnotation) SetFlags(*Context, int) error          { return ErrNotBuilt }
func (a *PDFAnnotation) SetLine(*Context, Point, Point) error  { return ErrNotBuilt }
func (a *PDFAnnotation) SetBorderWidth(*Context, float32) error { return ErrNotBuilt }
func (a *PDFAnnotation) SetPopup(*Context, Rect) error          { return ErrNotBuilt }
func (a *PDFAnnotation) SetActive(*Context, bool) error         { return ErrNotBuilt }
func (a *PDFAnnotation) SetIsOpen(*Context, bool) error         { return ErrNotBuilt }
func (a *PDFAnnotation) Update(*Context) (bool, error)          { return false, ErrNotBuilt }
func (a *PDFAnnotation) Drop(*Context)                          {}
