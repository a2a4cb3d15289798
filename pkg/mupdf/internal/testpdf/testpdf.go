// Package testpdf builds small PDF files in memory for tests.
//
// The files are assembled object by object with a correct cross
// reference table, so they open cleanly without repair. Content is
// deliberately minimal: Helvetica text on letter-sized pages.
package testpdf

import (
	"bytes"
	"fmt"
)

// PageWidth and PageHeight are the media box of generated pages, in
// points (US letter).
const (
	PageWidth  = 612
	PageHeight = 792
)

// builder accumulates numbered objects and tracks their byte offsets
// for the cross reference table.
type builder struct {
	buf     bytes.Buffer
	offsets []int
}

func newBuilder() *builder {
	b := &builder{}
	b.buf.WriteString("%PDF-1.7\n")
	// Binary marker comment so the file is treated as binary.
	b.buf.WriteString("%\xc2\xa5\xc2\xb1\xc3\xab\n")
	return b
}

// add appends object body as the next numbered object and returns its
// object number.
func (b *builder) add(body string) int {
	num := len(b.offsets) + 1
	b.offsets = append(b.offsets, b.buf.Len())
	fmt.Fprintf(&b.buf, "%d 0 obj\n%s\nendobj\n", num, body)
	return num
}

// finish writes the xref table and trailer pointing at rootNum and
// returns the file bytes.
func (b *builder) finish(rootNum int, info string) []byte {
	startxref := b.buf.Len()
	fmt.Fprintf(&b.buf, "xref\n0 %d\n", len(b.offsets)+1)
	b.buf.WriteString("0000000000 65535 f \n")
	for _, off := range b.offsets {
		fmt.Fprintf(&b.buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&b.buf, "trailer\n<< /Size %d /Root %d 0 R%s >>\n", len(b.offsets)+1, rootNum, info)
	fmt.Fprintf(&b.buf, "startxref\n%d\n%%%%EOF\n", startxref)
	return bytes.Clone(b.buf.Bytes())
}

// Minimal returns a valid one-page PDF with no content.
func Minimal() []byte {
	return WithPageTexts("")
}

// WithPages returns a valid PDF with n empty pages.
func WithPages(n int) []byte {
	texts := make([]string, n)
	return WithPageTexts(texts...)
}

// WithPageTexts returns a valid PDF with one page per argument, each
// showing its text in Helvetica near the top left corner. An empty
// string yields an empty page.
func WithPageTexts(texts ...string) []byte {
	b := newBuilder()

	fontNum := b.add("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")

	// Page objects reference the pages node before it exists; object
	// numbers are assigned sequentially so it can be computed up front.
	// Layout: font, then per page (contents, page), then pages, catalog.
	pagesNum := fontNum + 2*len(texts) + 1

	pageNums := make([]int, 0, len(texts))
	for _, text := range texts {
		var content string
		if text != "" {
			content = fmt.Sprintf("BT /F1 12 Tf 72 %d Td (%s) Tj ET", PageHeight-72, escapeString(text))
		}
		contentsNum := b.add(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content))
		pageNum := b.add(fmt.Sprintf(
			"<< /Type /Page /Parent %d 0 R /MediaBox [0 0 %d %d] /Resources << /Font << /F1 %d 0 R >> >> /Contents %d 0 R >>",
			pagesNum, PageWidth, PageHeight, fontNum, contentsNum))
		pageNums = append(pageNums, pageNum)
	}

	var kids bytes.Buffer
	for _, num := range pageNums {
		fmt.Fprintf(&kids, "%d 0 R ", num)
	}
	b.add(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", kids.String(), len(pageNums)))
	catalogNum := b.add(fmt.Sprintf("<< /Type /Catalog /Pages %d 0 R >>", pagesNum))

	return b.finish(catalogNum, "")
}

// WithTitle returns a valid one-page PDF whose Info dictionary carries
// the given Title.
func WithTitle(title string) []byte {
	b := newBuilder()

	pagesNum := 2
	pageNum := b.add(fmt.Sprintf(
		"<< /Type /Page /Parent %d 0 R /MediaBox [0 0 %d %d] >>",
		pagesNum, PageWidth, PageHeight))
	b.add(fmt.Sprintf("<< /Type /Pages /Kids [%d 0 R] /Count 1 >>", pageNum))
	catalogNum := b.add(fmt.Sprintf("<< /Type /Catalog /Pages %d 0 R >>", pagesNum))
	infoNum := b.add(fmt.Sprintf("<< /Title (%s) >>", escapeString(title)))

	return b.finish(catalogNum, fmt.Sprintf(" /Info %d 0 R", infoNum))
}

// Invalid returns bytes that are not a document in any supported
// format.
func Invalid() []byte {
	return []byte("this is not a document in any recognizable format\n")
}

// Truncated returns a PDF header with the body cut off, enough to be
// recognized but not to be opened.
func Truncated() []byte {
	full := Minimal()
	return full[:len(full)/4]
}

func escapeString(s string) string {
	var out bytes.Buffer
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '(', ')', '\\':
			out.WriteByte('\\')
			out.WriteByte(c)
		default:
			out.WriteByte(c)
		}
	}
	return out.String()
}
