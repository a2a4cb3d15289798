//go:build cgo && !windows

package ffi

/*
#include <stdlib.h>
#include "wrapper.h"
*/
import "C"

import "unsafe"

// PDFObject wraps a native pdf_obj. Every handle returned here owns a
// reference, including objects fetched out of arrays and dictionaries,
// so Drop applies uniformly.
type PDFObject struct {
	p *C.pdf_obj
}

// BoundDocument reports the document the object belongs to, or nil for
// unbound objects such as plain scalars.
func (o *PDFObject) BoundDocument(ctx *Context) *PDFDocument {
	p := C.mupdf_pdf_get_bound_document(ctx.ctx, o.p)
	if p == nil {
		return nil
	}
	return &PDFDocument{p: p}
}

func NewPDFNull() *PDFObject {
	return &PDFObject{p: C.mupdf_pdf_new_null()}
}

func NewPDFBool(b bool) *PDFObject {
	return &PDFObject{p: C.mupdf_pdf_new_bool(C.bool(b))}
}

func NewPDFInt(ctx *Context, i int64) (*PDFObject, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_pdf_new_int(ctx.ctx, C.int64_t(i), &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &PDFObject{p: p}, nil
}

func NewPDFReal(ctx *Context, f float32) (*PDFObject, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_pdf_new_real(ctx.ctx, C.float(f), &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &PDFObject{p: p}, nil
}

func NewPDFString(ctx *Context, s string) (*PDFObject, error) {
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))
	var cerr *C.mupdf_error_t
	p := C.mupdf_pdf_new_string(ctx.ctx, cs, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &PDFObject{p: p}, nil
}

func NewPDFName(ctx *Context, name string) (*PDFObject, error) {
	cn := C.CString(name)
	defer C.free(unsafe.Pointer(cn))
	var cerr *C.mupdf_error_t
	p := C.mupdf_pdf_new_name(ctx.ctx, cn, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &PDFObject{p: p}, nil
}

// NewPDFIndirect builds a reference to object num in pdf without
// touching the referenced object.
func NewPDFIndirect(ctx *Context, pdf *PDFDocument, num, gen int) (*PDFObject, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_pdf_new_indirect(ctx.ctx, pdf.p, C.int(num), C.int(gen), &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &PDFObject{p: p}, nil
}

func NewPDFArray(ctx *Context, pdf *PDFDocument, capacity int) (*PDFObject, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_pdf_new_array(ctx.ctx, pdf.p, C.int(capacity), &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &PDFObject{p: p}, nil
}

func NewPDFDict(ctx *Context, pdf *PDFDocument, capacity int) (*PDFObject, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_pdf_new_dict(ctx.ctx, pdf.p, C.int(capacity), &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &PDFObject{p: p}, nil
}

// NewPDFObjectFromString parses one object in PDF syntax, such as
// "<< /Type /Page >>".
func NewPDFObjectFromString(ctx *Context, pdf *PDFDocument, src string) (*PDFObject, error) {
	cs := C.CString(src)
	defer C.free(unsafe.Pointer(cs))
	var cerr *C.mupdf_error_t
	p := C.mupdf_pdf_obj_from_str(ctx.ctx, pdf.p, cs, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &PDFObject{p: p}, nil
}

func (o *PDFObject) IsIndirect(ctx *Context) (bool, error) {
	var cerr *C.mupdf_error_t
	ok := C.mupdf_pdf_is_indirect(ctx.ctx, o.p, &cerr)
	if err := takeError(cerr); err != nil {
		return false, err
	}
	return bool(ok), nil
}

func (o *PDFObject) IsNull(ctx *Context) (bool, error) {
	var cerr *C.mupdf_error_t
	ok := C.mupdf_pdf_is_null(ctx.ctx, o.p, &cerr)
	if err := takeError(cerr); err != nil {
		return false, err
	}
	return bool(ok), nil
}

func (o *PDFObject) IsBool(ctx *Context) (bool, error) {
	var cerr *C.mupdf_error_t
	ok := C.mupdf_pdf_is_bool(ctx.ctx, o.p, &cerr)
	if err := takeError(cerr); err != nil {
		return false, err
	}
	return bool(ok), nil
}

func (o *PDFObject) IsInt(ctx *Context) (bool, error) {
	var cerr *C.mupdf_error_t
	ok := C.mupdf_pdf_is_int(ctx.ctx, o.p, &cerr)
	if err := takeError(cerr); err != nil {
		return false, err
	}
	return bool(ok), nil
}

func (o *PDFObject) IsReal(ctx *Context) (bool, error) {
	var cerr *C.mupdf_error_t
	ok := C.mupdf_pdf_is_real(ctx.ctx, o.p, &cerr)
	if err := takeError(cerr); err != nil {
		return false, err
	}
	return bool(ok), nil
}

func (o *PDFObject) IsNumber(ctx *Context) (bool, error) {
	var cerr *C.mupdf_error_t
	ok := C.mupdf_pdf_is_number(ctx.ctx, o.p, &cerr)
	if err := takeError(cerr); err != nil {
		return false, err
	}
	return bool(ok), nil
}

func (o *PDFObject) IsString(ctx *Context) (bool, error) {
	var cerr *C.mupdf_error_t
	ok := C.mupdf_pdf_is_string(ctx.ctx, o.p, &cerr)
	if err := takeError(cerr); err != nil {
		return false, err
	}
	return bool(ok), nil
}

func (o *PDFObject) IsName(ctx *Context) (bool, error) {
	var cerr *C.mupdf_error_t
	ok := C.mupdf_pdf_is_name(ctx.ctx, o.p, &cerr)
	if err := takeError(cerr); err != nil {
		return false, err
	}
	return bool(ok), nil
}

func (o *PDFObject) IsArray(ctx *Context) (bool, error) {
	var cerr *C.mupdf_error_t
	ok := C.mupdf_pdf_is_array(ctx.ctx, o.p, &cerr)
	if err := takeError(cerr); err != nil {
		return false, err
	}
	return bool(ok), nil
}

func (o *PDFObject) IsDict(ctx *Context) (bool, error) {
	var cerr *C.mupdf_error_t
	ok := C.mupdf_pdf_is_dict(ctx.ctx, o.p, &cerr)
	if err := takeError(cerr); err != nil {
		return false, err
	}
	return bool(ok), nil
}

func (o *PDFObject) IsStream(ctx *Context) (bool, error) {
	var cerr *C.mupdf_error_t
	ok := C.mupdf_pdf_is_stream(ctx.ctx, o.p, &cerr)
	if err := takeError(cerr); err != nil {
		return false, err
	}
	return bool(ok), nil
}

func (o *PDFObject) ToBool(ctx *Context) (bool, error) {
	var cerr *C.mupdf_error_t
	b := C.mupdf_pdf_to_bool(ctx.ctx, o.p, &cerr)
	if err := takeError(cerr); err != nil {
		return false, err
	}
	return bool(b), nil
}

func (o *PDFObject) ToInt(ctx *Context) (int64, error) {
	var cerr *C.mupdf_error_t
	i := C.mupdf_pdf_to_int(ctx.ctx, o.p, &cerr)
	if err := takeError(cerr); err != nil {
		return 0, err
	}
	return int64(i), nil
}

func (o *PDFObject) ToFloat(ctx *Context) (float32, error) {
	var cerr *C.mupdf_error_t
	f := C.mupdf_pdf_to_float(ctx.ctx, o.p, &cerr)
	if err := takeError(cerr); err != nil {
		return 0, err
	}
	return float32(f), nil
}

// ToIndirect reports the object number an indirect reference points
// at, zero for non-references.
func (o *PDFObject) ToIndirect(ctx *Context) (int, error) {
	var cerr *C.mupdf_error_t
	n := C.mupdf_pdf_to_indirect(ctx.ctx, o.p, &cerr)
	if err := takeError(cerr); err != nil {
		return 0, err
	}
	return int(n), nil
}

// ToString decodes a string object to UTF-8 text.
func (o *PDFObject) ToString(ctx *Context) (string, error) {
	var cerr *C.mupdf_error_t
	cs := C.mupdf_pdf_to_string(ctx.ctx, o.p, &cerr)
	if err := takeError(cerr); err != nil {
		return "", err
	}
	return C.GoString(cs), nil
}

func (o *PDFObject) ToName(ctx *Context) (string, error) {
	var cerr *C.mupdf_error_t
	cs := C.mupdf_pdf_to_name(ctx.ctx, o.p, &cerr)
	if err := takeError(cerr); err != nil {
		return "", err
	}
	return C.GoString(cs), nil
}

// ToBytes copies the raw bytes of a string object, undecoded.
func (o *PDFObject) ToBytes(ctx *Context) ([]byte, error) {
	var n C.size_t
	var cerr *C.mupdf_error_t
	cs := C.mupdf_pdf_to_bytes(ctx.ctx, o.p, &n, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	if cs == nil || n == 0 {
		return nil, nil
	}
	return C.GoBytes(unsafe.Pointer(cs), C.int(n)), nil
}

// ResolveIndirect follows an indirect reference to the object it names.
// Non-references resolve to themselves.
func (o *PDFObject) ResolveIndirect(ctx *Context) (*PDFObject, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_pdf_resolve_indirect(ctx.ctx, o.p, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &PDFObject{p: p}, nil
}

func (o *PDFObject) ArrayLen(ctx *Context) (int, error) {
	var cerr *C.mupdf_error_t
	n := C.mupdf_pdf_array_len(ctx.ctx, o.p, &cerr)
	if err := takeError(cerr); err != nil {
		return 0, err
	}
	return int(n), nil
}

func (o *PDFObject) ArrayGet(ctx *Context, i int) (*PDFObject, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_pdf_array_get(ctx.ctx, o.p, C.int(i), &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &PDFObject{p: p}, nil
}

func (o *PDFObject) ArrayPut(ctx *Context, i int, item *PDFObject) error {
	var cerr *C.mupdf_error_t
	C.mupdf_pdf_array_put(ctx.ctx, o.p, C.int(i), item.p, &cerr)
	return takeError(cerr)
}

func (o *PDFObject) ArrayPush(ctx *Context, item *PDFObject) error {
	var cerr *C.mupdf_error_t
	C.mupdf_pdf_array_push(ctx.ctx, o.p, item.p, &cerr)
	return takeError(cerr)
}

func (o *PDFObject) ArrayDelete(ctx *Context, i int) error {
	var cerr *C.mupdf_error_t
	C.mupdf_pdf_array_delete(ctx.ctx, o.p, C.int(i), &cerr)
	return takeError(cerr)
}

func (o *PDFObject) DictLen(ctx *Context) (int, error) {
	var cerr *C.mupdf_error_t
	n := C.mupdf_pdf_dict_len(ctx.ctx, o.p, &cerr)
	if err := takeError(cerr); err != nil {
		return 0, err
	}
	return int(n), nil
}

func (o *PDFObject) DictGetKey(ctx *Context, i int) (*PDFObject, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_pdf_dict_get_key(ctx.ctx, o.p, C.int(i), &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &PDFObject{p: p}, nil
}

func (o *PDFObject) DictGetVal(ctx *Context, i int) (*PDFObject, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_pdf_dict_get_val(ctx.ctx, o.p, C.int(i), &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &PDFObject{p: p}, nil
}

// DictGet looks key up in the dictionary. A missing key reports a nil
// object with no error.
func (o *PDFObject) DictGet(ctx *Context, key *PDFObject) (*PDFObject, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_pdf_dict_get(ctx.ctx, o.p, key.p, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return &PDFObject{p: p}, nil
}

// DictGetInheritable looks key up in the dictionary and then up the
// page tree ancestors, the lookup rule for keys such as Rotate and
// MediaBox.
func (o *PDFObject) DictGetInheritable(ctx *Context, key *PDFObject) (*PDFObject, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_pdf_dict_get_inheritable(ctx.ctx, o.p, key.p, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return &PDFObject{p: p}, nil
}

func (o *PDFObject) DictPut(ctx *Context, key, value *PDFObject) error {
	var cerr *C.mupdf_error_t
	C.mupdf_pdf_dict_put(ctx.ctx, o.p, key.p, value.p, &cerr)
	return takeError(cerr)
}

func (o *PDFObject) DictDelete(ctx *Context, key *PDFObject) error {
	var cerr *C.mupdf_error_t
	C.mupdf_pdf_dict_delete(ctx.ctx, o.p, key.p, &cerr)
	return takeError(cerr)
}

// ReadStream returns the decoded contents of a stream object.
func (o *PDFObject) ReadStream(ctx *Context) (*Buffer, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_pdf_read_stream(ctx.ctx, o.p, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &Buffer{p: p}, nil
}

// ReadRawStream returns the stream contents with filters still applied.
func (o *PDFObject) ReadRawStream(ctx *Context) (*Buffer, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_pdf_read_raw_stream(ctx.ctx, o.p, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &Buffer{p: p}, nil
}

// WriteObject replaces the value of this indirect object in its
// document with obj.
func (o *PDFObject) WriteObject(ctx *Context, obj *PDFObject) error {
	var cerr *C.mupdf_error_t
	C.mupdf_pdf_write_object(ctx.ctx, o.p, obj.p, &cerr)
	return takeError(cerr)
}

// WriteStreamBuffer replaces the stream contents of this object.
// compressed marks buf as already deflated.
func (o *PDFObject) WriteStreamBuffer(ctx *Context, buf *Buffer, compressed bool) error {
	var cerr *C.mupdf_error_t
	C.mupdf_pdf_write_stream_buffer(ctx.ctx, o.p, buf.p, cint(compressed), &cerr)
	return takeError(cerr)
}

// String renders the object in PDF syntax. tight drops optional
// whitespace, ascii escapes binary strings.
func (o *PDFObject) String(ctx *Context, tight, ascii bool) (string, error) {
	var cerr *C.mupdf_error_t
	cs := C.mupdf_pdf_obj_to_string(ctx.ctx, o.p, C.bool(tight), C.bool(ascii), &cerr)
	if err := takeError(cerr); err != nil {
		return "", err
	}
	s := C.GoString(cs)
	C.mupdf_drop_str(cs)
	return s, nil
}

// Clone deep copies the object, detaching it from any document.
func (o *PDFObject) Clone(ctx *Context) (*PDFObject, error) {
	var cerr *C.mupdf_error_t
	p := C.mupdf_pdf_clone_obj(ctx.ctx, o.p, &cerr)
	if err := takeError(cerr); err != nil {
		return nil, err
	}
	return &PDFObject{p: p}, nil
}

func (o *PDFObject) Drop(ctx *Context) {
	if o == nil || o.p == nil {
		return
	}
	C.mupdf_pdf_drop_obj(ctx.ctx, o.p)
	o.p = nil
}
