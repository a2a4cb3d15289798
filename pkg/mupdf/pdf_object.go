package mupdf

import (
	"runtime"

	"github.com/fitzgo/mupdf-go/pkg/mupdf/internal/ffi"
)

// PDFObject is a node of the PDF object graph: null, boolean, number,
// string, name, array, dictionary, stream or indirect reference. Every
// PDFObject handed out by this package is Owned, including the results
// of array, dictionary and resolve getters.
type PDFObject struct {
	ctx *Context
	h   *ffi.PDFObject
}

func newPDFObject(c *Context, h *ffi.PDFObject) *PDFObject {
	o := &PDFObject{ctx: c, h: h}
	runtime.SetFinalizer(o, func(o *PDFObject) { o.Drop() })
	return o
}

// NewPDFNull returns the null object.
func NewPDFNull(c *Context) *PDFObject {
	return newPDFObject(c, ffi.NewPDFNull())
}

// NewPDFBool returns a boolean object.
func NewPDFBool(c *Context, b bool) *PDFObject {
	return newPDFObject(c, ffi.NewPDFBool(b))
}

// NewPDFInt returns an integer object.
func NewPDFInt(c *Context, i int64) (*PDFObject, error) {
	fc, err := c.handle()
	if err != nil {
		return nil, err
	}
	h, err := ffi.NewPDFInt(fc, i)
	if err != nil {
		return nil, remapError(err)
	}
	return newPDFObject(c, h), nil
}

// NewPDFReal returns a real (float) object.
func NewPDFReal(c *Context, f float32) (*PDFObject, error) {
	fc, err := c.handle()
	if err != nil {
		return nil, err
	}
	h, err := ffi.NewPDFReal(fc, f)
	if err != nil {
		return nil, remapError(err)
	}
	return newPDFObject(c, h), nil
}

// NewPDFString returns a text string object.
func NewPDFString(c *Context, s string) (*PDFObject, error) {
	fc, err := c.handle()
	if err != nil {
		return nil, err
	}
	h, err := ffi.NewPDFString(fc, s)
	if err != nil {
		return nil, remapError(err)
	}
	return newPDFObject(c, h), nil
}

// NewPDFName returns a name object, written /name in PDF syntax.
func NewPDFName(c *Context, name string) (*PDFObject, error) {
	fc, err := c.handle()
	if err != nil {
		return nil, err
	}
	h, err := ffi.NewPDFName(fc, name)
	if err != nil {
		return nil, remapError(err)
	}
	return newPDFObject(c, h), nil
}

// NewPDFIndirect returns a reference to object num/gen in pdf.
func NewPDFIndirect(c *Context, pdf *PDFDocument, num, gen int) (*PDFObject, error) {
	fc, err := c.handle()
	if err != nil {
		return nil, err
	}
	if pdf == nil || pdf.h == nil {
		return nil, ErrClosed
	}
	h, err := ffi.NewPDFIndirect(fc, pdf.h, num, gen)
	if err != nil {
		return nil, remapError(err)
	}
	return newPDFObject(c, h), nil
}

// NewPDFArray returns an empty array bound to pdf.
func NewPDFArray(c *Context, pdf *PDFDocument, capacity int) (*PDFObject, error) {
	fc, err := c.handle()
	if err != nil {
		return nil, err
	}
	if pdf == nil || pdf.h == nil {
		return nil, ErrClosed
	}
	h, err := ffi.NewPDFArray(fc, pdf.h, capacity)
	if err != nil {
		return nil, remapError(err)
	}
	return newPDFObject(c, h), nil
}

// NewPDFDict returns an empty dictionary bound to pdf.
func NewPDFDict(c *Context, pdf *PDFDocument, capacity int) (*PDFObject, error) {
	fc, err := c.handle()
	if err != nil {
		return nil, err
	}
	if pdf == nil || pdf.h == nil {
		return nil, ErrClosed
	}
	h, err := ffi.NewPDFDict(fc, pdf.h, capacity)
	if err != nil {
		return nil, remapError(err)
	}
	return newPDFObject(c, h), nil
}

// PDFObjectFromString parses src as PDF object syntax, such as
// "<< /Type /Page >>".
func PDFObjectFromString(c *Context, pdf *PDFDocument, src string) (*PDFObject, error) {
	fc, err := c.handle()
	if err != nil {
		return nil, err
	}
	if pdf == nil || pdf.h == nil {
		return nil, ErrClosed
	}
	h, err := ffi.NewPDFObjectFromString(fc, pdf.h, src)
	if err != nil {
		return nil, remapError(err)
	}
	return newPDFObject(c, h), nil
}

func (o *PDFObject) live() (*ffi.Context, error) {
	if o == nil || o.h == nil {
		return nil, ErrClosed
	}
	return o.ctx.handle()
}

func (o *PDFObject) is(pred func(*ffi.PDFObject, *ffi.Context) (bool, error)) (bool, error) {
	fc, err := o.live()
	if err != nil {
		return false, err
	}
	ok, err := pred(o.h, fc)
	return ok, remapError(err)
}

// IsNull reports whether the object is null.
func (o *PDFObject) IsNull() (bool, error) { return o.is((*ffi.PDFObject).IsNull) }

// IsBool reports whether the object is a boolean.
func (o *PDFObject) IsBool() (bool, error) { return o.is((*ffi.PDFObject).IsBool) }

// IsInt reports whether the object is an integer.
func (o *PDFObject) IsInt() (bool, error) { return o.is((*ffi.PDFObject).IsInt) }

// IsReal reports whether the object is a real.
func (o *PDFObject) IsReal() (bool, error) { return o.is((*ffi.PDFObject).IsReal) }

// IsNumber reports whether the object is an integer or real.
func (o *PDFObject) IsNumber() (bool, error) { return o.is((*ffi.PDFObject).IsNumber) }

// IsString reports whether the object is a string.
func (o *PDFObject) IsString() (bool, error) { return o.is((*ffi.PDFObject).IsString) }

// IsName reports whether the object is a name.
func (o *PDFObject) IsName() (bool, error) { return o.is((*ffi.PDFObject).IsName) }

// IsArray reports whether the object is an array.
func (o *PDFObject) IsArray() (bool, error) { return o.is((*ffi.PDFObject).IsArray) }

// IsDict reports whether the object is a dictionary.
func (o *PDFObject) IsDict() (bool, error) { return o.is((*ffi.PDFObject).IsDict) }

// IsStream reports whether the object is a stream.
func (o *PDFObject) IsStream() (bool, error) { return o.is((*ffi.PDFObject).IsStream) }

// IsIndirect reports whether the object is an indirect reference.
func (o *PDFObject) IsIndirect() (bool, error) { return o.is((*ffi.PDFObject).IsIndirect) }

// Bool reads the object as a boolean.
func (o *PDFObject) Bool() (bool, error) {
	fc, err := o.live()
	if err != nil {
		return false, err
	}
	v, err := o.h.ToBool(fc)
	return v, remapError(err)
}

// Int reads the object as an integer.
func (o *PDFObject) Int() (int64, error) {
	fc, err := o.live()
	if err != nil {
		return 0, err
	}
	v, err := o.h.ToInt(fc)
	return v, remapError(err)
}

// Float reads the object as a float; integers widen.
func (o *PDFObject) Float() (float32, error) {
	fc, err := o.live()
	if err != nil {
		return 0, err
	}
	v, err := o.h.ToFloat(fc)
	return v, remapError(err)
}

// IndirectNum reads the object number of an indirect reference.
func (o *PDFObject) IndirectNum() (int, error) {
	fc, err := o.live()
	if err != nil {
		return 0, err
	}
	v, err := o.h.ToIndirect(fc)
	return v, remapError(err)
}

// Text reads the object as a text string, decoding PDF encodings to
// UTF-8.
func (o *PDFObject) Text() (string, error) {
	fc, err := o.live()
	if err != nil {
		return "", err
	}
	v, err := o.h.ToString(fc)
	return v, remapError(err)
}

// Name reads the object as a name.
func (o *PDFObject) Name() (string, error) {
	fc, err := o.live()
	if err != nil {
		return "", err
	}
	v, err := o.h.ToName(fc)
	return v, remapError(err)
}

// Bytes reads the raw bytes of a string object.
func (o *PDFObject) Bytes() ([]byte, error) {
	fc, err := o.live()
	if err != nil {
		return nil, err
	}
	v, err := o.h.ToBytes(fc)
	return v, remapError(err)
}

// Resolve follows an indirect reference to its target object.
// Non-reference objects resolve to themselves.
func (o *PDFObject) Resolve() (*PDFObject, error) {
	fc, err := o.live()
	if err != nil {
		return nil, err
	}
	h, err := o.h.ResolveIndirect(fc)
	if err != nil {
		return nil, remapError(err)
	}
	return newPDFObject(o.ctx, h), nil
}

// Len reports the element count of an array, zero for other kinds.
func (o *PDFObject) Len() (int, error) {
	fc, err := o.live()
	if err != nil {
		return 0, err
	}
	n, err := o.h.ArrayLen(fc)
	return n, remapError(err)
}

// Get returns array element i.
func (o *PDFObject) Get(i int) (*PDFObject, error) {
	fc, err := o.live()
	if err != nil {
		return nil, err
	}
	h, err := o.h.ArrayGet(fc, i)
	if err != nil {
		return nil, remapError(err)
	}
	return newPDFObject(o.ctx, h), nil
}

// Put replaces array element i with item.
func (o *PDFObject) Put(i int, item *PDFObject) error {
	fc, err := o.live()
	if err != nil {
		return err
	}
	if item == nil || item.h == nil {
		return ErrClosed
	}
	return remapError(o.h.ArrayPut(fc, i, item.h))
}

// Push appends item to an array.
func (o *PDFObject) Push(item *PDFObject) error {
	fc, err := o.live()
	if err != nil {
		return err
	}
	if item == nil || item.h == nil {
		return ErrClosed
	}
	return remapError(o.h.ArrayPush(fc, item.h))
}

// Delete removes array element i.
func (o *PDFObject) Delete(i int) error {
	fc, err := o.live()
	if err != nil {
		return err
	}
	return remapError(o.h.ArrayDelete(fc, i))
}

// DictLen reports the entry count of a dictionary.
func (o *PDFObject) DictLen() (int, error) {
	fc, err := o.live()
	if err != nil {
		return 0, err
	}
	n, err := o.h.DictLen(fc)
	return n, remapError(err)
}

// DictKey returns the key of dictionary entry i.
func (o *PDFObject) DictKey(i int) (*PDFObject, error) {
	fc, err := o.live()
	if err != nil {
		return nil, err
	}
	h, err := o.h.DictGetKey(fc, i)
	if err != nil {
		return nil, remapError(err)
	}
	return newPDFObject(o.ctx, h), nil
}

// DictVal returns the value of dictionary entry i.
func (o *PDFObject) DictVal(i int) (*PDFObject, error) {
	fc, err := o.live()
	if err != nil {
		return nil, err
	}
	h, err := o.h.DictGetVal(fc, i)
	if err != nil {
		return nil, remapError(err)
	}
	return newPDFObject(o.ctx, h), nil
}

// DictGet looks key up in a dictionary. A missing key yields the null
// object.
func (o *PDFObject) DictGet(key *PDFObject) (*PDFObject, error) {
	fc, err := o.live()
	if err != nil {
		return nil, err
	}
	if key == nil || key.h == nil {
		return nil, ErrClosed
	}
	h, err := o.h.DictGet(fc, key.h)
	if err != nil {
		return nil, remapError(err)
	}
	return newPDFObject(o.ctx, h), nil
}

// DictGetInheritable looks key up in a dictionary, walking Parent
// links as the page tree does.
func (o *PDFObject) DictGetInheritable(key *PDFObject) (*PDFObject, error) {
	fc, err := o.live()
	if err != nil {
		return nil, err
	}
	if key == nil || key.h == nil {
		return nil, ErrClosed
	}
	h, err := o.h.DictGetInheritable(fc, key.h)
	if err != nil {
		return nil, remapError(err)
	}
	return newPDFObject(o.ctx, h), nil
}

// DictPut sets key to value in a dictionary.
func (o *PDFObject) DictPut(key, value *PDFObject) error {
	fc, err := o.live()
	if err != nil {
		return err
	}
	if key == nil || key.h == nil || value == nil || value.h == nil {
		return ErrClosed
	}
	return remapError(o.h.DictPut(fc, key.h, value.h))
}

// DictDelete removes key from a dictionary.
func (o *PDFObject) DictDelete(key *PDFObject) error {
	fc, err := o.live()
	if err != nil {
		return err
	}
	if key == nil || key.h == nil {
		return ErrClosed
	}
	return remapError(o.h.DictDelete(fc, key.h))
}

// ReadStream returns the decoded (uncompressed) stream contents.
func (o *PDFObject) ReadStream() ([]byte, error) {
	return o.readStreamWith((*ffi.PDFObject).ReadStream)
}

// ReadRawStream returns the stream contents as stored, compressed.
func (o *PDFObject) ReadRawStream() ([]byte, error) {
	return o.readStreamWith((*ffi.PDFObject).ReadRawStream)
}

func (o *PDFObject) readStreamWith(read func(*ffi.PDFObject, *ffi.Context) (*ffi.Buffer, error)) ([]byte, error) {
	fc, err := o.live()
	if err != nil {
		return nil, err
	}
	buf, err := read(o.h, fc)
	if err != nil {
		return nil, remapError(err)
	}
	defer buf.Drop(fc)
	data, err := buf.Bytes(fc)
	return data, remapError(err)
}

// WriteObject replaces the object the receiver's indirect reference
// points at. The receiver must be bound to a document.
func (o *PDFObject) WriteObject(obj *PDFObject) error {
	fc, err := o.live()
	if err != nil {
		return err
	}
	if obj == nil || obj.h == nil {
		return ErrClosed
	}
	return remapError(o.h.WriteObject(fc, obj.h))
}

// WriteStreamBytes replaces the stream contents of the object the
// receiver points at. compressed marks data as already deflated.
func (o *PDFObject) WriteStreamBytes(data []byte, compressed bool) error {
	fc, err := o.live()
	if err != nil {
		return err
	}
	buf, err := ffi.NewBufferFromBytes(fc, data)
	if err != nil {
		return remapError(err)
	}
	defer buf.Drop(fc)
	return remapError(o.h.WriteStreamBuffer(fc, buf, compressed))
}

// String serializes the object in PDF syntax. tight drops decorative
// whitespace; ascii escapes binary strings.
func (o *PDFObject) String(tight, ascii bool) (string, error) {
	fc, err := o.live()
	if err != nil {
		return "", err
	}
	s, err := o.h.String(fc, tight, ascii)
	return s, remapError(err)
}

// Clone deep-copies the object graph under the receiver.
func (o *PDFObject) Clone() (*PDFObject, error) {
	fc, err := o.live()
	if err != nil {
		return nil, err
	}
	h, err := o.h.Clone(fc)
	if err != nil {
		return nil, remapError(err)
	}
	return newPDFObject(o.ctx, h), nil
}

// Drop releases the object.
func (o *PDFObject) Drop() {
	if o == nil || o.h == nil {
		return
	}
	runtime.SetFinalizer(o, nil)
	h := o.h
	o.h = nil
	o.ctx.dropNative("pdf object", func(fc *ffi.Context) { h.Drop(fc) })
}
