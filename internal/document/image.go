package document

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// MaxImageBytes caps a single pending upload after base64 decoding.
const MaxImageBytes = 5 << 20

var (
	ErrNotImage      = errors.New("document: upload is not an image")
	ErrImageTooLarge = errors.New("document: image exceeds the size limit")
	ErrBadDataURI    = errors.New("document: malformed data URI")
)

// ImageKind tells the three states of an image field apart.
type ImageKind uint8

const (
	ImageEmpty ImageKind = iota
	// ImagePending is a local upload not yet accepted by the backend.
	ImagePending
	// ImageRemote is an opaque reference the backend assigned to a stored file.
	ImageRemote
)

// Image is one document image field. The zero value is empty.
type Image struct {
	kind ImageKind
	ref  string
	data []byte
	mime string
}

func RemoteImage(ref string) Image {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Image{}
	}
	return Image{kind: ImageRemote, ref: ref}
}

// PendingImage validates raw upload bytes: they must sniff as an image and
// fit within MaxImageBytes.
func PendingImage(data []byte) (Image, error) {
	if len(data) == 0 {
		return Image{}, nil
	}
	if len(data) > MaxImageBytes {
		return Image{}, ErrImageTooLarge
	}
	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return Image{}, fmt.Errorf("%w: detected %s", ErrNotImage, mt.String())
	}
	return Image{kind: ImagePending, data: bytes.Clone(data), mime: mt.String()}, nil
}

// ParseDataURI decodes "data:<mime>;base64,<payload>" into a pending image.
// The declared media type is ignored in favour of the sniffed one.
func ParseDataURI(s string) (Image, error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return Image{}, ErrBadDataURI
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok || !strings.HasSuffix(meta, ";base64") {
		return Image{}, ErrBadDataURI
	}
	if base64.StdEncoding.DecodedLen(len(payload)) > MaxImageBytes+3 {
		return Image{}, ErrImageTooLarge
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return Image{}, fmt.Errorf("%w: %v", ErrBadDataURI, err)
	}
	return PendingImage(raw)
}

// ParseWire classifies a string as sent over the wire or round-tripped
// through a form: empty, a data URI (pending) or anything else (remote).
func ParseWire(s string) (Image, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return Image{}, nil
	case strings.HasPrefix(s, "data:"):
		return ParseDataURI(s)
	default:
		return RemoteImage(s), nil
	}
}

func (i Image) Kind() ImageKind { return i.kind }
func (i Image) IsEmpty() bool   { return i.kind == ImageEmpty }
func (i Image) IsPending() bool { return i.kind == ImagePending }
func (i Image) IsRemote() bool  { return i.kind == ImageRemote }

// Ref is the backend reference of a remote image.
func (i Image) Ref() string { return i.ref }

// MIME is the sniffed media type of a pending image.
func (i Image) MIME() string { return i.mime }

func (i Image) Size() int { return len(i.data) }

// DataURI encodes a pending image for the wire and for previews.
func (i Image) DataURI() string {
	if i.kind != ImagePending {
		return ""
	}
	return "data:" + i.mime + ";base64," + base64.StdEncoding.EncodeToString(i.data)
}

// Wire is the string form sent to the backend.
func (i Image) Wire() string {
	switch i.kind {
	case ImagePending:
		return i.DataURI()
	case ImageRemote:
		return i.ref
	}
	return ""
}

func (i Image) MarshalJSON() ([]byte, error) { return json.Marshal(i.Wire()) }

func (i *Image) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*i = Image{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	img, err := ParseWire(s)
	if err != nil {
		return err
	}
	*i = img
	return nil
}
