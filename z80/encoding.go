package z80

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// LookupEncoding returns the character encoding with the IANA name or alias.
func LookupEncoding(name string) (enc encoding.Encoding, err error) {
	enc, err = ianaindex.IANA.Encoding(name)
	if err != nil {
		err = ErrEncodingUnknown(name)
		return
	}
	if enc == nil {
		err = ErrEncodingUnsupported(name)
		return
	}

	return
}
