package constraint

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// WriteTo encodes the system with CBOR. Canonical encoding options keep the
// output deterministic for a given system, so serialized circuits can be
// compared byte-wise.
func (s *System) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return 0, err
	}
	if err := em.NewEncoder(cw).Encode(s); err != nil {
		return cw.n, fmt.Errorf("constraint: encode system: %w", err)
	}
	return cw.n, nil
}

// ReadFrom decodes a system previously written with WriteTo.
func (s *System) ReadFrom(r io.Reader) (int64, error) {
	cr := &countingReader{r: r}
	dm, err := cbor.DecOptions{MaxArrayElements: 134217728, MaxMapPairs: 134217728}.DecMode()
	if err != nil {
		return 0, err
	}
	if err := dm.NewDecoder(cr).Decode(s); err != nil {
		return cr.n, fmt.Errorf("constraint: decode system: %w", err)
	}
	return cr.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

type countingReader struct {
	r io.Reader
	n int64
}

func (cr *countingReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	cr.n += int64(n)
	return n, err
}
