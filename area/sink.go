package area

// Sink is the narrow contract a PDF serializer implements to receive a
// finished area tree (spec §4.7: "the area tree is the sole handoff between
// the layout engine and the PDF serializer"). Mirrors the teacher's
// backend/gfx.DrawableContour pattern of a small interface a concrete
// backend implements, rather than the layout engine depending on any
// concrete serializer type. The serializer itself is out of scope (spec
// §6 "Output").
type Sink interface {
	// Page is called once per finished page, in increasing page-number
	// order within a page sequence (spec §5 "Ordering guarantees").
	Page(p *PageArea) error

	// Close is called once all pages of all page sequences have been
	// emitted, giving the sink a chance to finalize its output (e.g. write
	// a PDF cross-reference table).
	Close() error
}

// WriteAll feeds every page in order to sink, closing it when done or on
// first error.
func WriteAll(sink Sink, pages []*PageArea) error {
	for _, p := range pages {
		if err := sink.Page(p); err != nil {
			sink.Close()
			return err
		}
	}
	return sink.Close()
}
