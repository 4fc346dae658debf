package extract

import (
	"fmt"
	"log/slog"

	"github.com/brokerdesk/leadparse/app/lead"
)

// Dispatcher orchestrates classify -> extract -> map for one email body,
// recovering extraction faults with a degraded retry on the tag-stripped
// text projection. It always produces a schema-complete Lead; extraction
// failure is a data-quality signal, never a request failure.
type Dispatcher struct {
	registry Registry
	generic  Extractor
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		registry: NewRegistry(),
		generic:  Generic{},
	}
}

func (d *Dispatcher) Run(body string) lead.Lead {
	in := NewInput(body)

	source := Classify(in.Text)
	if source == lead.SourceUnknown {
		// Vendor domains sometimes appear only inside href attributes,
		// which the text projection strips.
		source = Classify(in.Raw)
	}

	if source == lead.SourceUnknown {
		flat, _ := safeExtract(d.generic, in)
		return lead.Map(lead.SourceUnknown, flat, "")
	}

	extractor := d.registry[source]

	flat, err := safeExtract(extractor, in)
	if err == nil {
		return lead.Map(source, flat, "")
	}
	slog.Debug("Primary extraction failed, retrying on text projection",
		"source", source, "error", err)

	flat, retryErr := safeExtract(extractor, NewInput(in.Text))
	if retryErr == nil {
		return lead.Map(source, flat, fmt.Sprintf("fallback_text_ok: %v", err))
	}
	slog.Warn("Extraction failed on both projections",
		"source", source, "error", err, "retry_error", retryErr)

	return lead.Map(source, lead.Flat{},
		fmt.Sprintf("parse_failed: %v; fallback_failed: %v", err, retryErr))
}

// safeExtract converts extractor panics on pathological input into
// errors so the retry path can run.
func safeExtract(e Extractor, in *Input) (flat lead.Flat, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("extractor panic: %v", r)
		}
	}()
	return e.Extract(in)
}
