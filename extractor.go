package scrapebench

// Extractor extracts the known fields from the Document it was built with.
type Extractor interface {
	// Name identifies the extraction strategy in reports.
	Name() string

	// Extract returns the values found in the document, in field order.
	// Fields that are not found are skipped.
	Extract() (Result, error)
}

// LookupFunc finds the value of a single field.
// It returns ENOTFOUND when the field is absent from the document.
type LookupFunc func(f Field) (Value, error)

// Collect looks up each field in order and returns the values found.
// ENOTFOUND lookups are skipped; any other error aborts the extraction.
func Collect(fields []Field, lookup LookupFunc) (Result, error) {
	result := make(Result, 0, len(fields))
	for _, f := range fields {
		v, err := lookup(f)
		if ErrorCode(err) == ENOTFOUND {
			continue
		} else if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, nil
}
