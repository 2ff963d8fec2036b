package scrapebench

// Field identifies one of the data points extracted from a page.
type Field string

// Field constants, listed in enumeration order.
const (
	FieldTitle          Field = "title"
	FieldPostingDate    Field = "postingDate"
	FieldPostingUser    Field = "postingUser"
	FieldPostingUserURL Field = "postingUserUrl"
)

// Fields returns every field in enumeration order.
// The order determines the position of values in a Result.
func Fields() []Field {
	return []Field{
		FieldTitle,
		FieldPostingDate,
		FieldPostingUser,
		FieldPostingUserURL,
	}
}

// Validate returns EINVALID if f is not a known field.
func (f Field) Validate() error {
	switch f {
	case FieldTitle, FieldPostingDate, FieldPostingUser, FieldPostingUserURL:
		return nil
	}
	return Errorf(EINVALID, "unknown field %q", string(f))
}

// ValidateFields checks that fields is a non-empty list of known fields
// with no duplicates.
func ValidateFields(fields []Field) error {
	if len(fields) == 0 {
		return Errorf(EINVALID, "at least one field required")
	}
	seen := make(map[Field]bool, len(fields))
	for _, f := range fields {
		if err := f.Validate(); err != nil {
			return err
		}
		if seen[f] {
			return Errorf(EINVALID, "duplicate field %q", string(f))
		}
		seen[f] = true
	}
	return nil
}

// PagePaths returns the absolute XPath address of every field on the
// reference page. The paths are positional: they index into the page's
// div structure and stop matching as soon as that structure changes.
func PagePaths() map[Field]string {
	const article = "/html/body/div[3]/div/div[2]/div[8]/div/div"
	return map[Field]string{
		FieldTitle:          article + "/h1/text()",
		FieldPostingDate:    article + "/div[2]/text()",
		FieldPostingUser:    article + "/div[1]/a/text()",
		FieldPostingUserURL: article + "/div[1]/a/@href",
	}
}
