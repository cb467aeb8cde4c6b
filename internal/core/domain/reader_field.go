package domain

// ReaderField is the composite key cache entries are grouped by.
// It is comparable and used directly as a map key: the reader must be the
// same identity and the field names equal.
type ReaderField struct {
	ReaderKey ReaderKey
	FieldName InternedString
}

// NewReaderField creates a ReaderField for the given reader and field.
func NewReaderField(reader ReaderKey, field string) ReaderField {
	return ReaderField{ReaderKey: reader, FieldName: NewInternedString(field)}
}

// String returns <reader>+<field>.
func (rf ReaderField) String() string {
	reader := "<nil>"
	if rf.ReaderKey != nil {
		reader = rf.ReaderKey.String()
	}
	return reader + "+" + rf.FieldName.String()
}
