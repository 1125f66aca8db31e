package model

// ID identifies a record. It relates models to each other (a question's
// presentation, a session's owner) without embedding them.
type ID string

// Equal reports whether id and other name the same record. An empty ID names
// nothing, so it is never equal to any ID, not even another empty one.
func (id ID) Equal(other ID) bool {
	return id != "" && other != "" && id == other
}

// IsZero reports whether id is empty.
func (id ID) IsZero() bool {
	return id == ""
}

func (id ID) String() string {
	return string(id)
}
