package models

type ETag string

func (e ETag) String() string {
	return string(e)
}

// Quoted returns the ETag in the form used by the ETag HTTP header.
func (e ETag) Quoted() string {
	return `"` + string(e) + `"`
}
