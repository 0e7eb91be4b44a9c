package model

// TemplateFields holds the fields pulled from a single application
// template block. Every field is independently optional; an empty
// string means the field was absent or unreadable.
type TemplateFields struct {
	Nickname    string
	AccountName string
	MTASerial   string
}

// IsEmpty reports whether no field was extracted at all.
func (f TemplateFields) IsEmpty() bool {
	return f.Nickname == "" && f.AccountName == "" && f.MTASerial == ""
}
