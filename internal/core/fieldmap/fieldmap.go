// Package fieldmap infers which input columns carry the logical person
// fields. Header vocabularies in the wild are anything but fixed, so matching
// is a tolerant case-insensitive scan over a small static synonym table; a
// field with no matching column is simply absent, never an error
package fieldmap

import "strings"

// Field names a logical person field the engine cares about
type Field string

// The logical fields the mapper resolves
const (
	FieldFirstName Field = "first_name"
	FieldLastName  Field = "last_name"
	FieldEmail     Field = "email"
	FieldMobile    Field = "mobile"
	FieldPhone     Field = "phone"
)

// synonyms is the accepted-spelling table per logical field. Order is
// significant: the first synonym that matches any header wins, so the table
// must stay stable for reproducible mappings
var synonyms = map[Field][]string{
	FieldFirstName: {"first", "given", "firstname", "fname", "forename"},
	FieldLastName:  {"last", "family", "surname", "lastname", "lname"},
	FieldEmail:     {"email", "e-mail", "mail"},
	FieldMobile:    {"mobile", "cell"},
	FieldPhone:     {"phone", "tel", "contact number"},
}

// fieldOrder keeps Resolve deterministic across runs
var fieldOrder = []Field{FieldFirstName, FieldLastName, FieldEmail, FieldMobile, FieldPhone}

// Mapping resolves logical fields to source header names. An empty string
// means no column matched
type Mapping struct {
	First  string
	Last   string
	Email  string
	Mobile string
	Phone  string
}

// Header returns the resolved header for f, "" when absent
func (m Mapping) Header(f Field) string {
	switch f {
	case FieldFirstName:
		return m.First
	case FieldLastName:
		return m.Last
	case FieldEmail:
		return m.Email
	case FieldMobile:
		return m.Mobile
	case FieldPhone:
		return m.Phone
	}
	return ""
}

// Resolve inspects a header set and picks exactly one column per logical
// field. Synonyms are tried in table order and headers in source order; the
// first hit wins. Headers that match nothing are ignored
func Resolve(headers []string) Mapping {
	var m Mapping
	for _, f := range fieldOrder {
		h := firstMatch(headers, synonyms[f])
		switch f {
		case FieldFirstName:
			m.First = h
		case FieldLastName:
			m.Last = h
		case FieldEmail:
			m.Email = h
		case FieldMobile:
			m.Mobile = h
		case FieldPhone:
			m.Phone = h
		}
	}
	return m
}

// firstMatch returns the first header containing any synonym,
// case-insensitively, honoring synonym order before header order
func firstMatch(headers []string, syns []string) string {
	for _, syn := range syns {
		for _, h := range headers {
			if strings.Contains(strings.ToLower(h), syn) {
				return h
			}
		}
	}
	return ""
}
