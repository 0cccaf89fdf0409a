package models

// AttributeType is the value domain of an IDM attribute.
type AttributeType string

const (
	AttributeString  AttributeType = "string"
	AttributeInteger AttributeType = "integer"
	AttributeDate    AttributeType = "date"
	AttributeFloat   AttributeType = "float"
)

// AttributeTypeFromCode maps an IDM type code to its AttributeType.
// Unknown codes are treated as strings.
func AttributeTypeFromCode(code string) AttributeType {
	switch code {
	case "3":
		return AttributeInteger
	case "7":
		return AttributeDate
	case "10":
		return AttributeFloat
	default:
		return AttributeString
	}
}

// ClassificationID is the parsed form of a PID such as "Theme_Attributes-115-0-LATEST".
type ClassificationID struct {
	FullPID    string  `json:"fullPid"`
	EntityName string  `json:"baseName"`
	ID         *int    `json:"id"`
	Version    *int    `json:"version"`
	Tag        *string `json:"tag"`
}

// AttributeRecord is a raw attribute fetched from IDM for a PID.
type AttributeRecord struct {
	Name        string        `json:"name"`
	Type        AttributeType `json:"type"`
	Qualifier   string        `json:"qualifier"`
	RawValue    string        `json:"value"`
	ParsedValue any           `json:"parsedValue"`
}

// ValueListEntry is one code/description pair of an enumerated domain.
type ValueListEntry struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// ValueList is the enumerated domain declared by one entity attribute.
type ValueList struct {
	Name        string           `json:"name"`
	DisplayName string           `json:"displayName"`
	Type        string           `json:"type"`
	Qualifier   string           `json:"qualifier"`
	Entries     []ValueListEntry `json:"values"`
}

// Lookup returns the description paired with code.
func (l ValueList) Lookup(code string) (string, bool) {
	for _, e := range l.Entries {
		if e.Code == code {
			return e.Description, true
		}
	}
	return "", false
}

// ValueLists holds the value lists of an entity keyed by attribute name.
type ValueLists map[string]ValueList

// MappedAttribute is an AttributeRecord joined with its value-list description.
// Description is nil and Mapped false when no list or entry matches.
type MappedAttribute struct {
	AttributeRecord
	Description *string `json:"codeDescription"`
	Mapped      bool    `json:"mapped"`
}
