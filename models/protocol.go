package models

// ProtocolType is the token standard filter used by token scoped endpoints
type ProtocolType string

const (
	Token20   ProtocolType = "token_20"
	Token721  ProtocolType = "token_721"
	Token1155 ProtocolType = "token_1155"
)

// ProtocolTypes lists every known token standard
var ProtocolTypes = []ProtocolType{Token20, Token721, Token1155}

func (p ProtocolType) String() string {
	return string(p)
}

// Valid reports whether p is one of the known token standards
func (p ProtocolType) Valid() bool {
	for _, known := range ProtocolTypes {
		if p == known {
			return true
		}
	}
	return false
}
