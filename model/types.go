package model

// CategoryField selects one of the string classification axes on a Network.
type CategoryField string

// Category axes available for aggregation. The names match the registry's
// JSON field names so callers can route request parameters straight through.
const (
	FieldInfoType      CategoryField = "info_type"
	FieldPolicyGeneral CategoryField = "policy_general"
	FieldInfoScope     CategoryField = "info_scope"
)

// MetricField selects one of the numeric count fields on a Network.
type MetricField string

// Numeric fields available for correlation and exact matching.
const (
	FieldASN           MetricField = "asn"
	FieldInfoPrefixes4 MetricField = "info_prefixes4"
	FieldInfoPrefixes6 MetricField = "info_prefixes6"
	FieldIXCount       MetricField = "ix_count"
	FieldFacCount      MetricField = "fac_count"
)

// Network is a single registry entry.
//
// ID is the stable identifier and the only required field. All other fields
// are optional; nil means the field was absent from the source record.
// Networks are immutable once a snapshot is published and must not be
// modified by callers.
type Network struct {
	ID            int64   `json:"id"`
	Name          *string `json:"name,omitempty"`
	AKA           *string `json:"aka,omitempty"`
	ASN           *int64  `json:"asn,omitempty"`
	Website       *string `json:"website,omitempty"`
	InfoType      *string `json:"info_type,omitempty"`
	PolicyGeneral *string `json:"policy_general,omitempty"`
	InfoScope     *string `json:"info_scope,omitempty"`
	InfoPrefixes4 *int64  `json:"info_prefixes4,omitempty"`
	InfoPrefixes6 *int64  `json:"info_prefixes6,omitempty"`
	IXCount       *int64  `json:"ix_count,omitempty"`
	FacCount      *int64  `json:"fac_count,omitempty"`
	Status        *string `json:"status,omitempty"`
}

// Category returns the value of the selected classification axis.
// ok is false when the field was absent from the source record.
func (n *Network) Category(f CategoryField) (value string, ok bool) {
	var p *string
	switch f {
	case FieldInfoType:
		p = n.InfoType
	case FieldPolicyGeneral:
		p = n.PolicyGeneral
	case FieldInfoScope:
		p = n.InfoScope
	}
	if p == nil {
		return "", false
	}
	return *p, true
}

// Metric returns the value of the selected numeric field.
// ok is false when the field was absent from the source record.
func (n *Network) Metric(f MetricField) (value int64, ok bool) {
	var p *int64
	switch f {
	case FieldASN:
		p = n.ASN
	case FieldInfoPrefixes4:
		p = n.InfoPrefixes4
	case FieldInfoPrefixes6:
		p = n.InfoPrefixes6
	case FieldIXCount:
		p = n.IXCount
	case FieldFacCount:
		p = n.FacCount
	}
	if p == nil {
		return 0, false
	}
	return *p, true
}

// DisplayName returns the network name, or the empty string when absent.
func (n *Network) DisplayName() string {
	if n.Name == nil {
		return ""
	}
	return *n.Name
}
