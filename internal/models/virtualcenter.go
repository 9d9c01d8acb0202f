package models

// VirtualCenter is a single row of GET /api/virtualcenters.
// Every field is optional; an empty string means the server did not send it.
type VirtualCenter struct {
	ID      string `json:"id,omitempty" yaml:"id,omitempty"`
	Name    string `json:"name,omitempty" yaml:"name,omitempty"`
	Status  string `json:"status,omitempty" yaml:"status,omitempty"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	FQDN    string `json:"fqdn,omitempty" yaml:"fqdn,omitempty"`
}

// Key identifies the row for display: the id, or the name when the id is absent.
func (v VirtualCenter) Key() string {
	if v.ID != "" {
		return v.ID
	}
	return v.Name
}

type VirtualCenterList struct {
	Items []VirtualCenter `json:"items" yaml:"items"`
}
