package store

import (
	"fmt"
	"time"
)

// Key addresses one attribute of a cluster instance.
type Key struct {
	Endpoint  uint8
	Cluster   string
	Attribute string
}

func (k Key) bytes() []byte {
	return []byte(fmt.Sprintf("%03d/%s/%s", k.Endpoint, k.Cluster, k.Attribute))
}

func clusterPrefix(endpoint uint8, cluster string) []byte {
	return []byte(fmt.Sprintf("%03d/%s/", endpoint, cluster))
}

// Attribute is a persisted attribute value in its ZCL wire form.
type Attribute struct {
	Key       `json:"-"`
	DataType  uint8     `json:"data_type"`
	Data      []byte    `json:"data"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Reporting is a persisted reporting configuration for one attribute.
// MinChange holds the reportable change in wire form, empty for discrete
// data types.
type Reporting struct {
	Key         `json:"-"`
	AttributeID uint16 `json:"attribute_id"`
	DataType    uint8  `json:"data_type"`
	MinInterval uint16 `json:"min_interval"`
	MaxInterval uint16 `json:"max_interval"`
	MinChange   []byte `json:"min_change,omitempty"`
}
