package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// FeatureList is an ordered list of package features, stored as a JSON
// column. Encoding happens only at the store boundary.
type FeatureList []string

func (f FeatureList) Value() (driver.Value, error) {
	if f == nil {
		f = FeatureList{}
	}
	return json.Marshal(f)
}

func (f *FeatureList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*f = nil
		return nil
	case []byte:
		if len(v) == 0 {
			*f = nil
			return nil
		}
		return json.Unmarshal(v, f)
	case string:
		if v == "" {
			*f = nil
			return nil
		}
		return json.Unmarshal([]byte(v), f)
	}
	return fmt.Errorf("cannot scan %T into FeatureList", src)
}
