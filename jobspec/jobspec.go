// Package jobspec loads media-generation job specifications and provides
// helpers for preprocessing the arguments of operations that consume
// them. A job spec is an arbitrary JSON document; this package preserves
// its key order on load and performs no schema validation, which is
// deferred to the caller.
package jobspec

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/iancoleman/orderedmap"
)

// Private constants (alphabetical)
// None currently defined

// Public constants (alphabetical)
// None currently defined

// Private functions (alphabetical)
// None currently defined

// Public functions (alphabetical)

// CheckSerializable verifies that a value survives JSON encoding. It
// returns an error that identifies the offending value when the value
// cannot be encoded, and nil otherwise.
func CheckSerializable(value any) error {
	if _, err := json.Marshal(value); err != nil {
		return fmt.Errorf("%v is not json serializable: %w", value, err)
	}
	return nil
}

// ParseFile reads a UTF-8 JSON job specification from path and returns it
// as an order-preserving key-value mapping. A document that is not valid
// JSON, or whose top level is not an object, yields a parse error. File
// read errors are returned unmodified.
func ParseFile(path string) (*orderedmap.OrderedMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	spec := orderedmap.New()
	if err := json.Unmarshal(data, spec); err != nil {
		return nil, fmt.Errorf("error parsing spec file %s: %w", path, err)
	}

	return spec, nil
}
