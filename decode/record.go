package decode

import (
	"encoding/json"

	"github.com/jmgilman/iostep/errors"
)

// Record is one repository entry from a listing.
type Record struct {
	Name string `json:"name"`
	// Description is nil when the field was absent or null.
	Description *string `json:"description,omitempty"`
	Fork        bool    `json:"fork"`
}

// DescriptionOr returns the description, or def when it is absent.
func (r Record) DescriptionOr(def string) string {
	if r.Description == nil {
		return def
	}
	return *r.Description
}

const recordSchemaSource = `[...{
	name:         string
	description?: null | string
	fork:         bool
	...
}]`

// RecordSchema is the constraint Records enforces.
var RecordSchema = MustSchema("records", recordSchemaSource)

// Records decodes b as a JSON array of Records. b must be valid UTF-8
// (errors.CodeEncoding otherwise) and satisfy RecordSchema
// (errors.CodeSchemaFailed otherwise). On any error no records are returned.
func Records(b []byte) ([]Record, error) {
	if _, err := Text(b); err != nil {
		return nil, err
	}
	if err := RecordSchema.Validate(b); err != nil {
		return nil, err
	}

	records := []Record{}
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, errors.Wrap(err, errors.CodeSchemaFailed, "failed to decode records")
	}
	return records, nil
}

// EncodeRecords renders records as a JSON array. Absent descriptions are
// omitted. A nil slice encodes as [].
func EncodeRecords(records []Record) ([]byte, error) {
	if records == nil {
		records = []Record{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to encode records")
	}
	return data, nil
}
