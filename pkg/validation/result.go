package validation

import "encoding/json"

// Result is the outcome of validating one language package. It is a tagged
// union: Valid discriminates, and exactly one variant shows up in the JSON
// encoding. The record is flat; the only nesting is the sentence_types string
// array.
type Result struct {
	Valid bool

	// Success fields, populated only when Valid is true.
	Language      string
	Name          string
	SentenceTypes []string

	// Failure fields, populated only when Valid is false.
	Error     string
	ErrorType string
}

type successRecord struct {
	Valid         bool     `json:"valid"`
	Language      string   `json:"language"`
	Name          string   `json:"name"`
	SentenceTypes []string `json:"sentence_types"`
}

type failureRecord struct {
	Valid     bool   `json:"valid"`
	Error     string `json:"error"`
	ErrorType string `json:"error_type"`
}

// MarshalJSON emits only the populated variant. Success always carries all
// three language fields, with sentence_types encoded as [] rather than null
// for a language without sentence types.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.Valid {
		types := r.SentenceTypes
		if types == nil {
			types = []string{}
		}
		return json.Marshal(successRecord{
			Valid:         true,
			Language:      r.Language,
			Name:          r.Name,
			SentenceTypes: types,
		})
	}
	return json.Marshal(failureRecord{
		Valid:     false,
		Error:     r.Error,
		ErrorType: r.ErrorType,
	})
}

// UnmarshalJSON accepts either variant and normalizes the struct so the
// fields of the other variant stay zero.
func (r *Result) UnmarshalJSON(data []byte) error {
	var record struct {
		Valid         bool     `json:"valid"`
		Language      string   `json:"language"`
		Name          string   `json:"name"`
		SentenceTypes []string `json:"sentence_types"`
		Error         string   `json:"error"`
		ErrorType     string   `json:"error_type"`
	}
	if err := json.Unmarshal(data, &record); err != nil {
		return err
	}

	if record.Valid {
		*r = Result{
			Valid:         true,
			Language:      record.Language,
			Name:          record.Name,
			SentenceTypes: record.SentenceTypes,
		}
		return nil
	}
	*r = Result{
		Valid:     false,
		Error:     record.Error,
		ErrorType: record.ErrorType,
	}
	return nil
}
