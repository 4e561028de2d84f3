package converter

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/iliyamo/tone-converter/internal/model"
)

// dummyTemplate produces the stage-one placeholder text.  The first verb is
// the original text, the second the target.
const dummyTemplate = "'%s'에 대한 '%s' 대상의 더미 변환 결과입니다. 2단계에서 실제 변환 기능이 구현될 예정입니다."

// Decode reads one JSON object from r.  Keys are matched exactly, so
// "TEXT" does not stand in for "text".  Malformed JSON, a non-object value,
// trailing data, an absent or null field and a non-string field all yield
// ErrMissingField.  A read error stays in the chain, so a body-limit
// rejection from the framework can still be matched with errors.As.
func Decode(r io.Reader) (model.ConversionRequest, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return model.ConversionRequest{}, fmt.Errorf("%w: %w", ErrMissingField, err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return model.ConversionRequest{}, fmt.Errorf("%w: %w", ErrMissingField, err)
	}
	text, err := stringField(fields, "text")
	if err != nil {
		return model.ConversionRequest{}, err
	}
	target, err := stringField(fields, "target")
	if err != nil {
		return model.ConversionRequest{}, err
	}
	return model.ConversionRequest{Text: text, Target: target}, nil
}

// stringField returns the string stored under key.  An absent key or a JSON
// null leaves the result nil; Convert rejects that.
func stringField(fields map[string]json.RawMessage, key string) (*string, error) {
	raw, ok := fields[key]
	if !ok || string(raw) == "null" {
		return nil, nil
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("%w: field %q: %w", ErrMissingField, key, err)
	}
	return &v, nil
}

// Convert returns the placeholder conversion for req.  It makes no external
// call and is safe for concurrent use.
func Convert(req model.ConversionRequest) (model.ConversionResponse, error) {
	if req.Text == nil || req.Target == nil {
		return model.ConversionResponse{}, ErrMissingField
	}
	text, target := *req.Text, *req.Target
	return model.ConversionResponse{
		OriginalText:  text,
		ConvertedText: fmt.Sprintf(dummyTemplate, text, target),
		Target:        target,
	}, nil
}
