package model

// ConversionRequest is the body accepted by POST /api/convert.  The fields
// are pointers so that an absent key and an explicit null can be told apart
// from an empty string: both absent and null are rejected, "" is accepted.
// Keys are matched case-sensitively by converter.Decode.
//
// Fields:
//
//	Text   – the sentence the caller wants rewritten.
//	Target – the audience or style label (e.g. "manager"); echoed back.
type ConversionRequest struct {
	Text   *string `json:"text"`
	Target *string `json:"target"`
}

// ConversionResponse is returned on a successful conversion.  It is derived
// from the request alone and never stored.
type ConversionResponse struct {
	OriginalText  string `json:"original_text"`
	ConvertedText string `json:"converted_text"`
	Target        string `json:"target"`
}

// HealthStatus is the constant body of GET /health.
type HealthStatus struct {
	Status string `json:"status"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}
