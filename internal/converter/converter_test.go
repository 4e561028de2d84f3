package converter

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/tone-converter/internal/model"
)

func strPtr(s string) *string { return &s }

func TestConvertPlaceholder(t *testing.T) {
	resp, err := Convert(model.ConversionRequest{Text: strPtr("hello"), Target: strPtr("manager")})
	require.NoError(t, err)

	assert.Equal(t, model.ConversionResponse{
		OriginalText:  "hello",
		ConvertedText: "'hello'에 대한 'manager' 대상의 더미 변환 결과입니다. 2단계에서 실제 변환 기능이 구현될 예정입니다.",
		Target:        "manager",
	}, resp)
}

func TestConvertEchoesInput(t *testing.T) {
	cases := []struct{ text, target string }{
		{"회의 자료 좀 빨리 주세요", "팀장님"},
		{"", ""},
		{"100% done", "%s"},
	}
	for _, tc := range cases {
		resp, err := Convert(model.ConversionRequest{Text: strPtr(tc.text), Target: strPtr(tc.target)})
		require.NoError(t, err)
		assert.Equal(t, tc.text, resp.OriginalText)
		assert.Equal(t, tc.target, resp.Target)
		assert.True(t, strings.HasPrefix(resp.ConvertedText, "'"+tc.text+"'에 대한 '"+tc.target+"' 대상의"))
	}
}

func TestConvertMissingFields(t *testing.T) {
	cases := map[string]model.ConversionRequest{
		"empty":          {},
		"missing target": {Text: strPtr("hi")},
		"missing text":   {Target: strPtr("manager")},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Convert(req)
			assert.ErrorIs(t, err, ErrMissingField)
		})
	}
}

func TestDecode(t *testing.T) {
	req, err := Decode(strings.NewReader(`{"text":"hi","target":"peer","extra":1}`))
	require.NoError(t, err)
	require.NotNil(t, req.Text)
	require.NotNil(t, req.Target)
	assert.Equal(t, "hi", *req.Text)
	assert.Equal(t, "peer", *req.Target)

	req, err = Decode(strings.NewReader(`{"text":null,"target":"peer"}`))
	require.NoError(t, err)
	assert.Nil(t, req.Text)
}

func TestDecodeMatchesKeysExactly(t *testing.T) {
	for _, body := range []string{
		`{"TEXT":"hi","Target":"manager"}`,
		`{"Text":"hi","target":"manager"}`,
	} {
		req, err := Decode(strings.NewReader(body))
		require.NoError(t, err, "body %q", body)

		_, err = Convert(req)
		assert.ErrorIs(t, err, ErrMissingField, "body %q", body)
	}
}

func TestDecodeRejectsBadBodies(t *testing.T) {
	bodies := []string{
		``,
		`not json`,
		`{"text":"hi"`,
		`["hi","manager"]`,
		`"hello"`,
		`{"text":1,"target":"manager"}`,
		`{"text":"a","target":"b"} trailing`,
		`{"text":"hi","target":"manager"}}`,
		`{"text":"hi","target":"manager"}]`,
		`{"text":"hi","target":"manager"} {"x":1}`,
	}
	for _, body := range bodies {
		_, err := Decode(strings.NewReader(body))
		assert.True(t, errors.Is(err, ErrMissingField), "body %q: %v", body, err)
	}
}
