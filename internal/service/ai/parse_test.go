package ai_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"inkatlas/backend/internal/service/ai"
)

const validLandmarkJSON = `[{
	"name": {"en": "221B Baker Street", "zh": "贝克街221B"},
	"bookTitle": {"en": "Sherlock Holmes", "zh": "福尔摩斯探案集"},
	"author": {"en": "Arthur Conan Doyle", "zh": "阿瑟·柯南·道尔"},
	"quote": {"en": "The game is afoot.", "zh": "游戏开始了。"},
	"travelerNote": {"en": "Now a museum.", "zh": "现在是博物馆。"},
	"lat": 51.5237,
	"lng": -0.1585
}]`

func TestStripCodeFences(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `[{"a":1}]`, `[{"a":1}]`},
		{"json fence", "```json\n[{\"a\":1}]\n```", `[{"a":1}]`},
		{"bare fence", "```\n[{\"a\":1}]\n```", `[{"a":1}]`},
		{"surrounding whitespace", "  [1]  \n", "[1]"},
		{"empty", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ai.StripCodeFences(tc.in))
		})
	}
}

func TestParseLandmarks_Valid(t *testing.T) {
	landmarks, err := ai.ParseLandmarks([]byte(validLandmarkJSON))
	require.NoError(t, err)
	require.Len(t, landmarks, 1)
	require.Equal(t, "221B Baker Street", landmarks[0].Name.EN)
	require.InDelta(t, 51.5237, landmarks[0].Lat, 1e-9)
	require.Empty(t, landmarks[0].ID, "adapter output must not carry an ID")
}

func TestParseLandmarks_EmptyArray(t *testing.T) {
	landmarks, err := ai.ParseLandmarks([]byte(`[]`))
	require.NoError(t, err)
	require.NotNil(t, landmarks)
	require.Empty(t, landmarks)
}

func TestParseLandmarks_MalformedJSON(t *testing.T) {
	_, err := ai.ParseLandmarks([]byte(`{"not": "an array"`))
	require.ErrorIs(t, err, ai.ErrBadResponse)
}

func TestParseLandmarks_MissingField(t *testing.T) {
	// quote omitted entirely: a hard error, not a dropped record
	input := `[{
		"name": {"en": "X", "zh": "X"},
		"bookTitle": {"en": "B", "zh": "B"},
		"author": {"en": "A", "zh": "A"},
		"travelerNote": {"en": "N", "zh": "N"},
		"lat": 1, "lng": 2
	}]`
	_, err := ai.ParseLandmarks([]byte(input))
	require.ErrorIs(t, err, ai.ErrBadResponse)
	require.Contains(t, err.Error(), "quote")
}

func TestParseLandmarks_HalfEmptyLocalization(t *testing.T) {
	// Chat providers have no response schema, so a record missing one
	// language slips through the model unless the parser rejects it here.
	input := `[{
		"name": {"en": "", "zh": "贝克街221B"},
		"bookTitle": {"en": "B", "zh": "B"},
		"author": {"en": "A", "zh": "A"},
		"quote": {"en": "Q", "zh": "Q"},
		"travelerNote": {"en": "N", "zh": "N"},
		"lat": 1, "lng": 2
	}]`
	_, err := ai.ParseLandmarks([]byte(input))
	require.ErrorIs(t, err, ai.ErrBadResponse)
	require.Contains(t, err.Error(), "name")
}

func TestParseLandmarks_OutOfRangeCoordinates(t *testing.T) {
	input := `[{
		"name": {"en": "X", "zh": "X"},
		"bookTitle": {"en": "B", "zh": "B"},
		"author": {"en": "A", "zh": "A"},
		"quote": {"en": "Q", "zh": "Q"},
		"travelerNote": {"en": "N", "zh": "N"},
		"lat": 123.4, "lng": 0
	}]`
	_, err := ai.ParseLandmarks([]byte(input))
	require.ErrorIs(t, err, ai.ErrBadResponse)
}

func TestParseLandmarks_DoesNotDeduplicate(t *testing.T) {
	// upstream output is trusted verbatim aside from schema validation
	landmarks, err := ai.ParseLandmarks([]byte(validLandmarkJSON[:len(validLandmarkJSON)-1] + "," + validLandmarkJSON[1:]))
	require.NoError(t, err)
	require.Len(t, landmarks, 2)
}
