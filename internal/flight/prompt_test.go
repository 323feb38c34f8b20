package flight

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestNormalizeFlightNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"lh456 ", "LH456"},
		{" u a 870", "UA870"},
		{"ba\t249\n", "BA249"},
		{"ZZ000", "ZZ000"},
		{"   ", ""},
		{"not-a-flight", "NOT-A-FLIGHT"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeFlightNumber(tt.in))
		})
	}
}

func TestBuildPrompt_ContainsFlightNumberAndEveryField(t *testing.T) {
	for _, fn := range []string{"LH456", "UA870", "X", "NOT-A-FLIGHT"} {
		prompt := BuildPrompt(fn)

		assert.Contains(t, prompt, fn)
		for _, f := range ReportFields {
			assert.Contains(t, prompt, "- "+f.Name+" (", "field %s missing for %s", f.Name, fn)
		}
		assert.True(t, strings.HasSuffix(prompt, "return an empty JSON object."))
		assert.Contains(t, prompt, "not necessarily real-time or accurate")
	}
}

func TestBuildTextPrompt_ContainsFallbackMarker(t *testing.T) {
	prompt := BuildTextPrompt("LH456")

	assert.Contains(t, prompt, "LH456")
	assert.Contains(t, prompt, `"ERROR:"`)
	for _, f := range ReportFields {
		assert.Contains(t, prompt, f.Name)
	}
}

func TestBuildSchema_SelfConsistent(t *testing.T) {
	schema := BuildSchema()
	require.NoError(t, schema.Validate())

	assert.Equal(t, TypeObject, schema.Type)
	assert.Len(t, schema.Properties, len(ReportFields))
	assert.Len(t, schema.Required, len(ReportFields))
	for _, name := range schema.Required {
		assert.Contains(t, schema.Properties, name)
	}
	assert.Equal(t, TypeNumber, schema.Properties["estimatedReliabilityScore"].Type)
	assert.Equal(t, TypeString, schema.Properties["flightNumber"].Type)
}

func TestBuildSchema_MatchesReportJSONTags(t *testing.T) {
	raw, err := json.Marshal(Report{})
	require.NoError(t, err)

	var keys map[string]any
	require.NoError(t, json.Unmarshal(raw, &keys))

	schema := BuildSchema()
	assert.Len(t, keys, len(schema.Properties))
	for key := range keys {
		assert.Contains(t, schema.Properties, key)
	}
}

func TestSchema_GenAI(t *testing.T) {
	converted := BuildSchema().GenAI()

	assert.Equal(t, genai.TypeObject, converted.Type)
	assert.ElementsMatch(t, BuildSchema().Required, converted.Required)
	for _, f := range ReportFields {
		require.Contains(t, converted.Properties, f.Name)
		assert.Equal(t, genai.Type(f.Kind), converted.Properties[f.Name].Type)
	}
}

func TestSchema_ValidateRejectsUndeclaredRequired(t *testing.T) {
	schema := &Schema{
		Type:       TypeObject,
		Properties: map[string]*Schema{"make": {Type: TypeString}},
		Required:   []string{"make", "model"},
	}
	assert.ErrorContains(t, schema.Validate(), `"model"`)

	nested := &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"commonDelayReasons": {Type: TypeArray},
		},
	}
	assert.ErrorContains(t, nested.Validate(), "array without items")
}

func TestDecodeSchema(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		schema, err := DecodeSchema(nil)
		assert.NoError(t, err)
		assert.Nil(t, schema)

		schema, err = DecodeSchema(json.RawMessage(" null "))
		assert.NoError(t, err)
		assert.Nil(t, schema)
	})

	t.Run("round trip of built schema", func(t *testing.T) {
		raw, err := json.Marshal(BuildSchema())
		require.NoError(t, err)

		schema, err := DecodeSchema(raw)
		require.NoError(t, err)
		assert.Equal(t, BuildSchema().GenAI(), schema)
	})

	t.Run("array of strings", func(t *testing.T) {
		raw := `{"type":"OBJECT","properties":{"commonDelayReasons":{"type":"ARRAY","items":{"type":"STRING"}}},"required":["commonDelayReasons"]}`
		schema, err := DecodeSchema(json.RawMessage(raw))
		require.NoError(t, err)
		assert.Equal(t, genai.TypeString, schema.Properties["commonDelayReasons"].Items.Type)
	})

	t.Run("keeps fields beyond the report contract", func(t *testing.T) {
		raw := `{
			"type": "OBJECT",
			"description": "flight status card",
			"propertyOrdering": ["status", "score"],
			"properties": {
				"status": {"type": "STRING", "enum": ["On-time", "Delayed"], "description": "current status", "nullable": true},
				"score": {"type": "NUMBER", "minimum": 0, "maximum": 100, "format": "float"}
			},
			"required": ["status"]
		}`
		schema, err := DecodeSchema(json.RawMessage(raw))
		require.NoError(t, err)

		assert.Equal(t, "flight status card", schema.Description)
		assert.Equal(t, []string{"status", "score"}, schema.PropertyOrdering)

		status := schema.Properties["status"]
		require.NotNil(t, status)
		assert.Equal(t, []string{"On-time", "Delayed"}, status.Enum)
		assert.Equal(t, "current status", status.Description)
		require.NotNil(t, status.Nullable)
		assert.True(t, *status.Nullable)

		score := schema.Properties["score"]
		require.NotNil(t, score)
		require.NotNil(t, score.Minimum)
		require.NotNil(t, score.Maximum)
		assert.Equal(t, 0.0, *score.Minimum)
		assert.Equal(t, 100.0, *score.Maximum)
		assert.Equal(t, "float", score.Format)
	})

	t.Run("nested array without items", func(t *testing.T) {
		_, err := DecodeSchema(json.RawMessage(`{"type":"OBJECT","properties":{"reasons":{"type":"ARRAY"}}}`))
		assert.ErrorContains(t, err, "array without items")
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := DecodeSchema(json.RawMessage(`"OBJECT"`))
		assert.Error(t, err)
	})

	t.Run("inconsistent", func(t *testing.T) {
		_, err := DecodeSchema(json.RawMessage(`{"type":"OBJECT","required":["make"]}`))
		assert.Error(t, err)
	})
}
