package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func fieldsOf(t *testing.T, body string) map[string]json.RawMessage {
	t.Helper()
	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(body), &fields))
	return fields
}

func TestStudentFromFields_Converts(t *testing.T) {
	tests := []struct {
		name string
		body string
		want Student
	}{
		{"Native", `{"name":"Ada","email":"ada@x.com","age":30}`,
			Student{Name: ptr("Ada"), Email: ptr("ada@x.com"), Age: ptr(30.0)}},
		{"NumericStringAge", `{"age":"30"}`, Student{Age: ptr(30.0)}},
		{"PaddedStringAge", `{"age":" 21.5 "}`, Student{Age: ptr(21.5)}},
		{"BoolAge", `{"age":true}`, Student{Age: ptr(1.0)}},
		{"EmptyStringAge", `{"age":""}`, Student{}},
		{"NumberName", `{"name":42}`, Student{Name: ptr("42")}},
		{"FractionName", `{"name":1.50}`, Student{Name: ptr("1.5")}},
		{"LargeNumberName", `{"name":1e21}`, Student{Name: ptr("1e+21")}},
		{"BoolEmail", `{"email":false}`, Student{Email: ptr("false")}},
		{"EmptyStringName", `{"name":""}`, Student{Name: ptr("")}},
		{"Nulls", `{"name":null,"email":null,"age":null}`, Student{}},
		{"IgnoresIDAndUnknown", `{"_id":"mine","nickname":"ada"}`, Student{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StudentFromFields(fieldsOf(t, tt.body))

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStudentFromFields_NilFields(t *testing.T) {
	got, err := StudentFromFields(nil)

	require.NoError(t, err)
	assert.Equal(t, Student{}, got)
}

func TestStudentFromFields_CastFailure(t *testing.T) {
	tests := map[string]struct {
		body string
		path string
	}{
		"WordAge":    {`{"age":"thirty"}`, "age"},
		"ObjectAge":  {`{"age":{"years":3}}`, "age"},
		"ArrayName":  {`{"name":["Ada"]}`, "name"},
		"ObjectMail": {`{"email":{}}`, "email"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := StudentFromFields(fieldsOf(t, tt.body))

			var castErr *CastError
			require.ErrorAs(t, err, &castErr)
			assert.Equal(t, tt.path, castErr.Path)
			assert.Contains(t, err.Error(), tt.path)
		})
	}
}

func TestCastErrorMessage(t *testing.T) {
	err := &CastError{Path: "age", Kind: "number", Value: `"thirty"`}

	assert.Equal(t, `cast to number failed for value "thirty" at path "age"`, err.Error())
}
