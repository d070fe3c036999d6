package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecode(t *testing.T, data string) Value {
	t.Helper()
	v, err := decodeValue("result", []byte(data))
	require.NoError(t, err)
	return v
}

func TestValue_IntAndFloatAreDistinct(t *testing.T) {
	v := mustDecode(t, `{"i":6,"f":6.0,"e":1e2,"big":99999999999999999999}`)

	i, err := v.IntField("i")
	require.NoError(t, err)
	assert.EqualValues(t, 6, i)

	_, err = v.FloatField("i")
	var typeErr *TypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "result.i", typeErr.Path)
	assert.Equal(t, "float", typeErr.Want)
	assert.Equal(t, "integer", typeErr.Got)

	f, err := v.FloatField("f")
	require.NoError(t, err)
	assert.Equal(t, 6.0, f)

	_, err = v.IntField("f")
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "float", typeErr.Got)

	f, err = v.FloatField("e")
	require.NoError(t, err)
	assert.Equal(t, 100.0, f)

	_, err = v.IntField("big")
	require.ErrorAs(t, err, &typeErr)
}

func TestValue_MissingFieldIsNull(t *testing.T) {
	v := mustDecode(t, `{"a":"x"}`)

	f, err := v.Field("b")
	require.NoError(t, err)
	assert.True(t, f.IsNull())

	_, err = v.StringField("b")
	var typeErr *TypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "result.b", typeErr.Path)
	assert.Equal(t, "null", typeErr.Got)
}

func TestValue_FieldOnNonObject(t *testing.T) {
	for _, data := range []string{`null`, `"s"`, `[1]`, `1`, `true`} {
		_, err := mustDecode(t, data).Field("x")
		var typeErr *TypeError
		require.ErrorAs(t, err, &typeErr, data)
		assert.Equal(t, "object", typeErr.Want)
	}
}

func TestValue_List(t *testing.T) {
	items, err := mustDecode(t, `[{"amount":1.5},"x"]`).AsList()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "result[0]", items[0].Path())

	_, err = items[1].FloatField("amount")
	var typeErr *TypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "result[1]", typeErr.Path)

	_, err = mustDecode(t, `{"0":1}`).AsList()
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "list", typeErr.Want)
}

func TestValue_BoolIsNotInteger(t *testing.T) {
	_, err := mustDecode(t, `true`).AsInt()
	var typeErr *TypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "bool", typeErr.Got)
}

func TestValue_FloatOutOfRange(t *testing.T) {
	v := mustDecode(t, `{"amount":1e400}`)

	_, err := v.FloatField("amount")
	var typeErr *TypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "result.amount", typeErr.Path)
	assert.Equal(t, "finite float", typeErr.Want)
	assert.Equal(t, "float", typeErr.Got)
}

func TestDecodeValue_TrailingData(t *testing.T) {
	for _, data := range []string{`{"result":1}}`, `{"result":1}]`, `{"result":1} {}`, `[1]]`} {
		_, err := decodeValue("response", []byte(data))
		assert.Error(t, err, data)
	}

	_, err := decodeValue("response", []byte("{\"result\":1}\n"))
	assert.NoError(t, err)
}
