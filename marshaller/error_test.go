package marshaller //nolint:testpackage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_errMarshal(t *testing.T) {
	t.Parallel()

	t.Run("with parent error", func(t *testing.T) {
		t.Parallel()

		parentErr := errors.New("yaml marshal error")
		err := errMarshal("request.ReshardTable", parentErr)
		require.Error(t, err)
		assert.Equal(t, "failed to marshal request.ReshardTable: yaml marshal error", err.Error())

		var marshalErr MarshalError
		require.ErrorAs(t, err, &marshalErr)
		assert.Equal(t, "request.ReshardTable", marshalErr.TypeName())
		require.ErrorIs(t, err, parentErr)
	})

	t.Run("with nil parent error", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, errMarshal("int", nil))
	})
}

func Test_errUnmarshal(t *testing.T) {
	t.Parallel()

	t.Run("with parent error", func(t *testing.T) {
		t.Parallel()

		parentErr := errors.New("yaml unmarshal error")
		err := errUnmarshal("schema.TableSchema", parentErr)
		require.Error(t, err)
		assert.Equal(t, "failed to unmarshal schema.TableSchema: yaml unmarshal error", err.Error())

		var unmarshalErr UnmarshalError
		require.ErrorAs(t, err, &unmarshalErr)
		assert.Equal(t, "schema.TableSchema", unmarshalErr.TypeName())
		assert.Equal(t, parentErr, unmarshalErr.Unwrap())
	})

	t.Run("with nil parent error", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, errUnmarshal("int", nil))
	})
}

func Test_typeName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "int", typeName[int]())
	assert.Equal(t, "*marshaller.MarshalError", typeName[*MarshalError]())
}
