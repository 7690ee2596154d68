package wire

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telhawk-systems/telhawk-audit/core/pkg/audit"
)

func TestEnvelope_Record(t *testing.T) {
	env, err := Unmarshal([]byte(`{
		"id": "r-1",
		"type": 1300,
		"fields": [
			{"name": "arch", "value": "c000003e"},
			{"name": "comm", "value_b64": "AP8="}
		]
	}`))
	require.NoError(t, err)

	rec, err := env.Record(audit.NewResolver(nil))
	require.NoError(t, err)
	assert.Equal(t, uint32(1300), rec.Type)
	require.Len(t, rec.Fields, 2)
	assert.Equal(t, "arch", string(rec.Fields[0].Name))
	assert.Equal(t, []byte("c000003e"), rec.Fields[0].Value)
	assert.Equal(t, []byte{0x00, 0xff}, rec.Fields[1].Value)
}

func TestEnvelope_RecordTypeName(t *testing.T) {
	r := audit.NewResolver(nil)

	tests := []struct {
		name     string
		typeName string
		want     uint32
		wantErr  error
	}{
		{name: "canonical", typeName: "PATH", want: 1302},
		{name: "unknown form", typeName: "UNKNOWN[4242]", want: 4242},
		{name: "unregistered", typeName: "NOPE", wantErr: audit.ErrUnknownEventName},
		{name: "missing", typeName: "", wantErr: ErrMissingType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := &Envelope{TypeName: tt.typeName}
			rec, err := env.Record(r)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, rec.Type)
		})
	}
}

func TestEnvelope_TypeWinsOverTypeName(t *testing.T) {
	env := &Envelope{Type: TypeID(1300), TypeName: "PATH"}
	rec, err := env.Record(audit.NewResolver(nil))
	require.NoError(t, err)
	assert.Equal(t, uint32(1300), rec.Type)
}

func TestEnvelope_EmptyFieldName(t *testing.T) {
	env := &Envelope{Type: TypeID(1300), Fields: []Field{{Name: "pid", Value: "1"}, {Value: "x"}}}
	_, err := env.Record(audit.NewResolver(nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyFieldName)
	assert.Contains(t, err.Error(), "field 1")
}

func TestUnmarshal_Invalid(t *testing.T) {
	_, err := Unmarshal([]byte(`{"type": "x"`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode envelope")
}

func TestFromRecord(t *testing.T) {
	rec := audit.RawRecord{
		Type: 1302,
		Fields: []audit.Field{
			{Name: []byte("name"), Value: []byte(`"/tmp/x"`)},
			{Name: []byte("blob"), Value: []byte{0xff, 0xfe}},
		},
	}

	env := FromRecord("r-2", rec)
	assert.Equal(t, "r-2", env.ID)
	assert.Equal(t, `"/tmp/x"`, env.Fields[0].Value)
	assert.Nil(t, env.Fields[0].ValueB64)
	assert.Empty(t, env.Fields[1].Value)
	assert.Equal(t, []byte{0xff, 0xfe}, env.Fields[1].ValueB64)

	data, err := json.Marshal(env)
	require.NoError(t, err)
	back, err := Unmarshal(data)
	require.NoError(t, err)
	got, err := back.Record(audit.NewResolver(nil))
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestEnvelope_ZeroType(t *testing.T) {
	env, err := Unmarshal([]byte(`{"type": 0, "fields": []}`))
	require.NoError(t, err)
	rec, err := env.Record(audit.NewResolver(nil))
	require.NoError(t, err)
	assert.Equal(t, uint32(0), rec.Type)

	data, err := json.Marshal(FromRecord("z", audit.RawRecord{Type: 0}))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":0`)

	back, err := Unmarshal(data)
	require.NoError(t, err)
	got, err := back.Record(audit.NewResolver(nil))
	require.NoError(t, err)
	assert.Equal(t, uint32(0), got.Type)
}
