package clipboard

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystem_WriteAll(t *testing.T) {
	broken := func(string) error { return errors.New("no xclip") }

	tests := []struct {
		name     string
		write    func(string) error
		fallback bool
		wantErr  bool
		wantOSC  bool
	}{
		{name: "system clipboard works", write: func(string) error { return nil }},
		{name: "system fails without fallback", write: broken, wantErr: true},
		{name: "system fails with fallback", write: broken, fallback: true, wantOSC: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var term bytes.Buffer
			s := &System{OSC52Fallback: tt.fallback, Terminal: &term, writeAll: tt.write}

			err := s.WriteAll("#3B82F6")
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnavailable))
			} else {
				require.NoError(t, err)
			}

			if tt.wantOSC {
				assert.Contains(t, term.String(), base64.StdEncoding.EncodeToString([]byte("#3B82F6")))
			} else {
				assert.Empty(t, term.String())
			}
		})
	}
}

func TestFunc(t *testing.T) {
	var got string
	var w Writer = Func(func(s string) error { got = s; return nil })
	require.NoError(t, w.WriteAll("hello"))
	assert.Equal(t, "hello", got)
}
