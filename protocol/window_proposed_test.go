//go:build proposed

package protocol

import (
	"testing"

	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageActionItem_PreservesProperties(t *testing.T) {
	wire := `{"title":"Retry","retryCount":2,"transient":true}`

	var item MessageActionItem
	require.NoError(t, json.Unmarshal([]byte(wire), &item))
	assert.Equal(t, "Retry", item.Title)
	assert.Equal(t, float64(2), item.Properties["retryCount"])
	assert.Equal(t, true, item.Properties["transient"])

	data, err := json.Marshal(item)
	require.NoError(t, err)
	assert.JSONEq(t, wire, string(data))
}

func TestMessageActionItem_TitleOnly(t *testing.T) {
	var item MessageActionItem
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Open Log"}`), &item))
	assert.Equal(t, "Open Log", item.Title)
	assert.Nil(t, item.Properties)

	data, err := json.Marshal(item)
	require.NoError(t, err)
	assert.Equal(t, `{"title":"Open Log"}`, string(data))
}

func TestMessageActionItem_MissingTitle(t *testing.T) {
	var item MessageActionItem
	assert.Error(t, json.Unmarshal([]byte(`{"retryCount":2}`), &item))
}

func TestWindowClientCapabilities_ShowMessage(t *testing.T) {
	support := true
	caps := WindowClientCapabilities{
		ShowMessage: &ShowMessageRequestClientCapabilities{
			MessageActionItem: &MessageActionItemCapabilities{
				AdditionalPropertiesSupport: &support,
			},
		},
	}

	data, err := Encode(caps)
	require.NoError(t, err)
	assert.JSONEq(t, `{"showMessage":{"messageActionItem":{"additionalPropertiesSupport":true}}}`, string(data))

	var decoded WindowClientCapabilities
	require.NoError(t, Decode(data, &decoded))
	assert.Equal(t, caps, decoded)
}
