package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSelection(t *testing.T) {
	sel, err := ParseSelection(`{"x":"10", "y":"20", "menuname":"play_menu", "index":"2", "menupath":".context_menu.play_menu", "errorvalue":"errorValue"}` + "\n\n")
	require.NoError(t, err)
	assert.Equal(t, Selection{X: 10, Y: 20, MenuName: "play_menu", Index: 2, MenuPath: ".context_menu.play_menu", ErrorValue: NoError}, sel)
	assert.False(t, sel.Cancelled())
}

func TestParseSelectionAcceptsNumbers(t *testing.T) {
	sel, err := ParseSelection(`{"x":-1,"y":5.0,"menuname":"m","index":-1,"menupath":"","errorvalue":"errorValue"}`)
	require.NoError(t, err)
	assert.True(t, sel.Cancelled())
	assert.Equal(t, Unset, sel.X)
	assert.Equal(t, 5, sel.Y)
}

func TestParseSelectionIsStrict(t *testing.T) {
	bad := map[string]string{
		"empty":         "",
		"two lines":     "{}\n{}",
		"unknown field": `{"x":"1","y":"1","menuname":"m","index":"1","menupath":"","errorvalue":"errorValue","extra":"1"}`,
		"missing error": `{"x":"1","y":"1","menuname":"m","index":"1","menupath":""}`,
		"bad index":     `{"x":"1","y":"1","menuname":"m","index":"first","menupath":"","errorvalue":"errorValue"}`,
		"not json":      "clicked 3",
	}
	for name, input := range bad {
		_, err := ParseSelection(input)
		assert.Error(t, err, name)
	}
}

func TestMarshalSelectionRoundTrip(t *testing.T) {
	in := Selection{X: 3, Y: 4, MenuName: "m", Index: 1, MenuPath: ".m", ErrorValue: NoError}
	data, err := MarshalSelection(in)
	require.NoError(t, err)
	out, err := ParseSelection(string(data))
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestDecodeEnvelope(t *testing.T) {
	env, err := DecodeEnvelope([]byte(`{"x":"-1","y":"-1","menu":{"m":{"1":{"itemType":"command","label":"Go","itemDisable":false}}},"menuName":"m","menuLimit":0,"menuPaths":"","menuIndexes":"","fontFace":"","fontSize":""}`))
	require.NoError(t, err)
	assert.Equal(t, DefaultLimit, env.MenuLimit)

	_, err = DecodeEnvelope([]byte(`{"menu":{"m":{}},"menuName":"other"}`))
	assert.Error(t, err)

	_, err = DecodeEnvelope([]byte(`{"menu":{"m":{"1":{"itemType":"bogus"}}},"menuName":"m"}`))
	assert.Error(t, err)

	_, err = DecodeEnvelope([]byte(`{"menu":{"m":{}},"menuName":"m","surprise":1}`))
	assert.Error(t, err)
}
