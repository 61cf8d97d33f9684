package sui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/ibt-bridge/types"
)

func TestAddressFromHex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		give    string
		want    string
		wantErr bool
	}{
		{name: "full address", give: testOwnerHex, want: testOwnerHex},
		{name: "short form", give: "0x2", want: "0x0000000000000000000000000000000000000000000000000000000000000002"},
		{name: "odd length without prefix", give: "abc", want: "0x0000000000000000000000000000000000000000000000000000000000000abc"},
		{name: "upper case prefix", give: "0XAA", want: testOwnerHex},
		{name: "too long", give: "0x" + "11" + testOwnerHex[2:], wantErr: true},
		{name: "not hex", give: "0xzz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := AddressFromHex(tt.give)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Hex())
		})
	}
}

func TestAddressOwner(t *testing.T) {
	t.Parallel()

	want, err := types.ObjectChainAddressFromHex(testOwnerHex)
	require.NoError(t, err)

	got, err := addressOwner(map[string]any{"AddressOwner": testOwnerHex})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, *got)

	for _, owner := range []any{nil, "Immutable", map[string]any{"ObjectOwner": testOwnerHex}, map[string]any{"Shared": map[string]any{}}} {
		got, err := addressOwner(owner)
		require.NoError(t, err)
		assert.Nil(t, got)
	}

	_, err = addressOwner(map[string]any{"AddressOwner": "0xnothex"})
	require.Error(t, err)
}
