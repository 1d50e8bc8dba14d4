package metadata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/pdbscope/metadata"
)

func TestToken(t *testing.T) {
	token := metadata.NewToken(metadata.TableLocalConstant, 7)
	assert.Equal(t, metadata.Token(0x34000007), token)
	assert.Equal(t, metadata.TableLocalConstant, token.Table())
	assert.EqualValues(t, 7, token.Rid())
	assert.Equal(t, "0x34000007", token.String())
	assert.False(t, token.IsNull())
	assert.True(t, metadata.NewToken(metadata.TableLocalScope, 0).IsNull())
	assert.Equal(t, "LocalConstant", token.Table().String())
	assert.Equal(t, "Table(0x7F)", metadata.Table(0x7F).String())
}

func TestRidList(t *testing.T) {
	list := metadata.NewRidList(4, 3)
	assert.Equal(t, 3, list.Len())
	var actual []uint32
	for rid := range list.All() {
		actual = append(actual, rid)
	}
	assert.Equal(t, []uint32{4, 5, 6}, actual)
	assert.Equal(t, metadata.RidList{}, metadata.NewRidList(9, 0))
	assert.Equal(t, 0, metadata.RidList{}.Len())
}

func TestParseToken(t *testing.T) {
	token, err := metadata.ParseToken("0x32000001")
	assert.NoError(t, err)
	assert.Equal(t, metadata.NewToken(metadata.TableLocalScope, 1), token)
	_, err = metadata.ParseToken("scope")
	assert.Error(t, err)
}
