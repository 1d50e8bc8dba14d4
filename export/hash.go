package export

import (
	"encoding/binary"
	"strconv"

	"github.com/minio/highwayhash"
)

var key = []byte("0123456789ABCDEF0123456789ABCDEF")

// Hash returns highwayhash64 of data
func Hash(data []byte) (uint64, error) {
	hash, err := highwayhash.New64(key)
	if err != nil {
		return 0, err
	}
	_, err = hash.Write(data)
	return hash.Sum64(), err
}

// nodeID identifies a scope by method token, offsets and depth
func nodeID(methodToken uint32, startOffset, endOffset, depth int) (string, error) {
	data := make([]byte, 0, 16)
	data = binary.LittleEndian.AppendUint32(data, methodToken)
	data = binary.LittleEndian.AppendUint32(data, uint32(startOffset))
	data = binary.LittleEndian.AppendUint32(data, uint32(endOffset))
	data = binary.LittleEndian.AppendUint32(data, uint32(depth))
	sum, err := Hash(data)
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(sum, 16), nil
}
