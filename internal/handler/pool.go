package handler

import (
	"bytes"
	"sync"
)

// responseBufferSize covers a typical distribution result or history page
// without growing the buffer.
const responseBufferSize = 1024

// bufferPool recycles encode buffers across response writes
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, responseBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	bufferPool.Put(buf)
}
