package kwin

import "github.com/rajveermalviya/go-wayland/wayland/client"

// Request builders for org_kde_kwin_fake_input, laid out like go-wayland's
// generated marshalling: header (object id, size<<16|opcode), then args.

const (
	opAuthenticate          = 0
	opPointerMotion         = 1
	opButton                = 2
	opAxis                  = 3
	opPointerMotionAbsolute = 9
	opKeyboardKey           = 10
)

func putHeader(buf []byte, id uint32, opcode uint32) {
	client.PutUint32(buf[0:4], id)
	client.PutUint32(buf[4:8], uint32(len(buf))<<16|opcode&0x0000ffff)
}

func authenticateRequest(id uint32, application, reason string) []byte {
	applicationLen := client.PaddedLen(len(application) + 1)
	reasonLen := client.PaddedLen(len(reason) + 1)
	_reqBufLen := 8 + (4 + applicationLen) + (4 + reasonLen)
	_reqBuf := make([]byte, _reqBufLen)
	putHeader(_reqBuf, id, opAuthenticate)
	l := 8
	client.PutString(_reqBuf[l:l+(4+applicationLen)], application, applicationLen)
	l += 4 + applicationLen
	client.PutString(_reqBuf[l:l+(4+reasonLen)], reason, reasonLen)
	return _reqBuf
}

// fixedPairRequest serves pointer_motion and pointer_motion_absolute.
func fixedPairRequest(id uint32, opcode uint32, a, b float64) []byte {
	const _reqBufLen = 8 + 4 + 4
	_reqBuf := make([]byte, _reqBufLen)
	putHeader(_reqBuf, id, opcode)
	client.PutFixed(_reqBuf[8:12], a)
	client.PutFixed(_reqBuf[12:16], b)
	return _reqBuf
}

// uintPairRequest serves button and keyboard_key.
func uintPairRequest(id uint32, opcode uint32, a, b uint32) []byte {
	const _reqBufLen = 8 + 4 + 4
	_reqBuf := make([]byte, _reqBufLen)
	putHeader(_reqBuf, id, opcode)
	client.PutUint32(_reqBuf[8:12], a)
	client.PutUint32(_reqBuf[12:16], b)
	return _reqBuf
}

func axisRequest(id uint32, axis uint32, value float64) []byte {
	const _reqBufLen = 8 + 4 + 4
	_reqBuf := make([]byte, _reqBufLen)
	putHeader(_reqBuf, id, opAxis)
	client.PutUint32(_reqBuf[8:12], axis)
	client.PutFixed(_reqBuf[12:16], value)
	return _reqBuf
}
