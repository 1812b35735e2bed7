package uinput

import "golang.org/x/sys/unix"

// Ref: input-event-codes.h
const (
	evSyn     = 0x00
	synReport = 0x00
	absX      = 0x00
	absY      = 0x01
	absMax    = 0x3f
	absCnt    = absMax + 1
	keyMax    = 0x2ff
)

// Ref: uinput.h
const uinputMaxNameSize = 80

// Ref: ioctl.h
const (
	iocNone  = 0x0
	iocWrite = 0x1

	iocNrbits   = 8
	iocTypebits = 8
	iocSizebits = 14
	iocNrshift  = 0

	iocTypeshift = iocNrshift + iocNrbits
	iocSizeshift = iocTypeshift + iocTypebits
	iocDirshift  = iocSizeshift + iocSizebits
)

func ioc(dir, t, nr, size uint) uint {
	return dir<<iocDirshift | t<<iocTypeshift | nr<<iocNrshift | size<<iocSizeshift
}

var (
	uiSetEvBit   = ioc(iocWrite, 'U', 100, 4)
	uiSetKeyBit  = ioc(iocWrite, 'U', 101, 4)
	uiSetRelBit  = ioc(iocWrite, 'U', 102, 4)
	uiSetAbsBit  = ioc(iocWrite, 'U', 103, 4)
	uiDevCreate  = ioc(iocNone, 'U', 1, 0)
	uiDevDestroy = ioc(iocNone, 'U', 2, 0)
)

type inputID struct {
	BusType uint16
	Vendor  uint16
	Product uint16
	Version uint16
}

type uinputUserDev struct {
	Name       [uinputMaxNameSize]byte
	ID         inputID
	EffectsMax uint32
	AbsMax     [absCnt]int32
	AbsMin     [absCnt]int32
	AbsFuzz    [absCnt]int32
	AbsFlat    [absCnt]int32
}

func ioctl(fd uintptr, req uint, value int) error {
	return unix.IoctlSetInt(int(fd), req, value)
}
