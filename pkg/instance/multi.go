//go:build multiinstance

package instance

import "fmt"

// regions maps the first byte of every bound region to its instance.
var regions = map[*byte]*Instance{}

// Init constructs an instance in buf and runs bring-up. It returns nil on
// failure: when size is nil, when *size or len(buf) is below RequiredSize
// (RequiredSize is then written to *size), or when buf is nil with an
// adequate *size (size is left untouched). If buf already holds an
// initialized instance, that instance is returned.
func Init(buf []byte, size *int, cfg Config) *Instance {
	inst, _ := TryInit(buf, size, cfg)
	return inst
}

// TryInit is Init with an error describing the failure:
// ErrInvalidArgs or ErrBufferTooSmall.
func TryInit(buf []byte, size *int, cfg Config) (*Instance, error) {
	if size == nil {
		return nil, fmt.Errorf("%w: nil size", ErrInvalidArgs)
	}
	if *size < RequiredSize {
		*size = RequiredSize
		return nil, fmt.Errorf("%w: need %d bytes", ErrBufferTooSmall, RequiredSize)
	}
	if buf == nil {
		return nil, fmt.Errorf("%w: nil buffer", ErrInvalidArgs)
	}
	if len(buf) < RequiredSize {
		*size = RequiredSize
		return nil, fmt.Errorf("%w: need %d bytes, buffer has %d", ErrBufferTooSmall, RequiredSize, len(buf))
	}

	key := &buf[0]
	if inst, ok := regions[key]; ok && inst.initialized {
		return inst, nil
	}

	inst := new(Instance)
	inst.construct(buf[:RequiredSize:RequiredSize], cfg)
	regions[key] = inst
	inst.afterInit()
	return inst, nil
}

func (inst *Instance) releaseRegion() {
	if len(inst.region) == 0 {
		return
	}
	key := &inst.region[0]
	if regions[key] == inst {
		delete(regions, key)
	}
}
