//go:build !multiinstance

package instance

var (
	singleInstance Instance
	singleRegion   [RequiredSize]byte
)

// InitSingle constructs the instance and runs bring-up. If the instance is
// already initialized it is returned unchanged and cfg is ignored.
func InitSingle(cfg Config) *Instance {
	if singleInstance.initialized {
		return &singleInstance
	}
	singleInstance.construct(singleRegion[:], cfg)
	singleInstance.afterInit()
	return &singleInstance
}

// Get returns the instance whether or not it has been initialized.
func Get() *Instance {
	return &singleInstance
}

func (inst *Instance) releaseRegion() {}
