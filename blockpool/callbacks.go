package blockpool

// AcquireBlockCallback is fired after a block has been successfully acquired.
// The block slice is the same view handed to the Acquire caller.
type AcquireBlockCallback func(
	pool *Pool,
	index int,
	block []byte,
	userData interface{},
)

// ReleaseBlockCallback is fired after a block has been zeroed and returned to
// the pool.
type ReleaseBlockCallback func(
	pool *Pool,
	index int,
	userData interface{},
)

// CallbackOptions routes pool lifecycle notifications to the consumer.
// UserData is passed through to every callback unchanged.
type CallbackOptions struct {
	Acquire  AcquireBlockCallback
	Release  ReleaseBlockCallback
	UserData interface{}
}

type poolCallbacks struct {
	Callbacks *CallbackOptions
	Pool      *Pool
}

func (c *poolCallbacks) Acquire(
	index int,
	block []byte,
) {
	if c.Callbacks != nil && c.Callbacks.Acquire != nil {
		c.Callbacks.Acquire(c.Pool, index, block, c.Callbacks.UserData)
	}
}

func (c *poolCallbacks) Release(
	index int,
) {
	if c.Callbacks != nil && c.Callbacks.Release != nil {
		c.Callbacks.Release(c.Pool, index, c.Callbacks.UserData)
	}
}
