package flatfat

// BlockDevice is the external collaborator this filesystem is layered
// over: a fixed-size array of fixed-size blocks. Implementations are
// assumed synchronous and indivisible at block granularity (see
// blockdev.RAM and blockdev.File for two ready-made adapters).
type BlockDevice interface {
	// ReadBlock reads exactly one block of BlockSize() bytes into dst
	// starting at the given block index.
	ReadBlock(index int64, dst []byte) error
	// WriteBlock writes exactly one block of BlockSize() bytes from src
	// at the given block index.
	WriteBlock(index int64, src []byte) error
	// BlockSize returns the fixed byte size of every block.
	BlockSize() int
	// BlockCount returns the fixed total number of blocks on the device.
	BlockCount() int64
}
