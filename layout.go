package flatfat

// On-disk limits, fixed per spec.md §6.
const (
	// MaxFilenameLength is the size in bytes of the filename field,
	// including its NUL terminator (14 usable bytes).
	MaxFilenameLength = 15
	// MaxFiles is the fixed capacity of the directory table.
	MaxFiles = 64
	// MaxOpenFiles is the fixed capacity of the descriptor table.
	MaxOpenFiles = 32

	// superblockMagic identifies a valid flatfat image.
	superblockMagic uint32 = 0xFADEBEEF

	// FAT sentinels, 32-bit per the resolved §9 open question.
	fatFree uint32 = 0xFFFFFFFF
	fatEOF  uint32 = 0xFFFFFFFE
	// fatMaxValid is the largest cluster index that can ever be stored
	// in a FAT entry without colliding with a sentinel.
	fatMaxValid uint32 = fatEOF - 1

	fatEntrySize = 4 // bytes per FAT entry, little-endian uint32.
	// dirEntrySize is 34, not the literal spec's 32: startCluster is
	// widened from 2 to 4 bytes per the resolved §9 sentinel-width
	// open question (see directory.go).
	dirEntrySize   = 34
	superblockSize = 44 // logical size; the full block is zero-padded.
)

// layout is the computed on-disk geometry for a given disk size,
// mirroring the steps spec.md §4.1 lists for Make.
type layout struct {
	blockSize       int
	diskBlocks      int64
	fat1Start       int64
	fatBlocksCount  int64
	fat2Start       int64
	dirStart        int64
	dirBlocksCount  int64
	dataStart       int64
	dataBlocksCount int64
}

func computeLayout(blockSize int, diskBlocks int64) layout {
	fatBlocksCount := ceilDiv(diskBlocks*int64(fatEntrySize), int64(blockSize))
	fat1Start := int64(1)
	fat2Start := fat1Start + fatBlocksCount
	dirStart := fat2Start + fatBlocksCount
	dirBlocksCount := ceilDiv(int64(MaxFiles)*int64(dirEntrySize), int64(blockSize))
	dataStart := dirStart + dirBlocksCount
	dataBlocksCount := diskBlocks - dataStart
	return layout{
		blockSize:       blockSize,
		diskBlocks:      diskBlocks,
		fat1Start:       fat1Start,
		fatBlocksCount:  fatBlocksCount,
		fat2Start:       fat2Start,
		dirStart:        dirStart,
		dirBlocksCount:  dirBlocksCount,
		dataStart:       dataStart,
		dataBlocksCount: dataBlocksCount,
	}
}

func ceilDiv(a, b int64) int64 {
	return (a + b - 1) / b
}
