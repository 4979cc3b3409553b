package flatfat

import "encoding/binary"

// superblock offsets, packed little-endian per spec.md §3/§6.
const (
	sbMagic          = 0
	sbBlockCount     = 4
	sbBlockSize      = 8
	sbFat1Start      = 12
	sbFatBlocks      = 16
	sbFat2Start      = 20
	sbDirStart       = 24
	sbDirBlocks      = 28
	sbDataStart      = 32
	sbDataBlockCount = 36
	sbFreeBlockCount = 40
)

// superblock is a thin accessor over a raw block-sized byte window, in
// the teacher's biosParamBlock idiom (sectors.go): no separate parsed
// struct, just named offsets into the bytes that live on disk.
type superblock struct {
	data []byte // one block, sbFreeBlockCount+4 <= len(data)
}

func newSuperblock(blockSize int) superblock {
	return superblock{data: make([]byte, blockSize)}
}

func (s superblock) Magic() uint32      { return binary.LittleEndian.Uint32(s.data[sbMagic:]) }
func (s superblock) SetMagic(v uint32)  { binary.LittleEndian.PutUint32(s.data[sbMagic:], v) }
func (s superblock) BlockCount() uint32 { return binary.LittleEndian.Uint32(s.data[sbBlockCount:]) }
func (s superblock) SetBlockCount(v uint32) {
	binary.LittleEndian.PutUint32(s.data[sbBlockCount:], v)
}
func (s superblock) BlockSize() uint32 { return binary.LittleEndian.Uint32(s.data[sbBlockSize:]) }
func (s superblock) SetBlockSize(v uint32) {
	binary.LittleEndian.PutUint32(s.data[sbBlockSize:], v)
}
func (s superblock) Fat1Start() uint32 { return binary.LittleEndian.Uint32(s.data[sbFat1Start:]) }
func (s superblock) SetFat1Start(v uint32) {
	binary.LittleEndian.PutUint32(s.data[sbFat1Start:], v)
}
func (s superblock) FatBlocks() uint32 { return binary.LittleEndian.Uint32(s.data[sbFatBlocks:]) }
func (s superblock) SetFatBlocks(v uint32) {
	binary.LittleEndian.PutUint32(s.data[sbFatBlocks:], v)
}
func (s superblock) Fat2Start() uint32 { return binary.LittleEndian.Uint32(s.data[sbFat2Start:]) }
func (s superblock) SetFat2Start(v uint32) {
	binary.LittleEndian.PutUint32(s.data[sbFat2Start:], v)
}
func (s superblock) DirStart() uint32 { return binary.LittleEndian.Uint32(s.data[sbDirStart:]) }
func (s superblock) SetDirStart(v uint32) {
	binary.LittleEndian.PutUint32(s.data[sbDirStart:], v)
}
func (s superblock) DirBlocks() uint32 { return binary.LittleEndian.Uint32(s.data[sbDirBlocks:]) }
func (s superblock) SetDirBlocks(v uint32) {
	binary.LittleEndian.PutUint32(s.data[sbDirBlocks:], v)
}
func (s superblock) DataStart() uint32 { return binary.LittleEndian.Uint32(s.data[sbDataStart:]) }
func (s superblock) SetDataStart(v uint32) {
	binary.LittleEndian.PutUint32(s.data[sbDataStart:], v)
}
func (s superblock) DataBlockCount() uint32 {
	return binary.LittleEndian.Uint32(s.data[sbDataBlockCount:])
}
func (s superblock) SetDataBlockCount(v uint32) {
	binary.LittleEndian.PutUint32(s.data[sbDataBlockCount:], v)
}
func (s superblock) FreeBlockCount() uint32 {
	return binary.LittleEndian.Uint32(s.data[sbFreeBlockCount:])
}
func (s superblock) SetFreeBlockCount(v uint32) {
	binary.LittleEndian.PutUint32(s.data[sbFreeBlockCount:], v)
}

// valid reports whether the superblock carries the expected magic.
func (s superblock) valid() bool {
	return len(s.data) >= superblockSize && s.Magic() == superblockMagic
}

func (s superblock) layout() layout {
	return layout{
		blockSize:       int(s.BlockSize()),
		diskBlocks:      int64(s.BlockCount()),
		fat1Start:       int64(s.Fat1Start()),
		fatBlocksCount:  int64(s.FatBlocks()),
		fat2Start:       int64(s.Fat2Start()),
		dirStart:        int64(s.DirStart()),
		dirBlocksCount:  int64(s.DirBlocks()),
		dataStart:       int64(s.DataStart()),
		dataBlocksCount: int64(s.DataBlockCount()),
	}
}

func (s superblock) fill(l layout) {
	s.SetMagic(superblockMagic)
	s.SetBlockCount(uint32(l.diskBlocks))
	s.SetBlockSize(uint32(l.blockSize))
	s.SetFat1Start(uint32(l.fat1Start))
	s.SetFatBlocks(uint32(l.fatBlocksCount))
	s.SetFat2Start(uint32(l.fat2Start))
	s.SetDirStart(uint32(l.dirStart))
	s.SetDirBlocks(uint32(l.dirBlocksCount))
	s.SetDataStart(uint32(l.dataStart))
	s.SetDataBlockCount(uint32(l.dataBlocksCount))
	s.SetFreeBlockCount(uint32(l.dataBlocksCount))
}
