package flatfat

// readBlock reads exactly one block from disk into dst[:blockSize].
func readBlock(disk BlockDevice, index int64, dst []byte) error {
	bs := disk.BlockSize()
	if err := disk.ReadBlock(index, dst[:bs]); err != nil {
		return ioError("read", index, err)
	}
	return nil
}

// writeBlock writes exactly one block from src[:blockSize] to disk.
func writeBlock(disk BlockDevice, index int64, src []byte) error {
	bs := disk.BlockSize()
	if err := disk.WriteBlock(index, src[:bs]); err != nil {
		return ioError("write", index, err)
	}
	return nil
}

// readSpan reads len(dst) bytes spread across consecutive blocks
// starting at index, scratch-buffering one block at a time.
func readSpan(disk BlockDevice, index int64, dst []byte) error {
	bs := disk.BlockSize()
	buf := make([]byte, bs)
	for off := 0; off < len(dst); off += bs {
		if err := readBlock(disk, index, buf); err != nil {
			return err
		}
		copy(dst[off:], buf)
		index++
	}
	return nil
}

// writeSpan writes len(src) bytes spread across consecutive blocks
// starting at index, zero-padding the final partial block.
func writeSpan(disk BlockDevice, index int64, src []byte) error {
	bs := disk.BlockSize()
	buf := make([]byte, bs)
	for off := 0; off < len(src); off += bs {
		clear(buf)
		copy(buf, src[off:])
		if err := writeBlock(disk, index, buf); err != nil {
			return err
		}
		index++
	}
	return nil
}

// loadFAT loads the table from FAT1, falling back to FAT2 if any block
// in the FAT1 span fails to read — the recommended FAT2-recovery
// enhancement from spec.md §9, never consulted on a clean mount.
func loadFAT(disk BlockDevice, lay layout, fat *fatTable) error {
	size := fatByteSize(lay.dataBlocksCount)
	buf := make([]byte, size)
	err := readSpan(disk, lay.fat1Start, buf)
	if err != nil {
		err2 := readSpan(disk, lay.fat2Start, buf)
		if err2 != nil {
			return err
		}
	}
	fat.decode(buf)
	return nil
}

// flushFAT writes the table to both FAT copies.
func flushFAT(disk BlockDevice, lay layout, fat *fatTable) error {
	size := fatByteSize(lay.dataBlocksCount)
	buf := make([]byte, size)
	fat.encode(buf)
	if err := writeSpan(disk, lay.fat1Start, buf); err != nil {
		return err
	}
	return writeSpan(disk, lay.fat2Start, buf)
}
