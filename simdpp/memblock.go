package simdpp

// memBlock is an addressable staging buffer for instruction families that
// have no register-level lane mutation (Altivec): the register is stored
// to memory, one element is rewritten in place, and the whole block is
// loaded back.
type memBlock struct {
	buf reg128
}

// storeBlock spills a register image into addressable memory.
func storeBlock(r reg128) *memBlock {
	return &memBlock{buf: r}
}

// load reads the whole block back into a register image.
func (m *memBlock) load() reg128 {
	return m.buf
}

func (m *memBlock) putU8(i int, x uint8)   { m.buf = m.buf.setU8(i, x) }
func (m *memBlock) putU16(i int, x uint16) { m.buf = m.buf.setU16(i, x) }
func (m *memBlock) putU32(i int, x uint32) { m.buf = m.buf.setU32(i, x) }
func (m *memBlock) putU64(i int, x uint64) { m.buf = m.buf.setU64(i, x) }
